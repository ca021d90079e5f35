package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postEntry)
		journals.POST("/drafts", h.saveDraft)
		journals.GET("", h.listEntries)
		journals.GET("/by-source/:sourceType/:sourceID", h.getEntryBySource)
		journals.GET("/:id", h.getEntry)
		journals.POST("/:id/post", h.postDraft)
		journals.POST("/:id/void", h.voidEntry)
		journals.POST("/:id/reverse", h.reverseEntry)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and atomically posts a balanced entry. Source type defaults to "manual".
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Unbalanced entry, invalid line or unknown account"
// @Failure 409 {object} ErrorResponse "Source already posted"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// saveDraft godoc
// @Summary Save a draft entry
// @Description Stores an entry without posting it. Balance is enforced when the draft is posted.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid line or unknown account"
// @Security BearerAuth
// @Router /journals/drafts [post]
func (h *journalHandler) saveDraft(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.SaveDraft(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to save draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// postDraft godoc
// @Summary Post a draft entry
// @Tags journals
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Draft does not balance"
// @Failure 409 {object} ErrorResponse "Entry is not a draft"
// @Security BearerAuth
// @Router /journals/{id}/post [post]
func (h *journalHandler) postDraft(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entry, err := h.journalService.PostDraft(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to post draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journals
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getEntryBySource godoc
// @Summary Get the entry posted for a source document
// @Tags journals
// @Produce  json
// @Param   sourceType path string true "Source type"
// @Param   sourceID path string true "Source ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse "No entry for the source"
// @Security BearerAuth
// @Router /journals/by-source/{sourceType}/{sourceID} [get]
func (h *journalHandler) getEntryBySource(c *gin.Context) {
	entry, err := h.journalService.GetEntryBySource(c.Request.Context(), c.Param("sourceType"), c.Param("sourceID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Entries newest first with token pagination
// @Tags journals
// @Produce  json
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Param   sourceType query string false "Source type"
// @Param   status query string false "DRAFT, POSTED or VOID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}

	filter := domain.EntryFilter{
		SourceType: params.SourceType,
		Status:     domain.JournalStatus(params.Status),
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	}
	if params.From != "" || params.To != "" {
		dateRange, err := dto.ParseDateRange(params.From, params.To, time.Now().UTC())
		if err != nil {
			respondBadRequest(c, "Invalid date range", err)
			return
		}
		filter.DateRange = dateRange
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// voidEntry godoc
// @Summary Void a journal entry
// @Description Voided entries stay on record, drop out of every report and free their source for re-posting
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   body body dto.VoidEntryRequest true "Reason"
// @Success 200 {object} dto.EntryResponse
// @Failure 409 {object} ErrorResponse "Entry already void or reversed"
// @Security BearerAuth
// @Router /journals/{id}/void [post]
func (h *journalHandler) voidEntry(c *gin.Context) {
	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.VoidEntry(c.Request.Context(), c.Param("id"), req.Reason, userID)
	if err != nil {
		respondWithError(c, err, "Failed to void journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a new entry with every line's side swapped, dated like the original
// @Tags journals
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 201 {object} dto.EntryResponse
// @Failure 409 {object} ErrorResponse "Entry is not posted or already reversed"
// @Security BearerAuth
// @Router /journals/{id}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entry, err := h.journalService.ReverseEntry(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
