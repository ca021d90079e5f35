package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

type postingHandler struct {
	postingService portssvc.PostingSvc
}

func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvc) {
	h := &postingHandler{postingService: postingService}

	postings := rg.Group("/postings")
	{
		postings.POST("/events", h.postEvent)
		postings.POST("/reconcile", h.reconcile)
	}
}

// postEvent godoc
// @Summary Post a business event
// @Description Translates the event through the posting rules. Re-posting a source returns already_synced.
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   event body dto.PostEventRequest true "Business event"
// @Success 201 {object} dto.PostingResultResponse "Posted"
// @Success 200 {object} dto.PostingResultResponse "Already posted"
// @Failure 400 {object} ErrorResponse "Invalid event"
// @Failure 422 {object} ErrorResponse "No posting rule or account for the event"
// @Security BearerAuth
// @Router /postings/events [post]
func (h *postingHandler) postEvent(c *gin.Context) {
	var req dto.PostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.postingService.Post(c.Request.Context(), req.ToBusinessEvent(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to post event")
		return
	}

	status := http.StatusCreated
	if result.Status == domain.StatusAlreadySynced {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToPostingResultResponse(result))
}

// reconcile godoc
// @Summary Run the reconciliation sweep
// @Description Re-submits every recorded business event in the range. Failures are reported per event.
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   body body dto.ReconcileRequest false "Sweep filter"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /postings/reconcile [post]
func (h *postingHandler) reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request format", err)
			return
		}
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	dateRange, err := dto.ParseDateRange(req.From, req.To, time.Now().UTC())
	if err != nil {
		respondBadRequest(c, "Invalid date range", err)
		return
	}

	report, err := h.postingService.Reconcile(c.Request.Context(), domain.ReconcileFilter{DateRange: dateRange, SourceType: req.SourceType}, userID)
	if err != nil {
		respondWithError(c, err, "Failed to reconcile")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconcileResponse(report))
}
