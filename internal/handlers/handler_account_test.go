package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/utils"
)

const (
	testJWTSecret = "test-secret"
	testJWTIssuer = "erp-ledger"
	testUserID    = "user-1"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}
func (m *MockAccountService) EnsureAccounts(ctx context.Context, chart []dto.CreateAccountRequest, userID string) (int, error) {
	args := m.Called(ctx, chart, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockAccountService) CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) entry(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, entryID))
}
func (m *MockJournalService) GetEntryBySource(ctx context.Context, sourceType, sourceID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, sourceType, sourceID))
}
func (m *MockJournalService) ListEntries(ctx context.Context, filter domain.EntryFilter) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockJournalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, req, userID))
}
func (m *MockJournalService) SaveDraft(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, req, userID))
}
func (m *MockJournalService) PostDraft(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, entryID, userID))
}
func (m *MockJournalService) VoidEntry(ctx context.Context, entryID string, reason string, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, entryID, reason, userID))
}
func (m *MockJournalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	return m.entry(m.Called(ctx, entryID, userID))
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) Post(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, event, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}
func (m *MockPostingService) Reconcile(ctx context.Context, filter domain.ReconcileFilter, userID string) (*domain.ReconcileReport, error) {
	args := m.Called(ctx, filter, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileReport), args.Error(1)
}

var _ portssvc.PostingSvc = (*MockPostingService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockAccountSvc *MockAccountService
	mockJournalSvc *MockJournalService
	mockPostingSvc *MockPostingService
	authToken      string
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	token, err := utils.GenerateJWT(testUserID, testJWTSecret, time.Hour, testJWTIssuer)
	suite.Require().NoError(err)
	suite.authToken = token
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockPostingSvc = new(MockPostingService)

	container := &portssvc.ServiceContainer{
		Account: suite.mockAccountSvc,
		Journal: suite.mockJournalSvc,
		Posting: suite.mockPostingSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testJWTIssuer,
		IsProduction: true,
	}, container)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.authToken)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorDetail {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func testAccount() *domain.Account {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Account{
		AccountID:   "acc-1",
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(testUserID, now),
	}
}

// --- Account Handler Tests ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.KindUnauthorized, suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}
	suite.mockAccountSvc.On("CreateAccount", mock.Anything, reqBody, testUserID).Return(testAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("1000", resp.Code)
	suite.Equal(domain.Debit, resp.NormalSide)
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingErrors() {
	testCases := []struct {
		name string
		body map[string]any
	}{
		{"missing code", map[string]any{"name": "Cash", "accountType": "ASSET"}},
		{"missing name", map[string]any{"code": "1000", "accountType": "ASSET"}},
		{"unknown type", map[string]any{"code": "1000", "name": "Cash", "accountType": "INCOME"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/accounts", tc.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal(apperrors.KindValidation, suite.decodeError(w).Kind)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate code", apperrors.Newf(apperrors.ErrDuplicateCode, "code %q", "1000"), http.StatusBadRequest, "DUPLICATE_CODE"},
		{"invalid hierarchy", apperrors.ErrInvalidHierarchy, http.StatusBadRequest, "INVALID_HIERARCHY"},
		{"storage failure", apperrors.Wrap(apperrors.ErrStorage, fmt.Errorf("connection reset"), "failed to save account"), http.StatusInternalServerError, ""},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			reqBody := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}
			suite.mockAccountSvc.On("CreateAccount", mock.Anything, reqBody, testUserID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounts", reqBody)

			suite.Equal(tc.wantStatus, w.Code)
			detail := suite.decodeError(w)
			suite.Equal(tc.wantCode, detail.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				suite.NotContains(detail.Message, "connection reset")
			}
		})
	}
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, "missing").Return(nil, apperrors.Newf(apperrors.ErrNotFound, "account %s", "missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(apperrors.KindNotFound, suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestGetAccountByCode() {
	suite.mockAccountSvc.On("GetAccountByCode", mock.Anything, "1000").Return(testAccount(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/by-code/1000", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
}

func (suite *HandlerTestSuite) TestListAccounts_PassesFilter() {
	filter := domain.AccountFilter{AccountType: domain.Asset, ActiveOnly: true}
	suite.mockAccountSvc.On("ListAccounts", mock.Anything, filter).Return([]domain.Account{*testAccount()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?type=ASSET&activeOnly=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 1)
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil).Once()
	suite.mockAccountSvc.On("CalculateAccountBalance", mock.Anything, "acc-1").Return(decimal.RequireFromString("125.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("125.5")))
	suite.Equal("1000", resp.Code)
}

func (suite *HandlerTestSuite) TestDeactivateAccount() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"nonzero balance", apperrors.ErrAccountInUse, http.StatusConflict},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockAccountSvc.On("DeactivateAccount", mock.Anything, "acc-1", testUserID).Return(tc.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/deactivate", nil)
			suite.Equal(tc.wantStatus, w.Code)
		})
	}
}

// --- Journal Handler Tests ---

func testEntry(status domain.JournalStatus) *domain.JournalEntry {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(100)
	return &domain.JournalEntry{
		EntryID:     "je-1",
		EntryNumber: "JE-2024-0001",
		EntryDate:   date,
		Status:      status,
		SourceType:  "manual",
		SourceID:    "je-1",
		TotalDebit:  amount,
		TotalCredit: amount,
		AuditFields: domain.NewAuditFields(testUserID, date),
		Lines: []domain.JournalLine{
			{LineID: "l1", EntryID: "je-1", AccountID: "cash", Side: domain.Debit, Amount: amount, Position: 1},
			{LineID: "l2", EntryID: "je-1", AccountID: "equity", Side: domain.Credit, Amount: amount, Position: 2},
		},
	}
}

func (suite *HandlerTestSuite) TestPostEntry() {
	testCases := []struct {
		name       string
		result     *domain.JournalEntry
		err        error
		wantStatus int
		wantCode   string
	}{
		{"posted", testEntry(domain.Posted), nil, http.StatusCreated, ""},
		{"unbalanced", nil, apperrors.ErrUnbalancedEntry, http.StatusBadRequest, "UNBALANCED_ENTRY"},
		{"duplicate source", nil, apperrors.ErrDuplicateSource, http.StatusConflict, "DUPLICATE_SOURCE"},
	}

	body := map[string]any{
		"date": "2024-03-01T00:00:00Z",
		"lines": []map[string]any{
			{"accountID": "cash", "side": "DEBIT", "amount": "100"},
			{"accountID": "equity", "side": "CREDIT", "amount": "100"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			call := suite.mockJournalSvc.On("PostEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest"), testUserID).Once()
			if tc.result != nil {
				call.Return(tc.result, nil)
			} else {
				call.Return(nil, tc.err)
			}

			w := suite.do(http.MethodPost, "/api/v1/journals", body)

			suite.Equal(tc.wantStatus, w.Code)
			if tc.err != nil {
				suite.Equal(tc.wantCode, suite.decodeError(w).Code)
				return
			}
			var resp dto.EntryResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.Equal("JE-2024-0001", resp.EntryNumber)
			suite.Len(resp.Lines, 2)
		})
	}
}

func (suite *HandlerTestSuite) TestPostEntry_RejectsBadSide() {
	body := map[string]any{
		"date": "2024-03-01T00:00:00Z",
		"lines": []map[string]any{
			{"accountID": "cash", "side": "LEFT", "amount": "100"},
		},
	}

	w := suite.do(http.MethodPost, "/api/v1/journals", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestVoidEntry() {
	testCases := []struct {
		name       string
		body       any
		setup      func()
		wantStatus int
	}{
		{
			name: "voided",
			body: dto.VoidEntryRequest{Reason: "duplicate"},
			setup: func() {
				suite.mockJournalSvc.On("VoidEntry", mock.Anything, "je-1", "duplicate", testUserID).Return(testEntry(domain.Void), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already void",
			body: dto.VoidEntryRequest{Reason: "again"},
			setup: func() {
				suite.mockJournalSvc.On("VoidEntry", mock.Anything, "je-1", "again", testUserID).Return(nil, apperrors.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing reason",
			body:       map[string]any{},
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setup()
			w := suite.do(http.MethodPost, "/api/v1/journals/je-1/void", tc.body)
			suite.Equal(tc.wantStatus, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestReverseEntry() {
	reversal := testEntry(domain.Posted)
	reversal.EntryID = "je-2"
	reversal.SourceType = domain.SourceTypeReversal
	reversal.SourceID = "je-1"
	suite.mockJournalSvc.On("ReverseEntry", mock.Anything, "je-1", testUserID).Return(reversal, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/je-1/reverse", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.SourceTypeReversal, resp.SourceType)
	suite.Equal("je-1", resp.SourceID)
}

func (suite *HandlerTestSuite) TestGetEntryBySource() {
	suite.mockJournalSvc.On("GetEntryBySource", mock.Anything, "invoice", "INV-9").Return(testEntry(domain.Posted), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/by-source/invoice/INV-9", nil)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Posting Handler Tests ---

func (suite *HandlerTestSuite) TestPostEvent_StatusByOutcome() {
	testCases := []struct {
		name       string
		status     domain.PostingStatus
		wantStatus int
	}{
		{"first posting", domain.StatusSynced, http.StatusCreated},
		{"already posted", domain.StatusAlreadySynced, http.StatusOK},
	}

	body := map[string]any{
		"kind":       domain.EventInvoiceIssued,
		"amount":     "500",
		"taxAmount":  "50",
		"date":       "2024-03-01T00:00:00Z",
		"sourceType": "invoice",
		"sourceID":   "INV-1",
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result := &domain.PostingResult{SourceType: "invoice", SourceID: "INV-1", Status: tc.status, Entry: testEntry(domain.Posted)}
			suite.mockPostingSvc.On("Post", mock.Anything, mock.MatchedBy(func(e domain.BusinessEvent) bool {
				return e.Kind == domain.EventInvoiceIssued && e.SourceID == "INV-1" && e.TaxAmount != nil && e.TaxAmount.Equal(decimal.NewFromInt(50))
			}), testUserID).Return(result, nil).Once()

			w := suite.do(http.MethodPost, "/api/v1/postings/events", body)

			suite.Equal(tc.wantStatus, w.Code)
			var resp dto.PostingResultResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.Equal(tc.status, resp.Status)
		})
	}
}

func (suite *HandlerTestSuite) TestPostEvent_UnmappedKind() {
	suite.mockPostingSvc.On("Post", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.Newf(apperrors.ErrUnmappedEventKind, "kind %q", "refund_issued")).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/events", map[string]any{
		"kind":       "refund_issued",
		"amount":     "10",
		"date":       "2024-03-01T00:00:00Z",
		"sourceType": "refund",
		"sourceID":   "R-1",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	detail := suite.decodeError(w)
	suite.Equal(apperrors.KindConfiguration, detail.Kind)
	suite.Equal("UNMAPPED_EVENT_KIND", detail.Code)
}

func (suite *HandlerTestSuite) TestReconcile() {
	report := &domain.ReconcileReport{
		Results: []domain.PostingResult{
			{SourceType: "invoice", SourceID: "INV-1", Status: domain.StatusAlreadySynced},
			{SourceType: "invoice", SourceID: "INV-2", Status: domain.StatusFailed, Error: "unknown account", ErrorKind: string(apperrors.KindValidation)},
		},
		AlreadySynced: 1,
		Failed:        1,
	}
	suite.mockPostingSvc.On("Reconcile", mock.Anything, mock.MatchedBy(func(f domain.ReconcileFilter) bool {
		return f.SourceType == "invoice" && f.DateRange.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	}), testUserID).Return(report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/reconcile", dto.ReconcileRequest{From: "2024-01-01", To: "2024-12-31", SourceType: "invoice"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReconcileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Failed)
	suite.Len(resp.Results, 2)
	suite.Equal("VALIDATION", resp.Results[1].ErrorKind)
}

func (suite *HandlerTestSuite) TestReconcile_InvalidRange() {
	w := suite.do(http.MethodPost, "/api/v1/postings/reconcile", dto.ReconcileRequest{From: "2024-12-31", To: "2024-01-01"})
	suite.Equal(http.StatusBadRequest, w.Code)
}
