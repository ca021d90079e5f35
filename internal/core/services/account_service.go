package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo              portsrepo.AccountRepositoryFacade
	balanceRepo              portsrepo.ReportingRepository
	blockNonZeroDeactivation bool
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountBalances lets the service compute balances from posted entries.
func WithAccountBalances(repo portsrepo.ReportingRepository) AccountServiceOption {
	return func(s *accountService) {
		s.balanceRepo = repo
	}
}

// WithNonZeroDeactivationBlocked toggles the rule that an account with a nonzero
// balance cannot be deactivated. The rule is on by default.
func WithNonZeroDeactivationBlocked(block bool) AccountServiceOption {
	return func(s *accountService) {
		s.blockNonZeroDeactivation = block
	}
}

// WithAccountClock overrides the time source used for audit fields.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:              repo,
		blockNonZeroDeactivation: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the code, type and parent and persists a new active account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.Newf(apperrors.ErrValidation, "account code and name are required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.Newf(apperrors.ErrValidation, "unknown account type %q", req.AccountType)
	}

	if existing, err := s.accountRepo.FindAccountByCode(ctx, code); err == nil && existing != nil {
		s.LogWarn(ctx, "Account code already in use", slog.String("code", code))
		return nil, apperrors.Newf(apperrors.ErrDuplicateCode, "%s", code)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up account code", slog.String("code", code))
		return nil, fmt.Errorf("failed to look up account code %s: %w", code, err)
	}

	parentID, err := s.resolveParent(ctx, req)
	if err != nil {
		return nil, err
	}
	if parentID != "" {
		if _, err := s.checkParent(ctx, "", parentID, req.AccountType); err != nil {
			return nil, err
		}
	}

	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            name,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields:     domain.NewAuditFields(userID, s.now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateCode) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

// resolveParent accepts either a parent ID or a parent code.
func (s *accountService) resolveParent(ctx context.Context, req dto.CreateAccountRequest) (string, error) {
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		return *req.ParentAccountID, nil
	}
	if req.ParentCode == "" {
		return "", nil
	}
	parent, err := s.accountRepo.FindAccountByCode(ctx, req.ParentCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.Newf(apperrors.ErrInvalidHierarchy, "parent account %s does not exist", req.ParentCode)
		}
		return "", fmt.Errorf("failed to look up parent account %s: %w", req.ParentCode, err)
	}
	return parent.AccountID, nil
}

// checkParent verifies the parent exists, shares the child's type and that
// attaching accountID under it does not close a cycle.
func (s *accountService) checkParent(ctx context.Context, accountID, parentID string, accountType domain.AccountType) (*domain.Account, error) {
	if accountID != "" && parentID == accountID {
		return nil, apperrors.Newf(apperrors.ErrInvalidHierarchy, "account cannot be its own parent")
	}
	parent, err := s.accountRepo.FindAccountByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.ErrInvalidHierarchy, "parent account %s does not exist", parentID)
		}
		return nil, fmt.Errorf("failed to look up parent account %s: %w", parentID, err)
	}
	if parent.AccountType != accountType {
		return nil, apperrors.Newf(apperrors.ErrInvalidHierarchy, "parent %s is %s, child is %s", parent.Code, parent.AccountType, accountType)
	}
	if accountID == "" {
		return parent, nil
	}

	seen := map[string]struct{}{parent.AccountID: {}}
	next := parent.ParentAccountID
	for next != "" {
		if next == accountID {
			return nil, apperrors.Newf(apperrors.ErrInvalidHierarchy, "moving account under %s creates a cycle", parent.Code)
		}
		if _, ok := seen[next]; ok {
			break
		}
		seen[next] = struct{}{}
		ancestor, err := s.accountRepo.FindAccountByID(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("failed to walk account hierarchy at %s: %w", next, err)
		}
		next = ancestor.ParentAccountID
	}
	return parent, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves an account by its unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts by IDs", slog.Int("count", len(accountIDs)))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	if filter.AccountType != "" && !filter.AccountType.IsValid() {
		return nil, apperrors.Newf(apperrors.ErrValidation, "unknown account type %q", filter.AccountType)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// UpdateAccount applies the provided fields. Re-parenting re-runs the hierarchy checks.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Newf(apperrors.ErrValidation, "account name cannot be empty")
		}
		account.Name = name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.ParentAccountID != nil && *req.ParentAccountID != account.ParentAccountID {
		if *req.ParentAccountID != "" {
			if _, err := s.checkParent(ctx, account.AccountID, *req.ParentAccountID, account.AccountType); err != nil {
				return nil, err
			}
		}
		account.ParentAccountID = *req.ParentAccountID
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-deactivates an account. While the nonzero-balance rule
// is on, an account that still carries a balance is rejected.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}

	if s.blockNonZeroDeactivation {
		balance, err := s.balanceOf(ctx, account)
		if err != nil {
			return err
		}
		if !balance.IsZero() {
			s.LogWarn(ctx, "Refusing to deactivate account with balance",
				slog.String("account_id", accountID), slog.String("balance", balance.String()))
			return apperrors.Newf(apperrors.ErrAccountInUse, "account %s balance is %s", account.Code, balance.String())
		}
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// CalculateAccountBalance calculates the balance over all posted entries, signed by normal side.
func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.balanceOf(ctx, account)
}

func (s *accountService) balanceOf(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	if s.balanceRepo == nil {
		return decimal.Zero, apperrors.Newf(apperrors.ErrConfiguration, "account balances are not available")
	}
	activity, err := s.balanceRepo.GetAccountActivity(ctx, domain.DateRange{}, []string{account.AccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load account activity", slog.String("account_id", account.AccountID))
		return decimal.Zero, fmt.Errorf("failed to load account activity: %w", err)
	}
	balance := decimal.Zero
	for _, a := range activity {
		if a.AccountID == account.AccountID {
			balance = balance.Add(accounting.SignedBalance(account.AccountType, a.TotalDebit, a.TotalCredit))
		}
	}
	return balance, nil
}

// EnsureAccounts creates the chart accounts whose code is not yet registered.
// Parents must precede their children in the chart.
func (s *accountService) EnsureAccounts(ctx context.Context, chart []dto.CreateAccountRequest, userID string) (int, error) {
	created := 0
	for _, req := range chart {
		_, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return created, fmt.Errorf("failed to look up account %s: %w", req.Code, err)
		}
		if _, err := s.CreateAccount(ctx, req, userID); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateCode) {
				continue
			}
			return created, fmt.Errorf("failed to create account %s: %w", req.Code, err)
		}
		created++
	}
	if created > 0 {
		s.LogInfo(ctx, "Chart of accounts seeded", slog.Int("created", created))
	}
	return created, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
