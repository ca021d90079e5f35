package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every account type in statement order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalSide is the side on which the balance of an account of this type increases.
func (t AccountType) NormalSide() Side {
	switch t {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// Account represents a node in the chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`
	Code            string      `json:"code"` // Unique, human-facing identifier
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID"` // Empty for top-level accounts
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// NormalSide is derived from the account type.
func (a Account) NormalSide() Side {
	return a.AccountType.NormalSide()
}

// AccountFilter narrows ListAccounts.
type AccountFilter struct {
	AccountType AccountType // Empty matches every type
	ActiveOnly  bool
}

// Matches reports whether acc passes the filter.
func (f AccountFilter) Matches(acc Account) bool {
	if f.AccountType != "" && acc.AccountType != f.AccountType {
		return false
	}
	if f.ActiveOnly && !acc.IsActive {
		return false
	}
	return true
}
