package domain

import "github.com/shopspring/decimal"

// Side indicates whether a journal line is a debit or a credit.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// IsValid reports whether s is DEBIT or CREDIT.
func (s Side) IsValid() bool {
	return s == Debit || s == Credit
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// JournalLine is a single-sided posting to one account. A line carries exactly
// one side and a strictly positive amount, so a line with both a debit and a
// credit cannot be expressed.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Side        Side            `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Position    int             `json:"position"`
	DocumentRef string          `json:"documentRef,omitempty"` // Open-item key for aging
}

// DebitLine builds a debit line.
func DebitLine(accountID string, amount decimal.Decimal, description string) JournalLine {
	return JournalLine{AccountID: accountID, Side: Debit, Amount: amount, Description: description}
}

// CreditLine builds a credit line.
func CreditLine(accountID string, amount decimal.Decimal, description string) JournalLine {
	return JournalLine{AccountID: accountID, Side: Credit, Amount: amount, Description: description}
}

// Debit returns the debit amount, or zero for a credit line.
func (l JournalLine) Debit() decimal.Decimal {
	if l.Side == Debit {
		return l.Amount
	}
	return decimal.Zero
}

// Credit returns the credit amount, or zero for a debit line.
func (l JournalLine) Credit() decimal.Decimal {
	if l.Side == Credit {
		return l.Amount
	}
	return decimal.Zero
}

// SignedFor returns the amount signed by the normal side of an account type:
// positive when the line increases the balance, negative otherwise.
func (l JournalLine) SignedFor(t AccountType) decimal.Decimal {
	if l.Side == t.NormalSide() {
		return l.Amount
	}
	return l.Amount.Neg()
}

// Reversed returns a copy of the line on the opposite side, without identity.
func (l JournalLine) Reversed() JournalLine {
	r := l
	r.LineID = ""
	r.EntryID = ""
	r.Side = l.Side.Opposite()
	return r
}
