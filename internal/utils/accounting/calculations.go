package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// SignedBalance nets debit and credit totals by the normal side of the account type.
// DEBIT-normal (ASSET, EXPENSE): debit - credit.
// CREDIT-normal (LIABILITY, EQUITY, REVENUE): credit - debit.
func SignedBalance(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.NormalSide() == domain.Debit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// PresentationColumns splits the raw net of debit and credit totals into the two
// trial balance columns; at most one of them is nonzero.
func PresentationColumns(debit, credit decimal.Decimal) (debitCol, creditCol decimal.Decimal) {
	net := debit.Sub(credit)
	if net.IsPositive() {
		return net, decimal.Zero
	}
	return decimal.Zero, net.Neg()
}
