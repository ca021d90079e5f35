package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/app"
)

var verifyAsOf string

// verifyCmd checks the ledger-wide double-entry invariants.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the trial balance and balance sheet balance",
	Long: `Build the trial balance from inception and the balance sheet as of a date,
and exit non-zero when either does not balance.

Example:
  ledgerctl verify --as-of 2024-12-31`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyAsOf, "as-of", "", "As-of date (YYYY-MM-DD), empty for today")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	asOf, err := dto.AsOfQuery{AsOf: verifyAsOf}.ToAsOf(time.Now().UTC())
	if err != nil {
		return err
	}

	ledger, err := app.New(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}
	defer ledger.Close()

	reporting := ledger.Services.Reporting
	tb, err := reporting.TrialBalance(ctx, domain.DateRange{To: asOf}, domain.TrialBalanceOptions{})
	if err != nil {
		return fmt.Errorf("failed to build trial balance: %w", err)
	}
	bs, err := reporting.BalanceSheet(ctx, asOf)
	if err != nil {
		return fmt.Errorf("failed to build balance sheet: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "trial balance  debit=%s credit=%s balanced=%t\n", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2), tb.Balanced)
	fmt.Fprintf(out, "balance sheet  assets=%s liabilities+equity=%s balanced=%t\n",
		bs.TotalAssets.StringFixed(2), bs.TotalLiabilities.Add(bs.TotalEquity).StringFixed(2), bs.Balanced)

	var errs []error
	if !tb.Balanced {
		errs = append(errs, errors.New("trial balance does not balance"))
	}
	if !bs.Balanced {
		errs = append(errs, errors.New("balance sheet does not balance"))
	}
	return errors.Join(errs...)
}
