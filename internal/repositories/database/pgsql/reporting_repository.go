package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) *reportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func postedLinesWhere(dateRange domain.DateRange, accountIDs []string) *whereBuilder {
	where := &whereBuilder{}
	where.add("e.status = ?", string(domain.Posted))
	where.addDateRange("e.entry_date", dateRange)
	if len(accountIDs) > 0 {
		where.add("l.account_id = ANY(?)", accountIDs)
	}
	return where
}

// GetAccountActivity sums posted debits and credits per account.
func (r *reportingRepository) GetAccountActivity(ctx context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.AccountActivity, error) {
	where := postedLinesWhere(dateRange, accountIDs)
	query := `
		SELECT l.account_id,
		       COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'DEBIT'), 0) AS total_debit,
		       COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'CREDIT'), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id` + where.String() + `
		GROUP BY l.account_id
		ORDER BY l.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, translateError(err, "failed to query account activity")
	}
	defer rows.Close()

	activity := make([]domain.AccountActivity, 0)
	for rows.Next() {
		var a domain.AccountActivity
		if err := rows.Scan(&a.AccountID, &a.TotalDebit, &a.TotalCredit); err != nil {
			return nil, translateError(err, "failed to scan account activity")
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating account activity")
	}
	return activity, nil
}

// GetAccountPostings lists posted lines with their entry headers in ledger order.
func (r *reportingRepository) GetAccountPostings(ctx context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.LedgerPosting, error) {
	where := postedLinesWhere(dateRange, accountIDs)
	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.description, l.side, l.amount, l.position, l.document_ref,
		       e.entry_number, e.entry_date, e.due_date, e.memo, e.source_type, e.source_id, e.created_at
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id` + where.String() + `
		ORDER BY e.entry_date, e.created_at, e.entry_id, l.position;
	`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, translateError(err, "failed to query account postings")
	}
	defer rows.Close()

	postings := make([]domain.LedgerPosting, 0)
	for rows.Next() {
		var line models.JournalLine
		var entryNumber *string
		var p domain.LedgerPosting
		err := rows.Scan(
			&line.LineID, &line.EntryID, &line.AccountID, &line.Description, &line.Side, &line.Amount, &line.Position, &line.DocumentRef,
			&entryNumber, &p.EntryDate, &p.DueDate, &p.Memo, &p.SourceType, &p.SourceID, &p.CreatedAt,
		)
		if err != nil {
			return nil, translateError(err, "failed to scan account posting")
		}
		p.JournalLine = mapping.ToDomainJournalLine(line)
		if entryNumber != nil {
			p.EntryNumber = *entryNumber
		}
		p.EntryDate = domain.TruncateDate(p.EntryDate)
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating account postings")
	}
	return postings, nil
}
