package pgsql

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
)

const entryColumns = `entry_id, entry_number, entry_date, due_date, reference, memo, status,
	source_type, source_id, total_debit, total_credit, void_reason, posted_at,
	created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, description, side, amount, position, document_ref`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.DueDate,
		&m.Reference,
		&m.Memo,
		&m.Status,
		&m.SourceType,
		&m.SourceID,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.VoidReason,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func lineAccountIDs(lines []domain.JournalLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}
	sort.Strings(ids) // Stable lock order
	return ids
}

// nextEntryNumber bumps the per-year sequence inside tx. The row lock taken by the
// upsert serialises concurrent posters for the same year until tx ends, and a
// rollback returns the value, so numbers stay gap-free.
func nextEntryNumber(ctx context.Context, tx pgx.Tx, entryDate time.Time) (string, error) {
	year := entryDate.Year()
	query := `
		INSERT INTO journal_entry_sequences (period, last_value)
		VALUES ($1, 1)
		ON CONFLICT (period) DO UPDATE SET last_value = journal_entry_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return "", translateError(err, "failed to allocate entry number")
	}
	return domain.FormatEntryNumber(year, seq), nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryNumber,
		m.EntryDate,
		m.DueDate,
		m.Reference,
		m.Memo,
		m.Status,
		m.SourceType,
		m.SourceID,
		m.TotalDebit,
		m.TotalCredit,
		m.VoidReason,
		m.PostedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to insert journal entry "+m.EntryID)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO journal_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountID,
			ml.Description,
			ml.Side,
			ml.Amount,
			ml.Position,
			ml.DocumentRef,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateError(err, "failed to insert lines for journal entry "+m.EntryID)
	}
	return nil
}

// SavePostedEntry inserts a POSTED entry and its lines in one transaction.
func (r *PgxJournalRepository) SavePostedEntry(ctx context.Context, entry *domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	if err := lockActiveAccounts(ctx, tx, lineAccountIDs(entry.Lines)); err != nil {
		return err
	}
	number, err := nextEntryNumber(ctx, tx, entry.EntryDate)
	if err != nil {
		return err
	}
	entry.EntryNumber = number

	if err := insertEntry(ctx, tx, *entry); err != nil {
		entry.EntryNumber = ""
		return err
	}
	if err := r.Commit(ctx, tx); err != nil {
		entry.EntryNumber = ""
		return err
	}
	return nil
}

// SaveDraftEntry inserts a DRAFT entry. Drafts reserve their source pair.
func (r *PgxJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntry(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// PostDraftEntry promotes a DRAFT entry to POSTED and assigns its number.
func (r *PgxJournalRepository) PostDraftEntry(ctx context.Context, entry *domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.JournalStatus
	var entryDate time.Time
	err = tx.QueryRow(ctx, `SELECT status, entry_date FROM journal_entries WHERE entry_id = $1 FOR UPDATE;`, entry.EntryID).
		Scan(&status, &entryDate)
	if err != nil {
		return translateError(err, "journal entry "+entry.EntryID)
	}
	if status != models.Draft {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is %s, not DRAFT", entry.EntryID, status)
	}

	rows, err := tx.Query(ctx, `SELECT DISTINCT account_id FROM journal_lines WHERE entry_id = $1 ORDER BY account_id;`, entry.EntryID)
	if err != nil {
		return translateError(err, "failed to read lines of entry "+entry.EntryID)
	}
	accountIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return translateError(err, "failed to read lines of entry "+entry.EntryID)
	}
	if err := lockActiveAccounts(ctx, tx, accountIDs); err != nil {
		return err
	}

	number, err := nextEntryNumber(ctx, tx, entryDate)
	if err != nil {
		return err
	}
	query := `
		UPDATE journal_entries
		SET status = 'POSTED', entry_number = $2, posted_at = $3, total_debit = $4, total_credit = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		entry.EntryID,
		number,
		entry.PostedAt,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "failed to post draft "+entry.EntryID)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	entry.EntryNumber = number
	return nil
}

// VoidEntry moves an entry to VOID unless it is already void or has a live reversal.
func (r *PgxJournalRepository) VoidEntry(ctx context.Context, entryID, reason, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries e
		SET status = 'VOID', void_reason = $2, last_updated_at = $3, last_updated_by = $4
		WHERE e.entry_id = $1
		  AND e.status <> 'VOID'
		  AND NOT EXISTS (
		      SELECT 1 FROM journal_entries r
		      WHERE r.source_type = $5 AND r.source_id = e.entry_id AND r.status <> 'VOID'
		  );
	`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, reason, now, userID, domain.SourceTypeReversal)
	if err != nil {
		return translateError(err, "failed to void journal entry "+entryID)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing changed: tell a missing entry apart from a refused transition.
	var status models.JournalStatus
	err = r.Pool.QueryRow(ctx, `SELECT status FROM journal_entries WHERE entry_id = $1;`, entryID).Scan(&status)
	if err != nil {
		return translateError(err, "journal entry "+entryID)
	}
	if status == models.Void {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is already void", entryID)
	}
	return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s has an active reversal", entryID)
}

func (r *PgxJournalRepository) loadLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+lineColumns+` FROM journal_lines WHERE entry_id = $1 ORDER BY position;`, entryID)
	if err != nil {
		return nil, translateError(err, "failed to query lines of entry "+entryID)
	}
	defer rows.Close()

	lines := make([]domain.JournalLine, 0)
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Description, &m.Side, &m.Amount, &m.Position, &m.DocumentRef); err != nil {
			return nil, translateError(err, "failed to scan journal line")
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating journal lines")
	}
	return lines, nil
}

func (r *PgxJournalRepository) findEntry(ctx context.Context, what, query string, args ...any) (*domain.JournalEntry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, what)
	}
	entry := mapping.ToDomainJournalEntry(m)
	if entry.Lines, err = r.loadLines(ctx, entry.EntryID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindEntryByID retrieves an entry together with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	return r.findEntry(ctx, "journal entry "+entryID, query, entryID)
}

// FindEntryBySource retrieves the non-void entry for a source pair.
func (r *PgxJournalRepository) FindEntryBySource(ctx context.Context, sourceType, sourceID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE source_type = $1 AND source_id = $2 AND status <> 'VOID';`
	return r.findEntry(ctx, "no entry for source "+sourceType+"/"+sourceID, query, sourceType, sourceID)
}

// ListEntries retrieves entry headers newest first, using keyset pagination.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	var where whereBuilder
	where.addDateRange("entry_date", filter.DateRange)
	if filter.SourceType != "" {
		where.add("source_type = ?", filter.SourceType)
	}
	if filter.Status != "" {
		where.add("status = ?", string(filter.Status))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.Wrap(apperrors.ErrValidation, err, "nextToken")
		}
		where.add("(entry_date, created_at, entry_id) < (?, ?, ?)", domain.TruncateDate(cursor.EntryDate), cursor.CreatedAt, cursor.EntryID)
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries` + where.String() +
		` ORDER BY entry_date DESC, created_at DESC, entry_id DESC`
	args := where.args
	if filter.Limit > 0 {
		args = append(args, filter.Limit+1) // One extra row tells us whether there is a next page
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateError(err, "failed to list journal entries")
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, translateError(err, "failed to scan journal entry")
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, translateError(err, "error iterating journal entries")
	}

	var nextToken *string
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		nextToken = &token
	}
	return entries, nextToken, nil
}
