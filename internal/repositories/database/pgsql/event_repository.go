package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

// PgxEventRepository reads the business_events outbox the business modules write to.
type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventSource = (*PgxEventRepository)(nil)

// ListEvents returns the recorded events matching the filter, oldest first.
func (r *PgxEventRepository) ListEvents(ctx context.Context, filter domain.ReconcileFilter) ([]domain.BusinessEvent, error) {
	var where whereBuilder
	where.addDateRange("event_date", filter.DateRange)
	if filter.SourceType != "" {
		where.add("source_type = ?", filter.SourceType)
	}

	query := `
		SELECT event_id, kind, amount, tax_amount, tax_rate, event_date, due_date,
		       source_type, source_id, document_ref, reference, memo, metadata, created_at
		FROM business_events` + where.String() + `
		ORDER BY event_date, event_id;
	`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, translateError(err, "failed to query business events")
	}
	defer rows.Close()

	events := make([]domain.BusinessEvent, 0)
	for rows.Next() {
		var m models.BusinessEvent
		err := rows.Scan(
			&m.EventID, &m.Kind, &m.Amount, &m.TaxAmount, &m.TaxRate, &m.EventDate, &m.DueDate,
			&m.SourceType, &m.SourceID, &m.DocumentRef, &m.Reference, &m.Memo, &m.Metadata, &m.CreatedAt,
		)
		if err != nil {
			return nil, translateError(err, "failed to scan business event")
		}
		events = append(events, mapping.ToDomainBusinessEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating business events")
	}
	return events, nil
}
