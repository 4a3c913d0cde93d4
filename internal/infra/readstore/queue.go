package readstore

import (
	"context"
	"time"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/pkg/pgconv"
	"barberline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QueueReadStore struct {
	db db.DBTX
}

func NewQueueReadStore(dbtx db.DBTX) *QueueReadStore {
	return &QueueReadStore{db: dbtx}
}

const findEntryByCustomerSQL = `
SELECT qe.id, qe.barber_id, qe.customer_id, qe.service_kind, qe.entered_at,
       b.name, b.avg_service_minutes
FROM queue_entries qe
JOIN barbers b ON b.id = qe.barber_id
WHERE qe.customer_id = $1`

func (r *QueueReadStore) FindEntryByCustomer(ctx context.Context, customerID uuid.UUID) (*queries.CustomerEntryView, error) {
	var (
		view       queries.CustomerEntryView
		avgMinutes pgtype.Int4
	)
	err := r.db.QueryRow(ctx, findEntryByCustomerSQL, customerID).Scan(
		&view.ID,
		&view.BarberID,
		&view.CustomerID,
		&view.ServiceKind,
		&view.EnteredAt,
		&view.BarberName,
		&avgMinutes,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("queue entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapPgErr("failed to find queue entry by customer", err)
	}
	view.BarberAvgMinutes = pgconv.Int32PtrFromPgtype(avgMinutes)
	return &view, nil
}

const positionOfSQL = `
SELECT COUNT(*) + 1
FROM queue_entries
WHERE barber_id = $1
  AND (entered_at < $2 OR (entered_at = $2 AND id < $3))`

// PositionOf counts entries strictly ahead of the given one. Ties on
// entered_at are broken by entry id, matching the listing order.
func (r *QueueReadStore) PositionOf(ctx context.Context, barberID uuid.UUID, enteredAt time.Time, entryID uuid.UUID) (int, error) {
	var position int
	err := r.db.QueryRow(ctx, positionOfSQL, barberID, enteredAt, entryID).Scan(&position)
	if err != nil {
		return 0, infra.WrapPgErr("failed to compute queue position", err)
	}
	return position, nil
}

const listByBarberSQL = `
SELECT qe.id, qe.customer_id, c.name, qe.service_kind, qe.entered_at,
       ROW_NUMBER() OVER (ORDER BY qe.entered_at, qe.id)
FROM queue_entries qe
JOIN customers c ON c.id = qe.customer_id
WHERE qe.barber_id = $1
ORDER BY qe.entered_at, qe.id`

func (r *QueueReadStore) ListByBarber(ctx context.Context, barberID uuid.UUID) ([]*queries.QueueEntryView, error) {
	rows, err := r.db.Query(ctx, listByBarberSQL, barberID)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list queue entries by barber", err)
	}
	defer rows.Close()

	result := []*queries.QueueEntryView{}
	for rows.Next() {
		var (
			view     queries.QueueEntryView
			position int64
		)
		if err := rows.Scan(
			&view.EntryID,
			&view.CustomerID,
			&view.CustomerName,
			&view.ServiceKind,
			&view.EnteredAt,
			&position,
		); err != nil {
			return nil, infra.WrapPgErr("failed to scan queue entry row", err)
		}
		view.Position = int(position)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read queue entry rows", err)
	}

	return result, nil
}
