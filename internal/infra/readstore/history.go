package readstore

import (
	"context"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryReadStore struct {
	db db.DBTX
}

func NewHistoryReadStore(dbtx db.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: dbtx}
}

const listHistoryByBarberSQL = `
SELECT sh.id, sh.customer_id, c.name, sh.service_kind, sh.served_at
FROM service_history sh
JOIN customers c ON c.id = sh.customer_id
WHERE sh.barber_id = $1
ORDER BY sh.served_at DESC, sh.id DESC
LIMIT $2`

func (r *HistoryReadStore) ListByBarber(ctx context.Context, barberID uuid.UUID, limit int32) ([]*queries.HistoryRecordView, error) {
	rows, err := r.db.Query(ctx, listHistoryByBarberSQL, barberID, limit)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list service history by barber", err)
	}
	defer rows.Close()

	result := []*queries.HistoryRecordView{}
	for rows.Next() {
		var view queries.HistoryRecordView
		if err := rows.Scan(
			&view.ID,
			&view.CustomerID,
			&view.CustomerName,
			&view.ServiceKind,
			&view.ServedAt,
		); err != nil {
			return nil, infra.WrapPgErr("failed to scan service history row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read service history rows", err)
	}

	return result, nil
}
