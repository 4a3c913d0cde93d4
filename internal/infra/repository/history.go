package repository

import (
	"context"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/usecase/shared"

	"github.com/google/uuid"
)

// HistoryRepository appends to the service_history audit table. Records are
// never updated or deleted.
type HistoryRepository struct {
	db db.DBTX
}

func NewHistoryRepository(dbtx db.DBTX) *HistoryRepository {
	return &HistoryRepository{db: dbtx}
}

const appendHistorySQL = `
INSERT INTO service_history (id, barber_id, customer_id, service_kind, served_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *HistoryRepository) Append(ctx context.Context, record shared.ServiceRecord) error {
	_, err := r.db.Exec(ctx, appendHistorySQL,
		uuid.New(),
		record.BarberID,
		record.CustomerID,
		record.ServiceKind,
		record.ServedAt,
	)
	if err != nil {
		return infra.WrapPgErr("failed to append service history record", err)
	}
	return nil
}
