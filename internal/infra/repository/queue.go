package repository

import (
	"context"

	"barberline/internal/domain/queueing"
	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/pkg/pgconv"

	"github.com/google/uuid"

	"barberline/internal/usecase/shared"
)

type QueueRepository struct {
	db db.DBTX
}

func NewQueueRepository(dbtx db.DBTX) *QueueRepository {
	return &QueueRepository{db: dbtx}
}

const deleteByCustomerSQL = `
DELETE FROM queue_entries
WHERE customer_id = $1
RETURNING id, barber_id, customer_id, service_kind, entered_at`

func (r *QueueRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (*shared.EntrySnapshot, error) {
	snapshot, err := scanEntrySnapshot(r.db.QueryRow(ctx, deleteByCustomerSQL, customerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapPgErr("failed to delete queue entry by customer", err)
	}
	return snapshot, nil
}

const deleteByBarberAndCustomerSQL = `
DELETE FROM queue_entries
WHERE barber_id = $1 AND customer_id = $2
RETURNING id, barber_id, customer_id, service_kind, entered_at`

func (r *QueueRepository) DeleteByBarberAndCustomer(ctx context.Context, barberID, customerID uuid.UUID) (*shared.EntrySnapshot, error) {
	snapshot, err := scanEntrySnapshot(r.db.QueryRow(ctx, deleteByBarberAndCustomerSQL, barberID, customerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapPgErr("failed to delete queue entry by barber and customer", err)
	}
	return snapshot, nil
}

const insertEntrySQL = `
INSERT INTO queue_entries (id, barber_id, customer_id, service_kind, entered_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *QueueRepository) Insert(ctx context.Context, entry *queueing.Entry) error {
	_, err := r.db.Exec(ctx, insertEntrySQL,
		entry.ID(),
		entry.BarberID(),
		entry.CustomerID(),
		entry.ServiceKind().String(),
		entry.EnteredAt(),
	)
	if err != nil {
		return infra.WrapPgErr("failed to insert queue entry", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntrySnapshot(row rowScanner) (*shared.EntrySnapshot, error) {
	var snapshot shared.EntrySnapshot
	err := row.Scan(
		&snapshot.ID,
		&snapshot.BarberID,
		&snapshot.CustomerID,
		&snapshot.ServiceKind,
		&snapshot.EnteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
