package repository

import (
	"context"
	"time"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

const lockCustomerSQL = `
SELECT id FROM customers WHERE id = $1 FOR UPDATE`

// Lock serializes all queue transitions for one customer: concurrent joins or
// a join racing a leave queue up on this row lock and apply one after another.
func (r *CustomerRepository) Lock(ctx context.Context, customerID uuid.UUID) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, lockCustomerSQL, customerID).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return infra.WrapPgErr("failed to lock customer row", err)
	}
	return nil
}

const createCustomerSQL = `
INSERT INTO customers (id, phone, name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *CustomerRepository) Create(ctx context.Context, id uuid.UUID, phone, name, passwordHash string, createdAt time.Time) error {
	_, err := r.db.Exec(ctx, createCustomerSQL, id, phone, name, passwordHash, createdAt)
	if err != nil {
		return infra.WrapPgErr("failed to create customer", err)
	}
	return nil
}
