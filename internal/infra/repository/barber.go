package repository

import (
	"context"
	"time"

	"barberline/internal/infra"
	"barberline/internal/infra/db"

	"github.com/google/uuid"
)

type BarberRepository struct {
	db db.DBTX
}

func NewBarberRepository(dbtx db.DBTX) *BarberRepository {
	return &BarberRepository{db: dbtx}
}

const createBarberSQL = `
INSERT INTO barbers (id, phone, name, password_hash, latitude, longitude, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *BarberRepository) Create(ctx context.Context, id uuid.UUID, phone, name, passwordHash string, latitude, longitude float64, createdAt time.Time) error {
	_, err := r.db.Exec(ctx, createBarberSQL, id, phone, name, passwordHash, latitude, longitude, createdAt)
	if err != nil {
		return infra.WrapPgErr("failed to create barber", err)
	}
	return nil
}
