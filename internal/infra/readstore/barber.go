package readstore

import (
	"context"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/pkg/pgconv"
	"barberline/internal/usecase/queries"

	"github.com/google/uuid"
)

type BarberReadStore struct {
	db db.DBTX
}

func NewBarberReadStore(dbtx db.DBTX) *BarberReadStore {
	return &BarberReadStore{db: dbtx}
}

const findBarberByIDSQL = `
SELECT id, name, phone, latitude, longitude
FROM barbers
WHERE id = $1`

func (r *BarberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BarberView, error) {
	var view queries.BarberView
	err := r.db.QueryRow(ctx, findBarberByIDSQL, id).Scan(
		&view.ID,
		&view.Name,
		&view.Phone,
		&view.Latitude,
		&view.Longitude,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("barber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapPgErr("failed to find barber by id", err)
	}
	return &view, nil
}

// Queue-length annotation is a LEFT JOIN count over live entries: eventually
// consistent with concurrent mutations, which is acceptable for an advisory
// load figure.
const listBarbersWithQueueLengthSQL = `
SELECT b.id, b.name, b.latitude, b.longitude, COUNT(qe.id)
FROM barbers b
LEFT JOIN queue_entries qe ON qe.barber_id = b.id
GROUP BY b.id, b.name, b.latitude, b.longitude`

func (r *BarberReadStore) ListWithQueueLength(ctx context.Context) ([]*queries.BarberLoadRow, error) {
	rows, err := r.db.Query(ctx, listBarbersWithQueueLengthSQL)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list barbers with queue length", err)
	}
	defer rows.Close()

	result := []*queries.BarberLoadRow{}
	for rows.Next() {
		var (
			row         queries.BarberLoadRow
			queueLength int64
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.Latitude, &row.Longitude, &queueLength); err != nil {
			return nil, infra.WrapPgErr("failed to scan barber load row", err)
		}
		row.QueueLength = int(queueLength)
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read barber load rows", err)
	}

	return result, nil
}

const findBarberByPhoneSQL = `
SELECT id, name, password_hash
FROM barbers
WHERE phone = $1`

func (r *BarberReadStore) FindAuthByPhone(ctx context.Context, phone string) (*queries.Credential, error) {
	var row queries.Credential
	err := r.db.QueryRow(ctx, findBarberByPhoneSQL, phone).Scan(&row.ID, &row.Name, &row.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("barber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapPgErr("failed to find barber by phone", err)
	}
	return &row, nil
}
