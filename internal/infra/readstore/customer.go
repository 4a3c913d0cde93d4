package readstore

import (
	"context"

	"barberline/internal/infra"
	"barberline/internal/infra/db"
	"barberline/internal/pkg/pgconv"
	"barberline/internal/usecase/queries"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

const findCustomerByPhoneSQL = `
SELECT id, name, password_hash
FROM customers
WHERE phone = $1`

func (r *CustomerReadStore) FindAuthByPhone(ctx context.Context, phone string) (*queries.Credential, error) {
	var row queries.Credential
	err := r.db.QueryRow(ctx, findCustomerByPhoneSQL, phone).Scan(&row.ID, &row.Name, &row.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapPgErr("failed to find customer by phone", err)
	}
	return &row, nil
}
