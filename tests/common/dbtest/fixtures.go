//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"barberline/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every fixture account is created with.
const TestPassword = "password123"

var (
	testHashOnce sync.Once
	testHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()

	testHashOnce.Do(func() {
		hash, err := password.Hash(TestPassword)
		require.NoError(t, err, "Failed to hash fixture password")
		testHash = hash
	})
	return testHash
}

func CreateTestCustomer(t *testing.T, db DBLike, phone, name string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, phone, name, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (phone) DO NOTHING",
		customerID, phone, name, testPasswordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE phone = $1", phone).Scan(&customerID)
	}

	return customerID
}

func CreateTestBarber(t *testing.T, db DBLike, phone, name string, latitude, longitude float64) uuid.UUID {
	t.Helper()

	barberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO barbers (id, phone, name, password_hash, latitude, longitude) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (phone) DO NOTHING",
		barberID, phone, name, testPasswordHash(t), latitude, longitude)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM barbers WHERE phone = $1", phone).Scan(&barberID)
	}

	return barberID
}

// SetBarberAvgMinutes overrides the process-wide service duration for one shop.
func SetBarberAvgMinutes(t *testing.T, db DBLike, barberID uuid.UUID, minutes int32) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE barbers SET avg_service_minutes = $1 WHERE id = $2", minutes, barberID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
