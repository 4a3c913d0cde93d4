package shared

import (
	"context"
	"time"

	"barberline/internal/domain/queueing"
	"barberline/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes the atomic transitions of the queue engine. Every mutating
// operation (join, leave, operator removal) runs inside Within: either all of
// {entry delete/insert, history write} commit, or none do.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on transient
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Queue() QueueRepository
	History() HistoryRepository
	Customers() CustomerRepository
	Barbers() BarberRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BarberByID(ctx context.Context, id uuid.UUID) (*BarberSnapshot, error)
	EntryByCustomer(ctx context.Context, customerID uuid.UUID) (*EntrySnapshot, error)
}

// Minimal snapshots for command-side validation
type BarberSnapshot struct {
	ID   uuid.UUID
	Name string
}

type EntrySnapshot struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	CustomerID  uuid.UUID
	ServiceKind string
	EnteredAt   time.Time
}

type QueueRepository interface {
	// DeleteByCustomer removes the customer's live entry regardless of barber.
	// Returns nil when the customer had no entry.
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (*EntrySnapshot, error)
	// DeleteByBarberAndCustomer removes the entry only if it belongs to the
	// given barber. Returns nil when no such entry exists.
	DeleteByBarberAndCustomer(ctx context.Context, barberID, customerID uuid.UUID) (*EntrySnapshot, error)
	Insert(ctx context.Context, entry *queueing.Entry) error
}

type HistoryRepository interface {
	Append(ctx context.Context, record ServiceRecord) error
}

// ServiceRecord is the append-only audit snapshot written on the served path.
type ServiceRecord struct {
	BarberID    uuid.UUID
	CustomerID  uuid.UUID
	ServiceKind string
	ServedAt    time.Time
}

type CustomerRepository interface {
	// Lock takes a row lock on the customer, serializing that customer's queue
	// transitions for the rest of the transaction.
	Lock(ctx context.Context, customerID uuid.UUID) error
	Create(ctx context.Context, id uuid.UUID, phone, name, passwordHash string, createdAt time.Time) error
}

type BarberRepository interface {
	Create(ctx context.Context, id uuid.UUID, phone, name, passwordHash string, latitude, longitude float64, createdAt time.Time) error
}
