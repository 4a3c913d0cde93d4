package queries

import (
	"context"
	"time"

	"barberline/internal/domain/queueing"
	"barberline/internal/infra"
	"barberline/internal/pkg/config"
	"barberline/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBarberNotFound   = errs.New("barber not found")
	ErrQueueUnavailable = errs.New("queue store unavailable")
)

// QueueReadStore is the read-side port over live queue entries.
type QueueReadStore interface {
	FindEntryByCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerEntryView, error)
	PositionOf(ctx context.Context, barberID uuid.UUID, enteredAt time.Time, entryID uuid.UUID) (int, error)
	ListByBarber(ctx context.Context, barberID uuid.UUID) ([]*QueueEntryView, error)
}

type BarberExistsStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BarberView, error)
}

type QueueQueries interface {
	// Status recomputes the customer's position and estimated wait on every
	// call. OUT of queue is a regular answer, not an error.
	Status(ctx context.Context, customerID uuid.UUID) (*QueueStatus, error)
	// ListQueue returns the barber's line ordered by entry time (ties by id).
	ListQueue(ctx context.Context, barberID uuid.UUID) ([]*QueueEntryView, error)
}

type queueQueriesImpl struct {
	queueStore  QueueReadStore
	barberStore BarberExistsStore
	queueCfg    config.QueueConfig
}

func NewQueueQueries(queueStore QueueReadStore, barberStore BarberExistsStore, cfg config.Config) QueueQueries {
	return &queueQueriesImpl{
		queueStore:  queueStore,
		barberStore: barberStore,
		queueCfg:    cfg.Queue,
	}
}

func (q *queueQueriesImpl) Status(ctx context.Context, customerID uuid.UUID) (*QueueStatus, error) {
	entry, err := q.queueStore.FindEntryByCustomer(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &QueueStatus{InQueue: false}, nil
		}
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}

	position, err := q.queueStore.PositionOf(ctx, entry.BarberID, entry.EnteredAt, entry.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}

	minutes := q.queueCfg.ServiceMinutes
	if entry.BarberAvgMinutes != nil && *entry.BarberAvgMinutes > 0 {
		minutes = int(*entry.BarberAvgMinutes)
	}

	entryID := entry.ID
	barberID := entry.BarberID
	enteredAt := entry.EnteredAt
	return &QueueStatus{
		InQueue:              true,
		EntryID:              &entryID,
		BarberID:             &barberID,
		BarberName:           entry.BarberName,
		ServiceKind:          entry.ServiceKind,
		EnteredAt:            &enteredAt,
		Position:             position,
		EstimatedWaitMinutes: queueing.EstimateWaitMinutes(position, minutes),
	}, nil
}

func (q *queueQueriesImpl) ListQueue(ctx context.Context, barberID uuid.UUID) ([]*QueueEntryView, error) {
	if _, err := q.barberStore.FindByID(ctx, barberID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}

	entries, err := q.queueStore.ListByBarber(ctx, barberID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}
	return entries, nil
}
