package commands

import (
	"context"

	"barberline/internal/domain/queueing"
	"barberline/internal/infra"
	"barberline/internal/pkg/clock"
	"barberline/internal/pkg/errs"
	"barberline/internal/usecase/queries"
	"barberline/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBarberNotFound       = errs.New("barber not found")
	ErrCustomerNotFound     = errs.New("customer not found")
	ErrInvalidServiceKind   = errs.New("invalid service kind")
	ErrInvalidRemovalReason = errs.New("invalid removal reason")
	ErrNotInQueue           = errs.New("customer is not in any queue")
	ErrEntryNotFound        = errs.New("queue entry not found")
	ErrEntryOwnedByOther    = errs.New("queue entry belongs to a different barber")
	ErrQueueConflict        = errs.New("queue transition conflicted, retry the operation")
	ErrStoreUnavailable     = errs.New("queue store unavailable")
)

type LeaveResult struct {
	RemovedFromBarberID uuid.UUID
}

type RemoveResult struct {
	RemovedCustomerID uuid.UUID
	ServiceKind       string
}

type QueueCommands interface {
	// Join moves the customer to the back of the barber's line. If the
	// customer was queued anywhere (this barber included), that entry is
	// replaced inside the same transaction, so at most one entry per customer
	// exists system-wide at every instant.
	Join(ctx context.Context, customerID, barberID uuid.UUID, serviceKind string) (*queries.QueueStatus, error)
	// Leave removes the customer's entry wherever it is. Leaving while not
	// queued is a benign race and reports ErrNotInQueue.
	Leave(ctx context.Context, customerID uuid.UUID) (*LeaveResult, error)
	// Remove is the operator path. reason "served" additionally appends the
	// audit record in the same atomic unit.
	Remove(ctx context.Context, barberID, customerID uuid.UUID, reason string) (*RemoveResult, error)
}

type queueCommandsImpl struct {
	uow          shared.UnitOfWork
	queueQueries queries.QueueQueries
	clock        clock.Clock
}

func NewQueueCommands(uow shared.UnitOfWork, queueQueries queries.QueueQueries, clock clock.Clock) QueueCommands {
	return &queueCommandsImpl{
		uow:          uow,
		queueQueries: queueQueries,
		clock:        clock,
	}
}

func (c *queueCommandsImpl) Join(ctx context.Context, customerID, barberID uuid.UUID, serviceKind string) (*queries.QueueStatus, error) {
	// Fail fast before any mutation is attempted.
	kind, err := queueing.NewServiceKind(serviceKind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidServiceKind)
	}

	if _, err := c.uow.CommandReads().BarberByID(ctx, barberID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Lock(ctx, customerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		// Replace-by-customer-key: deleting any prior entry and inserting the
		// new one in the same transaction enforces single membership by
		// construction instead of by a racy pre-check.
		if _, err := tx.Queue().DeleteByCustomer(ctx, customerID); err != nil {
			return err
		}

		entry, err := queueing.NewEntry(uuid.Nil, barberID, customerID, kind.String(), c.clock.Now())
		if err != nil {
			return err
		}

		return tx.Queue().Insert(ctx, entry)
	})
	if err != nil {
		return nil, c.mapTransitionErr(err)
	}

	// Read-after-write: position is derived, never stored.
	status, err := c.queueQueries.Status(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return status, nil
}

func (c *queueCommandsImpl) Leave(ctx context.Context, customerID uuid.UUID) (*LeaveResult, error) {
	var result LeaveResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Lock(ctx, customerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		removed, err := tx.Queue().DeleteByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if removed == nil {
			return ErrNotInQueue
		}

		result.RemovedFromBarberID = removed.BarberID
		return nil
	})
	if err != nil {
		return nil, c.mapTransitionErr(err)
	}

	return &result, nil
}

func (c *queueCommandsImpl) Remove(ctx context.Context, barberID, customerID uuid.UUID, reason string) (*RemoveResult, error) {
	removalReason, err := queueing.NewRemovalReason(reason)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRemovalReason)
	}

	var result RemoveResult

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Lock(ctx, customerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return err
		}

		removed, err := tx.Queue().DeleteByBarberAndCustomer(ctx, barberID, customerID)
		if err != nil {
			return err
		}
		if removed == nil {
			// Distinguish "not queued at all" from "queued with someone else"
			// so the operator gets an honest answer.
			if _, readErr := tx.Reads().EntryByCustomer(ctx, customerID); readErr != nil {
				if infra.IsKind(readErr, infra.KindNotFound) {
					return ErrEntryNotFound
				}
				return readErr
			}
			return ErrEntryOwnedByOther
		}

		if removalReason == queueing.RemovalServed {
			record := shared.ServiceRecord{
				BarberID:    removed.BarberID,
				CustomerID:  removed.CustomerID,
				ServiceKind: removed.ServiceKind,
				ServedAt:    c.clock.Now(),
			}
			if err := tx.History().Append(ctx, record); err != nil {
				return err
			}
		}

		result.RemovedCustomerID = removed.CustomerID
		result.ServiceKind = removed.ServiceKind
		return nil
	})
	if err != nil {
		return nil, c.mapTransitionErr(err)
	}

	return &result, nil
}

// mapTransitionErr translates infra failures into the command error taxonomy.
// Sentinels already in the chain pass through untouched.
func (c *queueCommandsImpl) mapTransitionErr(err error) error {
	switch {
	case errs.IsAny(err,
		ErrCustomerNotFound, ErrBarberNotFound, ErrNotInQueue,
		ErrEntryNotFound, ErrEntryOwnedByOther):
		return err
	case infra.IsKind(err, infra.KindDuplicateKey):
		// The unique index on customer_id fired: a concurrent transition won.
		// The whole operation is safe to retry from scratch.
		return errs.Mark(err, ErrQueueConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrBarberNotFound)
	default:
		return errs.Mark(err, ErrStoreUnavailable)
	}
}
