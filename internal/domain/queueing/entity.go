package queueing

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one customer's slot in a specific barber's line. Entries are
// immutable: a service change is modeled as leave+join, which moves the
// customer to the back of the line.
type Entry struct {
	id          uuid.UUID
	barberID    uuid.UUID
	customerID  uuid.UUID
	serviceKind ServiceKind
	enteredAt   time.Time
}

func NewEntry(id, barberID, customerID uuid.UUID, kindValue string, enteredAt time.Time) (*Entry, error) {
	kind, err := NewServiceKind(kindValue)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Entry{
		id:          id,
		barberID:    barberID,
		customerID:  customerID,
		serviceKind: kind,
		enteredAt:   enteredAt,
	}, nil
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) BarberID() uuid.UUID      { return e.barberID }
func (e *Entry) CustomerID() uuid.UUID    { return e.customerID }
func (e *Entry) ServiceKind() ServiceKind { return e.serviceKind }
func (e *Entry) EnteredAt() time.Time     { return e.enteredAt }

// Before reports whether e is ahead of other in the same line. Ordering is by
// entry time with the id as the tie-breaker so readers never observe ties.
func (e *Entry) Before(other *Entry) bool {
	if e.enteredAt.Equal(other.enteredAt) {
		return e.id.String() < other.id.String()
	}
	return e.enteredAt.Before(other.enteredAt)
}
