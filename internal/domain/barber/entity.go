package barber

import (
	"strings"
	"time"

	"barberline/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errs.New("barber name must not be empty")
	ErrEmptyPhone = errs.New("barber phone must not be empty")
)

// Barber is a directory record. Immutable for queue purposes once created.
type Barber struct {
	id                uuid.UUID
	name              string
	phone             string
	location          Location
	avgServiceMinutes *int32
	createdAt         time.Time
}

func NewBarber(id uuid.UUID, name, phone string, location Location, avgServiceMinutes *int32, createdAt time.Time) (*Barber, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Barber{
		id:                id,
		name:              name,
		phone:             phone,
		location:          location,
		avgServiceMinutes: avgServiceMinutes,
		createdAt:         createdAt,
	}, nil
}

func (b *Barber) ID() uuid.UUID        { return b.id }
func (b *Barber) Name() string         { return b.name }
func (b *Barber) Phone() string        { return b.phone }
func (b *Barber) Location() Location   { return b.location }
func (b *Barber) CreatedAt() time.Time { return b.createdAt }

// ServiceMinutes returns the barber's own average service duration, falling
// back to the given process-wide default when no override is set.
func (b *Barber) ServiceMinutes(defaultMinutes int) int {
	if b.avgServiceMinutes != nil && *b.avgServiceMinutes > 0 {
		return int(*b.avgServiceMinutes)
	}
	return defaultMinutes
}
