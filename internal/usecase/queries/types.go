package queries

import (
	"time"

	"github.com/google/uuid"
)

// QueueStatus is the point-in-time projection returned to a customer. Position
// and wait are recomputed on every read; they shift as other customers join
// and leave.
type QueueStatus struct {
	InQueue              bool       `json:"in_queue"`
	EntryID              *uuid.UUID `json:"entry_id,omitempty"`
	BarberID             *uuid.UUID `json:"barber_id,omitempty"`
	BarberName           string     `json:"barber_name,omitempty"`
	ServiceKind          string     `json:"service_kind,omitempty"`
	EnteredAt            *time.Time `json:"entered_at,omitempty"`
	Position             int        `json:"position,omitempty"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
}

// CustomerEntryView is the raw row behind QueueStatus, joined with the
// barber's name and duration override.
type CustomerEntryView struct {
	ID               uuid.UUID
	BarberID         uuid.UUID
	CustomerID       uuid.UUID
	ServiceKind      string
	EnteredAt        time.Time
	BarberName       string
	BarberAvgMinutes *int32
}

// QueueEntryView is one line of the operator's queue view.
type QueueEntryView struct {
	EntryID      uuid.UUID `json:"entry_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ServiceKind  string    `json:"service_kind"`
	EnteredAt    time.Time `json:"entered_at"`
	Position     int       `json:"position"`
}

type BarberView struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Latitude  float64
	Longitude float64
}

// BarberLoadRow is a directory row annotated with the live queue length. The
// annotation is advisory: it may already be stale by the time the response is
// delivered.
type BarberLoadRow struct {
	ID          uuid.UUID
	Name        string
	Latitude    float64
	Longitude   float64
	QueueLength int
}

// BarberWithLoad adds the distance from the search point, ascending sort key
// of FindNearby results.
type BarberWithLoad struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DistanceKm  float64   `json:"distance_km"`
	QueueLength int       `json:"queue_length"`
}

// Credential carries only what a phone+password check needs.
type Credential struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type HistoryRecordView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ServiceKind  string    `json:"service_kind"`
	ServedAt     time.Time `json:"served_at"`
}
