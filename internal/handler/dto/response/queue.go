package response

import (
	"time"

	"barberline/internal/usecase/commands"
	"barberline/internal/usecase/queries"

	"github.com/google/uuid"
)

type QueueStatusResponse struct {
	InQueue              bool       `json:"in_queue"`
	EntryID              *uuid.UUID `json:"entry_id,omitempty"`
	BarberID             *uuid.UUID `json:"barber_id,omitempty"`
	BarberName           string     `json:"barber_name,omitempty"`
	ServiceKind          string     `json:"service_kind,omitempty"`
	EnteredAt            *time.Time `json:"entered_at,omitempty"`
	Position             int        `json:"position,omitempty"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
}

func FromQueueStatus(status *queries.QueueStatus) *QueueStatusResponse {
	return &QueueStatusResponse{
		InQueue:              status.InQueue,
		EntryID:              status.EntryID,
		BarberID:             status.BarberID,
		BarberName:           status.BarberName,
		ServiceKind:          status.ServiceKind,
		EnteredAt:            status.EnteredAt,
		Position:             status.Position,
		EstimatedWaitMinutes: status.EstimatedWaitMinutes,
	}
}

type LeaveQueueResponse struct {
	RemovedFromBarberID uuid.UUID `json:"removed_from_barber_id"`
}

func FromLeaveResult(result *commands.LeaveResult) *LeaveQueueResponse {
	return &LeaveQueueResponse{
		RemovedFromBarberID: result.RemovedFromBarberID,
	}
}

type RemoveFromQueueResponse struct {
	RemovedCustomerID uuid.UUID `json:"removed_customer_id"`
	ServiceKind       string    `json:"service_kind"`
}

func FromRemoveResult(result *commands.RemoveResult) *RemoveFromQueueResponse {
	return &RemoveFromQueueResponse{
		RemovedCustomerID: result.RemovedCustomerID,
		ServiceKind:       result.ServiceKind,
	}
}

type QueueEntryResponse struct {
	EntryID      uuid.UUID `json:"entry_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ServiceKind  string    `json:"service_kind"`
	EnteredAt    time.Time `json:"entered_at"`
	Position     int       `json:"position"`
}

type QueueListResponse struct {
	BarberID uuid.UUID             `json:"barber_id"`
	Entries  []*QueueEntryResponse `json:"entries"`
}

func FromQueueEntries(barberID uuid.UUID, entries []*queries.QueueEntryView) *QueueListResponse {
	items := make([]*QueueEntryResponse, len(entries))
	for i, entry := range entries {
		items[i] = &QueueEntryResponse{
			EntryID:      entry.EntryID,
			CustomerID:   entry.CustomerID,
			CustomerName: entry.CustomerName,
			ServiceKind:  entry.ServiceKind,
			EnteredAt:    entry.EnteredAt,
			Position:     entry.Position,
		}
	}
	return &QueueListResponse{
		BarberID: barberID,
		Entries:  items,
	}
}
