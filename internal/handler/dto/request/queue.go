package request

import "github.com/google/uuid"

type JoinQueueRequest struct {
	BarberID    uuid.UUID `json:"barber_id" binding:"required"`
	ServiceKind string    `json:"service_kind" binding:"required"`
}
