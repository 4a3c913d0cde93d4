package response

import (
	"time"

	"barberline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NearbyBarberResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DistanceKm  float64   `json:"distance_km"`
	QueueLength int       `json:"queue_length"`
}

func FromNearbyBarbers(barbers []*queries.BarberWithLoad) []*NearbyBarberResponse {
	result := make([]*NearbyBarberResponse, len(barbers))
	for i, b := range barbers {
		item := &NearbyBarberResponse{}
		// field-for-field copy; both sides share the same shape
		_ = copier.Copy(item, b)
		result[i] = item
	}
	return result
}

type HistoryRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ServiceKind  string    `json:"service_kind"`
	ServedAt     time.Time `json:"served_at"`
}

func FromHistoryRecords(records []*queries.HistoryRecordView) []*HistoryRecordResponse {
	result := make([]*HistoryRecordResponse, len(records))
	for i, record := range records {
		item := &HistoryRecordResponse{}
		_ = copier.Copy(item, record)
		result[i] = item
	}
	return result
}
