package queries

import (
	"context"
	"sort"

	"barberline/internal/domain/barber"
	"barberline/internal/infra"
	"barberline/internal/pkg/config"
	"barberline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidSearchArea = errs.New("invalid search coordinates or radius")

const defaultHistoryLimit = 100

type BarberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BarberView, error)
	ListWithQueueLength(ctx context.Context) ([]*BarberLoadRow, error)
}

type HistoryReadStore interface {
	ListByBarber(ctx context.Context, barberID uuid.UUID, limit int32) ([]*HistoryRecordView, error)
}

type BarberQueries interface {
	// FindNearby returns barbers within radiusKm of the point, ascending by
	// haversine distance, each annotated with the live queue length.
	FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*BarberWithLoad, error)
	// History lists served records for the barber, newest first.
	History(ctx context.Context, barberID uuid.UUID) ([]*HistoryRecordView, error)
}

type barberQueriesImpl struct {
	barberStore  BarberReadStore
	historyStore HistoryReadStore
	queueCfg     config.QueueConfig
}

func NewBarberQueries(barberStore BarberReadStore, historyStore HistoryReadStore, cfg config.Config) BarberQueries {
	return &barberQueriesImpl{
		barberStore:  barberStore,
		historyStore: historyStore,
		queueCfg:     cfg.Queue,
	}
}

func (q *barberQueriesImpl) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*BarberWithLoad, error) {
	origin, err := barber.NewLocation(latitude, longitude)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchArea)
	}

	if radiusKm <= 0 {
		radiusKm = q.queueCfg.DefaultRadiusKm
	}
	if radiusKm > q.queueCfg.MaxRadiusKm {
		radiusKm = q.queueCfg.MaxRadiusKm
	}

	rows, err := q.barberStore.ListWithQueueLength(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}

	result := []*BarberWithLoad{}
	for _, row := range rows {
		loc, err := barber.NewLocation(row.Latitude, row.Longitude)
		if err != nil {
			// Skip directory rows with corrupt coordinates rather than
			// failing the whole search.
			continue
		}

		distance := origin.DistanceKm(loc)
		if distance > radiusKm {
			continue
		}

		result = append(result, &BarberWithLoad{
			ID:          row.ID,
			Name:        row.Name,
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			DistanceKm:  distance,
			QueueLength: row.QueueLength,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result, nil
}

func (q *barberQueriesImpl) History(ctx context.Context, barberID uuid.UUID) ([]*HistoryRecordView, error) {
	if _, err := q.barberStore.FindByID(ctx, barberID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}

	records, err := q.historyStore.ListByBarber(ctx, barberID, defaultHistoryLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueueUnavailable)
	}
	return records, nil
}
