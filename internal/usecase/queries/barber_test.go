//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"barberline/internal/infra"
	"barberline/internal/pkg/config"
	"barberline/internal/usecase/queries"
	queriesmock "barberline/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BarberQueriesTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockBarberStore  *queriesmock.MockBarberReadStore
	mockHistoryStore *queriesmock.MockHistoryReadStore
	queries          queries.BarberQueries
}

func (s *BarberQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBarberStore = queriesmock.NewMockBarberReadStore(s.mockCtrl)
	s.mockHistoryStore = queriesmock.NewMockHistoryReadStore(s.mockCtrl)
	s.queries = queries.NewBarberQueries(s.mockBarberStore, s.mockHistoryStore, config.NewTestConfig())
}

func (s *BarberQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBarberQueriesSuite(t *testing.T) {
	suite.Run(t, new(BarberQueriesTestSuite))
}

func (s *BarberQueriesTestSuite) TestFindNearby() {
	ctx := context.Background()
	// Koramangala, Bangalore as the search origin.
	originLat, originLong := 12.9352, 77.6245

	directory := []*queries.BarberLoadRow{
		{ID: uuid.New(), Name: "Around The Corner", Latitude: 12.9360, Longitude: 77.6250, QueueLength: 2},
		{ID: uuid.New(), Name: "Indiranagar Cuts", Latitude: 12.9719, Longitude: 77.6412, QueueLength: 0},
		{ID: uuid.New(), Name: "Mysore Road Trims", Latitude: 12.2958, Longitude: 76.6394, QueueLength: 5},
	}

	s.Run("filters by radius and sorts nearest first", func() {
		s.mockBarberStore.EXPECT().
			ListWithQueueLength(ctx).
			Return(directory, nil)

		got, err := s.queries.FindNearby(ctx, originLat, originLong, 10)

		s.Require().NoError(err)
		s.Require().Len(got, 2) // Mysore Road is ~130km out
		s.Equal("Around The Corner", got[0].Name)
		s.Equal("Indiranagar Cuts", got[1].Name)
		s.Less(got[0].DistanceKm, got[1].DistanceKm)
		s.Equal(2, got[0].QueueLength)
	})

	s.Run("zero radius falls back to the default", func() {
		s.mockBarberStore.EXPECT().
			ListWithQueueLength(ctx).
			Return(directory, nil)

		got, err := s.queries.FindNearby(ctx, originLat, originLong, 0)

		s.Require().NoError(err)
		s.Require().Len(got, 2) // default 5km still covers both city shops
	})

	s.Run("oversized radius is capped", func() {
		s.mockBarberStore.EXPECT().
			ListWithQueueLength(ctx).
			Return(directory, nil)

		// 1000km would reach Mysore Road; the 50km cap keeps it out.
		got, err := s.queries.FindNearby(ctx, originLat, originLong, 1000)

		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("origin off the globe", func() {
		_, err := s.queries.FindNearby(ctx, 91, 77.6, 5)

		s.ErrorIs(err, queries.ErrInvalidSearchArea)
	})

	s.Run("corrupt directory rows are skipped, not fatal", func() {
		withCorrupt := append([]*queries.BarberLoadRow{
			{ID: uuid.New(), Name: "Broken Row", Latitude: 200, Longitude: 200},
		}, directory...)
		s.mockBarberStore.EXPECT().
			ListWithQueueLength(ctx).
			Return(withCorrupt, nil)

		got, err := s.queries.FindNearby(ctx, originLat, originLong, 10)

		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("empty area returns an empty slice, not nil", func() {
		s.mockBarberStore.EXPECT().
			ListWithQueueLength(ctx).
			Return([]*queries.BarberLoadRow{}, nil)

		got, err := s.queries.FindNearby(ctx, originLat, originLong, 5)

		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *BarberQueriesTestSuite) TestHistory() {
	ctx := context.Background()
	barberID := uuid.New()

	s.Run("lists records for an existing barber", func() {
		s.mockBarberStore.EXPECT().
			FindByID(ctx, barberID).
			Return(&queries.BarberView{ID: barberID}, nil)
		records := []*queries.HistoryRecordView{
			{ID: uuid.New(), ServedAt: time.Now().UTC()},
		}
		s.mockHistoryStore.EXPECT().
			ListByBarber(ctx, barberID, int32(100)).
			Return(records, nil)

		got, err := s.queries.History(ctx, barberID)

		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("unknown barber", func() {
		s.mockBarberStore.EXPECT().
			FindByID(ctx, barberID).
			Return(nil, infra.WrapRepoErr("barber not found", nil, infra.KindNotFound))

		_, err := s.queries.History(ctx, barberID)

		s.ErrorIs(err, queries.ErrBarberNotFound)
	})
}
