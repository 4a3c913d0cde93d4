//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"barberline/internal/handler/api"
	resdto "barberline/internal/handler/dto/response"
	"barberline/internal/usecase/commands"
	"barberline/internal/usecase/queries"
	"barberline/tests/common/httptest"
	commandsmock "barberline/tests/mock/commands"
	queriesmock "barberline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQueueCommands
	mockQueries  *queriesmock.MockQueueQueries
	handler      *api.QueueHandler
	customerID   uuid.UUID
}

func (s *QueueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQueueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQueueQueries(s.mockCtrl)
	s.handler = api.NewQueueHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()

	// Stand-in for the auth middleware: every request acts as s.customerID.
	s.router.Use(func(c *gin.Context) {
		c.Set("subject_id", s.customerID)
	})
	s.router.POST("/queue/join", s.handler.Join)
	s.router.POST("/queue/leave", s.handler.Leave)
	s.router.GET("/queue/status", s.handler.Status)
}

func (s *QueueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueueHandlerTestSuite))
}

func (s *QueueHandlerTestSuite) queuedStatus(barberID uuid.UUID) *queries.QueueStatus {
	entryID := uuid.New()
	enteredAt := time.Now().UTC()
	return &queries.QueueStatus{
		InQueue:              true,
		EntryID:              &entryID,
		BarberID:             &barberID,
		BarberName:           "Fade Factory",
		ServiceKind:          "haircut",
		EnteredAt:            &enteredAt,
		Position:             4,
		EstimatedWaitMinutes: 45,
	}
}

func (s *QueueHandlerTestSuite) TestJoin() {
	barberID := uuid.New()

	s.Run("joins and returns the fresh projection", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), s.customerID, barberID, "haircut").
			Return(s.queuedStatus(barberID), nil)

		body := map[string]any{"barber_id": barberID.String(), "service_kind": "haircut"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		var resp resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.True(resp.InQueue)
		s.Equal(barberID, *resp.BarberID)
		s.Equal(4, resp.Position)
		s.Equal(45, resp.EstimatedWaitMinutes)
	})

	s.Run("rejects a body without barber_id", func() {
		body := map[string]any{"service_kind": "haircut"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown service kind is a 400", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), s.customerID, barberID, "perm").
			Return(nil, commands.ErrInvalidServiceKind)

		body := map[string]any{"barber_id": barberID.String(), "service_kind": "perm"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "service kind")
	})

	s.Run("unknown barber is a 404", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), s.customerID, barberID, "haircut").
			Return(nil, commands.ErrBarberNotFound)

		body := map[string]any{"barber_id": barberID.String(), "service_kind": "haircut"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Barber not found")
	})

	s.Run("write conflict surfaces as a 409 for the client to retry", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), s.customerID, barberID, "haircut").
			Return(nil, commands.ErrQueueConflict)

		body := map[string]any{"barber_id": barberID.String(), "service_kind": "haircut"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "retry")
	})

	s.Run("store outage is a 503", func() {
		s.mockCommands.EXPECT().
			Join(gomock.Any(), s.customerID, barberID, "haircut").
			Return(nil, commands.ErrStoreUnavailable)

		body := map[string]any{"barber_id": barberID.String(), "service_kind": "haircut"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/join", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "unavailable")
	})
}

func (s *QueueHandlerTestSuite) TestLeave() {
	s.Run("leaves the current queue", func() {
		barberID := uuid.New()
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), s.customerID).
			Return(&commands.LeaveResult{RemovedFromBarberID: barberID}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/leave", nil, "")

		var resp resdto.LeaveQueueResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(barberID, resp.RemovedFromBarberID)
	})

	s.Run("leaving while not queued is a 404", func() {
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), s.customerID).
			Return(nil, commands.ErrNotInQueue)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/leave", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not currently in any queue")
	})
}

func (s *QueueHandlerTestSuite) TestStatus() {
	s.Run("reports the live projection while queued", func() {
		barberID := uuid.New()
		s.mockQueries.EXPECT().
			Status(gomock.Any(), s.customerID).
			Return(s.queuedStatus(barberID), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/status", nil, "")

		var resp resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.InQueue)
		s.Equal(4, resp.Position)
	})

	s.Run("out of queue is a plain 200, not an error", func() {
		s.mockQueries.EXPECT().
			Status(gomock.Any(), s.customerID).
			Return(&queries.QueueStatus{InQueue: false}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/status", nil, "")

		var resp resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.InQueue)
		s.Zero(resp.Position)
		s.Nil(resp.BarberID)
	})
}
