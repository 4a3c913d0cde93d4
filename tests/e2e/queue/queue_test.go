//go:build e2e

package queue_test

import (
	"fmt"
	"net/http"
	"testing"

	"barberline/internal/handler/dto/request"
	"barberline/internal/handler/dto/response"
	"barberline/tests/common/authtest"
	"barberline/tests/common/dbtest"
	"barberline/tests/common/httptest"
	"barberline/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	joinURL    = "/api/queue/join"
	leaveURL   = "/api/queue/leave"
	statusURL  = "/api/queue/status"
	nearbyURL  = "/api/barbers/nearby"
	queueURL   = "/api/barbers/%s/queue"
	removeURL  = "/api/barbers/%s/queue/%s?reason=%s"
	historyURL = "/api/barbers/%s/history"
)

type QueueSuite struct {
	e2e.SharedSuite
}

func (s *QueueSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestQueueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QueueSuite))
}

func (s *QueueSuite) join(token string, barberID uuid.UUID, kind string) *response.QueueStatusResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, joinURL,
		request.JoinQueueRequest{BarberID: barberID, ServiceKind: kind}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var status response.QueueStatusResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &status))
	return &status
}

func (s *QueueSuite) status(token string) *response.QueueStatusResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, statusURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var status response.QueueStatusResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &status))
	return &status
}

// =============================================================================
// TestWalkInFlow - the whole counter flow: open shop, two walk-ins, one served
// =============================================================================

func (s *QueueSuite) TestWalkInFlow() {
	s.Run("two customers queue up and the first is served", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000001", "B1 Cuts", 12.9, 77.6)
		barberToken := authtest.SigninBarber(t, s.Router, "+911000000001", dbtest.TestPassword)
		u1ID := dbtest.CreateTestCustomer(t, s.DB, "+912000000001", "U1")
		u1Token := authtest.SigninCustomer(t, s.Router, "+912000000001", dbtest.TestPassword)
		u2Token := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000002", "U2")

		// U1 walks in first
		u1Status := s.join(u1Token, barberID, "haircut")
		require.Equal(t, 1, u1Status.Position)
		require.Equal(t, 0, u1Status.EstimatedWaitMinutes)

		// U2 queues behind and waits one service slot (default 15 minutes)
		u2Status := s.join(u2Token, barberID, "beard")
		require.Equal(t, 2, u2Status.Position)
		require.Equal(t, 15, u2Status.EstimatedWaitMinutes)

		// A third party searching near the shop sees the live queue length
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			nearbyURL+"?lat=12.9&long=77.6&radius_km=5", nil, u1Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var nearby []*response.NearbyBarberResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &nearby))
		require.Len(t, nearby, 1)
		require.Equal(t, "B1 Cuts", nearby[0].Name)
		require.Equal(t, 2, nearby[0].QueueLength)

		// The barber serves U1
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(removeURL, barberID, u1ID, "served"), nil, barberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var removed response.RemoveFromQueueResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &removed))
		require.Equal(t, u1ID, removed.RemovedCustomerID)

		// U2 is now at the front; the wait collapsed to zero
		u2Status = s.status(u2Token)
		require.True(t, u2Status.InQueue)
		require.Equal(t, 1, u2Status.Position)
		require.Equal(t, 0, u2Status.EstimatedWaitMinutes)

		// U1 is out of queue and the visit is in history
		u1Status = s.status(u1Token)
		require.False(t, u1Status.InQueue)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(historyURL, barberID), nil, barberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var history []*response.HistoryRecordResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Len(t, history, 1)
		require.Equal(t, "U1", history[0].CustomerName)
		require.Equal(t, "haircut", history[0].ServiceKind)
	})
}

// =============================================================================
// TestSingleQueueMembership - one live entry per customer, system-wide
// =============================================================================

func (s *QueueSuite) TestSingleQueueMembership() {
	s.Run("joining a second shop silently leaves the first", func() {
		t := s.T()

		firstID := dbtest.CreateTestBarber(t, s.DB, "+911000000011", "First Shop", 12.9, 77.6)
		secondID := dbtest.CreateTestBarber(t, s.DB, "+911000000012", "Second Shop", 12.91, 77.61)
		firstToken := authtest.SigninBarber(t, s.Router, "+911000000011", dbtest.TestPassword)
		customerToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000011", "Switcher")

		s.join(customerToken, firstID, "haircut")
		status := s.join(customerToken, secondID, "haircut_beard")

		require.Equal(t, secondID, *status.BarberID)
		require.Equal(t, 1, status.Position)

		// The first shop's queue is empty again
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(queueURL, firstID), nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list response.QueueListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))

		expected := &response.QueueListResponse{BarberID: firstID, Entries: []*response.QueueEntryResponse{}}
		if diff := cmp.Diff(expected, &list, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Queue list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("rejoining the same shop moves the customer to the back", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000013", "Loop Shop", 12.9, 77.6)
		frontToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000012", "Front")
		rejoinToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000013", "Rejoiner")

		s.join(rejoinToken, barberID, "haircut")
		s.join(frontToken, barberID, "haircut")

		status := s.join(rejoinToken, barberID, "haircut")
		require.Equal(t, 2, status.Position, "rejoin must not keep the old slot")
	})
}

// =============================================================================
// TestLeave
// =============================================================================

func (s *QueueSuite) TestLeave() {
	s.Run("leave then leave again", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000021", "Leave Shop", 12.9, 77.6)
		token := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000021", "Leaver")

		s.join(token, barberID, "haircut")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, leaveURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var left response.LeaveQueueResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &left))
		require.Equal(t, barberID, left.RemovedFromBarberID)

		// Second leave is an honest 404, not a silent success
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, leaveURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("queue positions close up after a leave", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000022", "Shift Shop", 12.9, 77.6)
		firstToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000022", "First")
		secondToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000023", "Second")

		s.join(firstToken, barberID, "haircut")
		s.join(secondToken, barberID, "haircut")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, leaveURL, nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		status := s.status(secondToken)
		require.Equal(t, 1, status.Position)
		require.Equal(t, 0, status.EstimatedWaitMinutes)
	})
}

// =============================================================================
// TestOperatorRemoval
// =============================================================================

func (s *QueueSuite) TestOperatorRemoval() {
	s.Run("no_show removal leaves no history", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000031", "NoShow Shop", 12.9, 77.6)
		barberToken := authtest.SigninBarber(t, s.Router, "+911000000031", dbtest.TestPassword)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "+912000000031", "Ghost")
		customerToken := authtest.SigninCustomer(t, s.Router, "+912000000031", dbtest.TestPassword)

		s.join(customerToken, barberID, "haircut")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(removeURL, barberID, customerID, "no_show"), nil, barberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(historyURL, barberID), nil, barberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var history []*response.HistoryRecordResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Empty(t, history)
	})

	s.Run("removing a customer queued elsewhere is refused", func() {
		t := s.T()

		ownID := dbtest.CreateTestBarber(t, s.DB, "+911000000032", "Own Shop", 12.9, 77.6)
		otherID := dbtest.CreateTestBarber(t, s.DB, "+911000000033", "Other Shop", 12.91, 77.61)
		ownToken := authtest.SigninBarber(t, s.Router, "+911000000032", dbtest.TestPassword)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "+912000000032", "Elsewhere")
		customerToken := authtest.SigninCustomer(t, s.Router, "+912000000032", dbtest.TestPassword)

		s.join(customerToken, otherID, "haircut")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(removeURL, ownID, customerID, "served"), nil, ownToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// The entry elsewhere is untouched
		status := s.status(customerToken)
		require.True(t, status.InQueue)
		require.Equal(t, otherID, *status.BarberID)
	})

	s.Run("a barber cannot operate another shop's queue", func() {
		t := s.T()

		dbtest.CreateTestBarber(t, s.DB, "+911000000034", "Mine", 12.9, 77.6)
		otherID := dbtest.CreateTestBarber(t, s.DB, "+911000000035", "Theirs", 12.91, 77.61)
		ownToken := authtest.SigninBarber(t, s.Router, "+911000000034", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(queueURL, otherID), nil, ownToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestEstimates - per-barber duration override
// =============================================================================

func (s *QueueSuite) TestEstimates() {
	s.Run("a slow shop quotes longer waits", func() {
		t := s.T()

		barberID := dbtest.CreateTestBarber(t, s.DB, "+911000000041", "Slow Shop", 12.9, 77.6)
		dbtest.SetBarberAvgMinutes(t, s.DB, barberID, 25)
		firstToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000041", "First")
		secondToken := authtest.CreateAndSigninCustomer(t, s.DB, s.Router, "+912000000042", "Second")

		s.join(firstToken, barberID, "haircut")
		status := s.join(secondToken, barberID, "haircut")

		require.Equal(t, 2, status.Position)
		require.Equal(t, 25, status.EstimatedWaitMinutes)
	})
}

// =============================================================================
// TestAuthFlow - signup through the API instead of fixtures
// =============================================================================

func (s *QueueSuite) TestAuthFlow() {
	s.Run("signup, join, status round-trip", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/barbers/signup",
			request.BarberSignupRequest{
				Phone: "+911000000051", Name: "Fresh Shop", Password: "password123",
				Latitude: 12.9352, Longitude: 77.6245,
			}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var barberAuth response.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &barberAuth))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/customers/signup",
			request.CustomerSignupRequest{
				Phone: "+912000000051", Name: "Fresh Customer", Password: "password123",
			}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var customerAuth response.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &customerAuth))

		status := s.join(customerAuth.Token, barberAuth.ID, "haircut")
		require.Equal(t, 1, status.Position)

		// A customer token cannot read the barber-side queue view
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(queueURL, barberAuth.ID), nil, customerAuth.Token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// No token at all is a 401
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statusURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("duplicate phone signup is a 409", func() {
		t := s.T()

		body := request.CustomerSignupRequest{Phone: "+912000000052", Name: "Dup", Password: "password123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/customers/signup", body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/customers/signup", body, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
