//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"barberline/internal/handler/dto/request"
	"barberline/internal/handler/dto/response"
	"barberline/tests/common/dbtest"
	"barberline/tests/common/httptest"
	"barberline/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	customerSignupURL = "/api/auth/customers/signup"
	customerSigninURL = "/api/auth/customers/signin"
	barberSignupURL   = "/api/auth/barbers/signup"
	barberSigninURL   = "/api/auth/barbers/signin"
	statusURL         = "/api/queue/status"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用アカウントを作成
	dbtest.CreateTestCustomer(s.T(), s.DB, "+919900000001", "Signin Customer")
	dbtest.CreateTestBarber(s.T(), s.DB, "+919900000002", "Signin Barber", 12.9, 77.6)
}

func (s *authSuite) TestCustomerSignin() {
	tests := []struct {
		name           string
		phone          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なサインイン",
			phone:          "+919900000001",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しない電話番号",
			phone:          "+919900009999",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			phone:          "+919900000001",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "理容師アカウントでは顧客サインインできない",
			phone:          "+919900000002",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, customerSigninURL,
				request.SigninRequest{Phone: tt.phone, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var auth response.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &auth))
				require.NotEmpty(t, auth.Token)
				require.Equal(t, "customer", auth.Role)
			}
		})
	}
}

func (s *authSuite) TestBarberSignin() {
	s.Run("理容師は自分の側のエンドポイントでサインインできる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, barberSigninURL,
			request.SigninRequest{Phone: "+919900000002", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var auth response.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &auth))
		require.Equal(t, "barber", auth.Role)
		require.Equal(t, "Signin Barber", auth.Name)
	})

	s.Run("顧客アカウントでは理容師サインインできない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, barberSigninURL,
			request.SigninRequest{Phone: "+919900000001", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestSignupValidation() {
	tests := []struct {
		name           string
		body           any
		url            string
		expectedStatus int
	}{
		{
			name: "正常な顧客登録",
			url:  customerSignupURL,
			body: request.CustomerSignupRequest{
				Phone: "+919900001001", Name: "New Customer", Password: "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "短すぎるパスワード",
			url:  customerSignupURL,
			body: request.CustomerSignupRequest{
				Phone: "+919900001002", Name: "Short", Password: "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "既に登録済みの電話番号",
			url:  customerSignupURL,
			body: request.CustomerSignupRequest{
				Phone: "+919900000001", Name: "Dup", Password: "password123",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "正常な理容師登録",
			url:  barberSignupURL,
			body: request.BarberSignupRequest{
				Phone: "+919900001003", Name: "New Barber", Password: "password123",
				Latitude: 12.9352, Longitude: 77.6245,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "範囲外の座標",
			url:  barberSignupURL,
			body: request.BarberSignupRequest{
				Phone: "+919900001004", Name: "Off Globe", Password: "password123",
				Latitude: 97.0, Longitude: 77.6245,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "座標なしの理容師登録",
			url:  barberSignupURL,
			body: request.BarberSignupRequest{
				Phone: "+919900001005", Name: "Nowhere", Password: "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, tt.url, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestTokenGating() {
	s.Run("トークンなしでは保護されたエンドポイントにアクセスできない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statusURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("壊れたトークンは拒否される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statusURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
