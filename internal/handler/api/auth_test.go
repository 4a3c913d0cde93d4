//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"barberline/internal/handler/api"
	resdto "barberline/internal/handler/dto/response"
	"barberline/internal/pkg/jwt"
	"barberline/internal/usecase/commands"
	"barberline/tests/common/httptest"
	commandsmock "barberline/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/customers/signup", s.handler.CustomerSignup)
	s.router.POST("/auth/customers/signin", s.handler.CustomerSignin)
	s.router.POST("/auth/barbers/signup", s.handler.BarberSignup)
	s.router.POST("/auth/barbers/signin", s.handler.BarberSignin)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestCustomerSignup() {
	body := map[string]any{
		"phone":    "+919812345678",
		"name":     "Uma",
		"password": "correct-horse",
	}

	s.Run("creates the account and returns a token", func() {
		result := &commands.AuthResult{
			ID:    uuid.New(),
			Name:  "Uma",
			Role:  jwt.RoleCustomer,
			Token: "issued-token",
		}
		s.mockCommands.EXPECT().
			SignupCustomer(gomock.Any(), "+919812345678", "Uma", "correct-horse").
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/customers/signup", body, "")

		var resp resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("issued-token", resp.Token)
		s.Equal(jwt.RoleCustomer, resp.Role)
	})

	s.Run("short password never reaches the command", func() {
		bad := map[string]any{"phone": "+919812345678", "name": "Uma", "password": "short"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/customers/signup", bad, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("taken phone is a 409", func() {
		s.mockCommands.EXPECT().
			SignupCustomer(gomock.Any(), "+919812345678", "Uma", "correct-horse").
			Return(nil, commands.ErrPhoneAlreadyTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/customers/signup", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already registered")
	})
}

func (s *AuthHandlerTestSuite) TestBarberSignup() {
	body := map[string]any{
		"phone":     "+919811111111",
		"name":      "Fade Factory",
		"password":  "correct-horse",
		"latitude":  12.9352,
		"longitude": 77.6245,
	}

	s.Run("creates the shop with its coordinates", func() {
		result := &commands.AuthResult{
			ID:    uuid.New(),
			Name:  "Fade Factory",
			Role:  jwt.RoleBarber,
			Token: "issued-token",
		}
		s.mockCommands.EXPECT().
			SignupBarber(gomock.Any(), "+919811111111", "Fade Factory", "correct-horse", 12.9352, 77.6245).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/barbers/signup", body, "")

		var resp resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(jwt.RoleBarber, resp.Role)
	})

	s.Run("latitude past the pole is a 400", func() {
		bad := map[string]any{
			"phone": "+919811111111", "name": "Fade Factory", "password": "correct-horse",
			"latitude": 97.0, "longitude": 77.6,
		}
		s.mockCommands.EXPECT().
			SignupBarber(gomock.Any(), "+919811111111", "Fade Factory", "correct-horse", 97.0, 77.6).
			Return(nil, commands.ErrInvalidSignup)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/barbers/signup", bad, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid signup data")
	})
}

func (s *AuthHandlerTestSuite) TestSignin() {
	body := map[string]any{"phone": "+919812345678", "password": "correct-horse"}

	s.Run("valid credentials return a token", func() {
		result := &commands.AuthResult{
			ID:    uuid.New(),
			Name:  "Uma",
			Role:  jwt.RoleCustomer,
			Token: "issued-token",
		}
		s.mockCommands.EXPECT().
			SigninCustomer(gomock.Any(), "+919812345678", "correct-horse").
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/customers/signin", body, "")

		var resp resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("issued-token", resp.Token)
	})

	s.Run("bad credentials are a 401 with no phone-existence hint", func() {
		s.mockCommands.EXPECT().
			SigninCustomer(gomock.Any(), "+919812345678", "correct-horse").
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/customers/signin", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid phone or password")
	})

	s.Run("barber signin goes through the barber store", func() {
		result := &commands.AuthResult{
			ID:    uuid.New(),
			Name:  "Fade Factory",
			Role:  jwt.RoleBarber,
			Token: "issued-token",
		}
		s.mockCommands.EXPECT().
			SigninBarber(gomock.Any(), "+919812345678", "correct-horse").
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/barbers/signin", body, "")

		var resp resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(jwt.RoleBarber, resp.Role)
	})
}
