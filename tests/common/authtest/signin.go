//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"barberline/internal/handler/dto/request"
	"barberline/tests/common/dbtest"
	"barberline/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func SigninCustomer(t *testing.T, router *gin.Engine, phone, password string) string {
	t.Helper()

	return signin(t, router, "/api/auth/customers/signin", phone, password)
}

func SigninBarber(t *testing.T, router *gin.Engine, phone, password string) string {
	t.Helper()

	return signin(t, router, "/api/auth/barbers/signin", phone, password)
}

func signin(t *testing.T, router *gin.Engine, url, phone, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, url,
		request.SigninRequest{Phone: phone, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	require.NotEmpty(t, resp.Token, "Signin response carried no token")

	return resp.Token
}

func CreateAndSigninCustomer(t *testing.T, db dbtest.DBLike, router *gin.Engine, phone, name string) string {
	t.Helper()
	dbtest.CreateTestCustomer(t, db, phone, name)
	return SigninCustomer(t, router, phone, dbtest.TestPassword)
}

func CreateAndSigninBarber(t *testing.T, db dbtest.DBLike, router *gin.Engine, phone, name string, latitude, longitude float64) string {
	t.Helper()
	dbtest.CreateTestBarber(t, db, phone, name, latitude, longitude)
	return SigninBarber(t, router, phone, dbtest.TestPassword)
}
