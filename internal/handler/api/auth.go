package api

import (
	"errors"
	"net/http"

	reqdto "barberline/internal/handler/dto/request"
	resdto "barberline/internal/handler/dto/response"
	"barberline/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{authCommands: authCommands}
}

// @Summary Customer signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerSignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/customers/signup [post]
func (h *AuthHandler) CustomerSignup(c *gin.Context) {
	var req reqdto.CustomerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SignupCustomer(c.Request.Context(), req.Phone, req.Name, req.Password)
	if err != nil {
		h.writeSignupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Customer signin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SigninRequest true "Signin request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/customers/signin [post]
func (h *AuthHandler) CustomerSignin(c *gin.Context) {
	var req reqdto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SigninCustomer(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		h.writeSigninError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Barber signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.BarberSignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/barbers/signup [post]
func (h *AuthHandler) BarberSignup(c *gin.Context) {
	var req reqdto.BarberSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SignupBarber(
		c.Request.Context(), req.Phone, req.Name, req.Password, req.Latitude, req.Longitude,
	)
	if err != nil {
		h.writeSignupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Barber signin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SigninRequest true "Signin request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/barbers/signin [post]
func (h *AuthHandler) BarberSignin(c *gin.Context) {
	var req reqdto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SigninBarber(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		h.writeSigninError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

func (h *AuthHandler) writeSignupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidSignup):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid signup data",
		})
	case errors.Is(err, commands.ErrPhoneAlreadyTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Phone number already registered",
		})
	case errors.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Store unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *AuthHandler) writeSigninError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid phone or password",
		})
	case errors.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Store unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
