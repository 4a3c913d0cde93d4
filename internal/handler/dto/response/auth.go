package response

import (
	"barberline/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Token string    `json:"token"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		ID:    result.ID,
		Name:  result.Name,
		Role:  result.Role,
		Token: result.Token,
	}
}
