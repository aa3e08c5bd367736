package handlers

import (
	"context"
	"net/http"

	"github.com/moviedeck/moviedeck/internal/jwt"
)

// Tokener defines the token operations protected handlers need to resolve
// the calling user.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}
