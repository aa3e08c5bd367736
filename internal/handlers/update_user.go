package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/jwt"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID uuid.UUID, firstName, lastName, avatarURL *string) (*models.User, error)
}

// UpdateUserRequest represents the JSON body for a partial profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	// example: John
	FirstName *string `json:"firstName"`

	// Last name
	// example: Doe
	LastName *string `json:"lastName"`

	// Avatar URL
	// example: https://example.com/avatar.png
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateUserResponse represents a successful profile update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	User *models.User `json:"user"`
}

// UpdateUserErrorResponse represents an error response for profile updates
// swagger:model UpdateUserErrorResponse
type UpdateUserErrorResponse struct {
	// Error message
	// example: unauthorized
	Message string `json:"message"`
}

// NewUpdateUserHandler returns an HTTP handler for partial profile updates.
// @Summary Update user profile
// @Description Applies a partial update to the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile update request"
// @Success 200 {object} handlers.UpdateUserResponse "Updated user"
// @Failure 401 {object} handlers.UpdateUserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateUserErrorResponse "User not found"
// @Router /api/auth/update [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		user, err := svc.UpdateUser(ctx, claims.UserID, req.FirstName, req.LastName, req.AvatarURL)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Message: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Message: "internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			User: user,
		})
	}
}

// claimsFromRequest extracts and verifies the bearer token of a request.
func claimsFromRequest(ctx context.Context, tokener Tokener, r *http.Request) (*jwt.Claims, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return tokener.GetClaims(ctx, tokenStr)
}

// writeUnauthorized writes the generic 401 body. Missing, malformed and
// expired tokens are indistinguishable to the caller.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
}
