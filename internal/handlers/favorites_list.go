package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

// FavoritesLister defines the interface that the service must implement.
type FavoritesLister interface {
	GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
}

// FavoritesErrorResponse represents an error response for favorites operations
// swagger:model FavoritesErrorResponse
type FavoritesErrorResponse struct {
	// Error message
	// example: unauthorized
	Message string `json:"message"`
}

// NewFavoritesListHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorites
// @Description Returns all favorites of the authenticated user, newest first
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Favorite "Favorites"
// @Failure 401 {object} handlers.FavoritesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.FavoritesErrorResponse "Internal server error"
// @Router /api/favorites [get]
// @Security BearerAuth
func NewFavoritesListHandler(svc FavoritesLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		favorites, err := svc.GetUserFavorites(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites", "userID", claims.UserID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: "internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(favorites)
	}
}
