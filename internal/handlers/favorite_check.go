package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
)

// FavoriteChecker defines the interface that the service must implement.
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) (bool, error)
}

// FavoriteCheckResponse represents the existence check result
// swagger:model FavoriteCheckResponse
type FavoriteCheckResponse struct {
	// Whether the title is in the caller's favorites
	// example: true
	IsFavorite bool `json:"isFavorite"`
}

// NewFavoriteCheckHandler returns an HTTP handler checking whether a title is favorited.
// @Summary Check a favorite
// @Description Reports whether the authenticated user has favorited the title
// @Tags favorites
// @Produce json
// @Param tmdbId path int true "Catalog identifier"
// @Param mediaType query string false "movie or tv" default(movie)
// @Success 200 {object} handlers.FavoriteCheckResponse "Existence result"
// @Failure 401 {object} handlers.FavoritesErrorResponse "Unauthorized"
// @Router /api/favorites/{tmdbId}/check [get]
// @Security BearerAuth
func NewFavoriteCheckHandler(svc FavoriteChecker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		tmdbID, err := strconv.ParseInt(chi.URLParam(r, "tmdbId"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: "invalid tmdbId",
			})
			return
		}

		mediaType := r.URL.Query().Get("mediaType")

		isFavorite, err := svc.IsFavorite(ctx, claims.UserID, tmdbID, mediaType)
		if err != nil {
			logger.Log.Errorw("failed to check favorite", "userID", claims.UserID, "tmdbID", tmdbID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: "internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FavoriteCheckResponse{
			IsFavorite: isFavorite,
		})
	}
}
