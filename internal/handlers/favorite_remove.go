package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/services"
)

// FavoriteRemover defines the interface that the service must implement.
type FavoriteRemover interface {
	RemoveFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) error
}

// NewFavoriteRemoveHandler returns an HTTP handler removing a favorite.
// Favorites of other users never match the caller's lookup, so non-owners
// always get 404.
// @Summary Remove a favorite
// @Description Removes a title from the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Param tmdbId path int true "Catalog identifier"
// @Param mediaType query string false "movie or tv" default(movie)
// @Success 204 "Removed"
// @Failure 401 {object} handlers.FavoritesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FavoritesErrorResponse "Favorite not found"
// @Router /api/favorites/{tmdbId} [delete]
// @Security BearerAuth
func NewFavoriteRemoveHandler(svc FavoriteRemover, tokener Tokener) http.HandlerFunc {
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

		if err := svc.RemoveFavorite(ctx, claims.UserID, tmdbID, mediaType); err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrFavoriteNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FavoritesErrorResponse{
					Message: err.Error(),
				})
			default:
				logger.Log.Errorw("failed to remove favorite", "userID", claims.UserID, "tmdbID", tmdbID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoritesErrorResponse{
					Message: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
