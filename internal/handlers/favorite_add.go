package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
)

// FavoriteAdder defines the interface that the service must implement.
type FavoriteAdder interface {
	AddFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, title string, posterPath *string, mediaType string, voteAverage *float64, releaseDate *string) (*models.Favorite, error)
}

// AddFavoriteRequest represents the JSON body for adding a favorite.
// posterPath must be present as a key but its value may be null.
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// Catalog identifier
	// required: true
	// example: 550
	TmdbID *int64 `json:"tmdbId"`

	// Title
	// required: true
	// example: Fight Club
	Title *string `json:"title"`

	// Poster path, nullable
	// required: true
	// example: /x.jpg
	PosterPath json.RawMessage `json:"posterPath"`

	// Media type, movie or tv
	// example: movie
	MediaType string `json:"mediaType"`

	// Vote average
	// example: 8.4
	VoteAverage *float64 `json:"voteAverage"`

	// Release date
	// example: 1999-10-15
	ReleaseDate *string `json:"releaseDate"`
}

// NewFavoriteAddHandler returns an HTTP handler adding a favorite.
// @Summary Add a favorite
// @Description Adds a title to the authenticated user's favorites. A user cannot favorite the same title twice under the same media type.
// @Tags favorites
// @Accept json
// @Produce json
// @Param addFavoriteRequest body handlers.AddFavoriteRequest true "Favorite to add"
// @Success 201 {object} models.Favorite "Created favorite"
// @Failure 400 {object} handlers.FavoritesErrorResponse "Missing fields / already in favorites"
// @Failure 401 {object} handlers.FavoritesErrorResponse "Unauthorized"
// @Router /api/favorites [post]
// @Security BearerAuth
func NewFavoriteAddHandler(svc FavoriteAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		// posterPath must be present as a key; a JSON null is accepted and
		// stored as NULL.
		if req.TmdbID == nil || req.Title == nil || len(req.PosterPath) == 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: services.ErrMissingFavoriteFields.Error(),
			})
			return
		}

		var posterPath *string
		if err := json.Unmarshal(req.PosterPath, &posterPath); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FavoritesErrorResponse{
				Message: "posterPath must be a string or null",
			})
			return
		}

		mediaType := req.MediaType
		if mediaType == "" {
			mediaType = models.MediaTypeMovie
		}

		favorite, err := svc.AddFavorite(ctx, claims.UserID, *req.TmdbID, *req.Title, posterPath, mediaType, req.VoteAverage, req.ReleaseDate)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrFavoriteExists):
				// Upstream contract returns 400 for duplicates, not 409.
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FavoritesErrorResponse{
					Message: favoriteExistsMessage(mediaType),
				})
			case errors.Is(err, services.ErrMissingFavoriteFields),
				errors.Is(err, services.ErrInvalidMediaType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FavoritesErrorResponse{
					Message: err.Error(),
				})
			default:
				logger.Log.Errorw("failed to add favorite", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FavoritesErrorResponse{
					Message: "internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(favorite)
	}
}

func favoriteExistsMessage(mediaType string) string {
	if mediaType == models.MediaTypeTV {
		return "TV show already in favorites"
	}
	return "Movie already in favorites"
}
