package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/moviedeck/moviedeck/internal/facades"
	"github.com/moviedeck/moviedeck/internal/models"
)

// MovieDetailsGetter defines the interface that the movies service must
// implement for the details endpoint.
type MovieDetailsGetter interface {
	GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error)
}

// NewMovieDetailsHandler returns an HTTP handler for a single movie.
// @Summary Movie details
// @Description Returns one title with the extended detail fields
// @Tags movies
// @Produce json
// @Param id path int true "Catalog identifier"
// @Success 200 {object} models.MovieDetails "Movie details"
// @Failure 400 {object} handlers.MoviesErrorResponse "Invalid id"
// @Failure 404 {object} handlers.MoviesErrorResponse "Movie not found"
// @Failure 502 {object} handlers.MoviesErrorResponse "Upstream error"
// @Router /api/movies/{id} [get]
func NewMovieDetailsHandler(svc MovieDetailsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MoviesErrorResponse{
				Message: "invalid movie id",
			})
			return
		}

		details, err := svc.GetMovieDetails(r.Context(), movieID)
		if err != nil {
			if errors.Is(err, facades.ErrMovieNotFound) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MoviesErrorResponse{
					Message: "movie not found",
				})
				return
			}
			writeUpstreamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(details)
	}
}
