package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
)

// MovieSearcher defines the interface that the movies service must implement
// for the search endpoint.
type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string, page int) (*models.PaginatedMovies, error)
}

// NewMoviesSearchHandler returns an HTTP handler for movie search.
// @Summary Search movies
// @Description Returns a page of search results for the q parameter
// @Tags movies
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedMovies "Search results"
// @Failure 400 {object} handlers.MoviesErrorResponse "Missing query"
// @Failure 502 {object} handlers.MoviesErrorResponse "Upstream error"
// @Router /api/movies/search [get]
func NewMoviesSearchHandler(svc MovieSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		page := parsePage(r)

		result, err := svc.SearchMovies(r.Context(), query, page)
		if err != nil {
			if errors.Is(err, services.ErrEmptyQuery) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MoviesErrorResponse{
					Message: err.Error(),
				})
				return
			}
			writeUpstreamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
