package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/moviedeck/moviedeck/internal/facades"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

// MoviesLister defines the interface that the movies service must implement
// for the listing endpoints.
type MoviesLister interface {
	GetTrendingMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
	GetPopularMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
	GetTopRatedMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
}

// MoviesErrorResponse represents an error response for movie endpoints
// swagger:model MoviesErrorResponse
type MoviesErrorResponse struct {
	// Error message
	// example: failed to fetch movies
	Message string `json:"message"`
}

// NewTrendingMoviesHandler returns an HTTP handler for the trending listing.
// @Summary Trending movies
// @Description Returns a page of the weekly trending listing
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedMovies "Trending movies"
// @Failure 502 {object} handlers.MoviesErrorResponse "Upstream error"
// @Router /api/movies/trending [get]
func NewTrendingMoviesHandler(svc MoviesLister) http.HandlerFunc {
	return listingHandler(func(ctx context.Context, page int) (*models.PaginatedMovies, error) {
		return svc.GetTrendingMovies(ctx, page)
	})
}

// NewPopularMoviesHandler returns an HTTP handler for the popular listing.
// @Summary Popular movies
// @Description Returns a page of the popular listing
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedMovies "Popular movies"
// @Failure 502 {object} handlers.MoviesErrorResponse "Upstream error"
// @Router /api/movies/popular [get]
func NewPopularMoviesHandler(svc MoviesLister) http.HandlerFunc {
	return listingHandler(func(ctx context.Context, page int) (*models.PaginatedMovies, error) {
		return svc.GetPopularMovies(ctx, page)
	})
}

// NewTopRatedMoviesHandler returns an HTTP handler for the top-rated listing.
// @Summary Top-rated movies
// @Description Returns a page of the top-rated listing
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedMovies "Top-rated movies"
// @Failure 502 {object} handlers.MoviesErrorResponse "Upstream error"
// @Router /api/movies/top-rated [get]
func NewTopRatedMoviesHandler(svc MoviesLister) http.HandlerFunc {
	return listingHandler(func(ctx context.Context, page int) (*models.PaginatedMovies, error) {
		return svc.GetTopRatedMovies(ctx, page)
	})
}

func listingHandler(fetch func(ctx context.Context, page int) (*models.PaginatedMovies, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := parsePage(r)

		result, err := fetch(r.Context(), page)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// parsePage reads the page query parameter, defaulting to 1.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// writeUpstreamError maps catalog errors to responses. Upstream timeouts are
// surfaced distinctly from other upstream failures.
func writeUpstreamError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, facades.ErrTMDBTimeout):
		logger.Log.Errorw("upstream timeout", "error", err)
		w.WriteHeader(http.StatusGatewayTimeout)
		json.NewEncoder(w).Encode(MoviesErrorResponse{
			Message: "upstream request timed out",
		})
	default:
		logger.Log.Errorw("upstream error", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(MoviesErrorResponse{
			Message: "failed to fetch movies",
		})
	}
}
