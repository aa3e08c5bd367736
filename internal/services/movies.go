package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

// ErrEmptyQuery is returned when a search is requested without a query.
var ErrEmptyQuery = errors.New("search query is required")

// MovieCatalog fetches movie data from the upstream catalog.
type MovieCatalog interface {
	GetTrendingMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
	GetPopularMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
	GetTopRatedMovies(ctx context.Context, page int) (*models.PaginatedMovies, error)
	SearchMovies(ctx context.Context, query string, page int) (*models.PaginatedMovies, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error)
}

// MovieCache caches upstream catalog responses.
type MovieCache interface {
	GetPage(ctx context.Context, key string) (*models.PaginatedMovies, error)
	SetPage(ctx context.Context, key string, page *models.PaginatedMovies) error
	GetDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error)
	SetDetails(ctx context.Context, details *models.MovieDetails) error
}

// MoviesService serves catalog listings with a cache fast path.
type MoviesService struct {
	catalog MovieCatalog
	cache   MovieCache
}

// NewMoviesService creates a new service instance
func NewMoviesService(catalog MovieCatalog, cache MovieCache) *MoviesService {
	return &MoviesService{
		catalog: catalog,
		cache:   cache,
	}
}

// GetTrendingMovies returns a page of the trending listing.
func (svc *MoviesService) GetTrendingMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return svc.getListing(ctx, "trending", page, svc.catalog.GetTrendingMovies)
}

// GetPopularMovies returns a page of the popular listing.
func (svc *MoviesService) GetPopularMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return svc.getListing(ctx, "popular", page, svc.catalog.GetPopularMovies)
}

// GetTopRatedMovies returns a page of the top-rated listing.
func (svc *MoviesService) GetTopRatedMovies(ctx context.Context, page int) (*models.PaginatedMovies, error) {
	return svc.getListing(ctx, "top_rated", page, svc.catalog.GetTopRatedMovies)
}

// SearchMovies returns a page of search results for the query.
func (svc *MoviesService) SearchMovies(ctx context.Context, query string, page int) (*models.PaginatedMovies, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("search:%s:%d", query, page)
	if cached, err := svc.cache.GetPage(ctx, key); err == nil {
		return cached, nil
	}

	result, err := svc.catalog.SearchMovies(ctx, query, page)
	if err != nil {
		logger.Log.Errorw("failed to search movies", "query", query, "page", page, "error", err)
		return nil, err
	}

	if err := svc.cache.SetPage(ctx, key, result); err != nil {
		logger.Log.Errorw("failed to cache search page", "key", key, "error", err)
	}

	return result, nil
}

// GetMovieDetails returns a single title with extended fields.
func (svc *MoviesService) GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	if cached, err := svc.cache.GetDetails(ctx, movieID); err == nil {
		return cached, nil
	}

	details, err := svc.catalog.GetMovieDetails(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie details", "movieID", movieID, "error", err)
		return nil, err
	}

	if err := svc.cache.SetDetails(ctx, details); err != nil {
		logger.Log.Errorw("failed to cache movie details", "movieID", movieID, "error", err)
	}

	return details, nil
}

func (svc *MoviesService) getListing(ctx context.Context, listing string, page int, fetch func(context.Context, int) (*models.PaginatedMovies, error)) (*models.PaginatedMovies, error) {
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("%s:%d", listing, page)
	if cached, err := svc.cache.GetPage(ctx, key); err == nil {
		return cached, nil
	}

	result, err := fetch(ctx, page)
	if err != nil {
		logger.Log.Errorw("failed to fetch listing", "listing", listing, "page", page, "error", err)
		return nil, err
	}

	if err := svc.cache.SetPage(ctx, key, result); err != nil {
		logger.Log.Errorw("failed to cache listing page", "key", key, "error", err)
	}

	return result, nil
}
