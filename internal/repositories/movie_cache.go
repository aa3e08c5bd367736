package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

// MovieCacheRepository provides cached upstream catalog responses using Redis
type MovieCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached responses
}

// NewMovieCacheRepository creates a new repository instance with a TTL for entries
func NewMovieCacheRepository(client *redis.Client, expiration time.Duration) *MovieCacheRepository {
	return &MovieCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPage fetches a cached listing or search page. The key identifies the
// listing and page, e.g. "trending:1" or "search:batman:2".
func (r *MovieCacheRepository) GetPage(ctx context.Context, key string) (*models.PaginatedMovies, error) {
	cacheKey := fmt.Sprintf("movies:%s", key)

	val, err := r.client.Get(ctx, cacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", cacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("movie page not found in cache for %s", key)
		}
		return nil, err
	}

	var page models.PaginatedMovies
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		logger.Log.Infow(
			"key", cacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", cacheKey,
		"result", len(page.Results),
		"error", nil,
	)

	return &page, nil
}

// SetPage caches a listing or search page with expiration.
func (r *MovieCacheRepository) SetPage(ctx context.Context, key string, page *models.PaginatedMovies) error {
	cacheKey := fmt.Sprintf("movies:%s", key)

	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, cacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", cacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}

// GetDetails fetches cached movie details.
func (r *MovieCacheRepository) GetDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	cacheKey := fmt.Sprintf("movie_details:%d", movieID)

	val, err := r.client.Get(ctx, cacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", cacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("movie details not found in cache for %d", movieID)
		}
		return nil, err
	}

	var details models.MovieDetails
	if err := json.Unmarshal([]byte(val), &details); err != nil {
		return nil, err
	}

	logger.Log.Infow(
		"key", cacheKey,
		"result", details.ID,
		"error", nil,
	)

	return &details, nil
}

// SetDetails caches movie details with expiration.
func (r *MovieCacheRepository) SetDetails(ctx context.Context, details *models.MovieDetails) error {
	cacheKey := fmt.Sprintf("movie_details:%d", details.ID)

	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, cacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", cacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}
