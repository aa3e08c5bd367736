package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
	"github.com/stretchr/testify/assert"
)

var errCacheMiss = errors.New("not found in cache")

func TestMoviesService_GetTrendingMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := services.NewMockMovieCatalog(ctrl)
	mockCache := services.NewMockMovieCache(ctrl)

	svc := services.NewMoviesService(mockCatalog, mockCache)

	page := &models.PaginatedMovies{
		Results:      []models.Movie{{ID: 603, Title: "The Matrix"}},
		Page:         1,
		TotalPages:   10,
		TotalResults: 200,
	}

	t.Run("cache hit skips upstream", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "trending:1").Return(page, nil)

		result, err := svc.GetTrendingMovies(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})

	t.Run("cache miss fetches upstream and fills cache", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "trending:2").Return(nil, errCacheMiss)
		mockCatalog.EXPECT().GetTrendingMovies(gomock.Any(), 2).Return(page, nil)
		mockCache.EXPECT().SetPage(gomock.Any(), "trending:2", page).Return(nil)

		result, err := svc.GetTrendingMovies(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})

	t.Run("page below one normalized to one", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "trending:1").Return(page, nil)

		result, err := svc.GetTrendingMovies(context.Background(), 0)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})

	t.Run("upstream error", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "trending:1").Return(nil, errCacheMiss)
		mockCatalog.EXPECT().GetTrendingMovies(gomock.Any(), 1).Return(nil, errors.New("upstream down"))

		result, err := svc.GetTrendingMovies(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("cache fill failure is not fatal", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "trending:1").Return(nil, errCacheMiss)
		mockCatalog.EXPECT().GetTrendingMovies(gomock.Any(), 1).Return(page, nil)
		mockCache.EXPECT().SetPage(gomock.Any(), "trending:1", page).Return(errors.New("redis down"))

		result, err := svc.GetTrendingMovies(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})
}

func TestMoviesService_GetPopularMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := services.NewMockMovieCatalog(ctrl)
	mockCache := services.NewMockMovieCache(ctrl)

	svc := services.NewMoviesService(mockCatalog, mockCache)

	page := &models.PaginatedMovies{Page: 3}

	mockCache.EXPECT().GetPage(gomock.Any(), "popular:3").Return(nil, errCacheMiss)
	mockCatalog.EXPECT().GetPopularMovies(gomock.Any(), 3).Return(page, nil)
	mockCache.EXPECT().SetPage(gomock.Any(), "popular:3", page).Return(nil)

	result, err := svc.GetPopularMovies(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, page, result)
}

func TestMoviesService_GetTopRatedMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := services.NewMockMovieCatalog(ctrl)
	mockCache := services.NewMockMovieCache(ctrl)

	svc := services.NewMoviesService(mockCatalog, mockCache)

	page := &models.PaginatedMovies{Page: 1}

	mockCache.EXPECT().GetPage(gomock.Any(), "top_rated:1").Return(nil, errCacheMiss)
	mockCatalog.EXPECT().GetTopRatedMovies(gomock.Any(), 1).Return(page, nil)
	mockCache.EXPECT().SetPage(gomock.Any(), "top_rated:1", page).Return(nil)

	result, err := svc.GetTopRatedMovies(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, page, result)
}

func TestMoviesService_SearchMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := services.NewMockMovieCatalog(ctrl)
	mockCache := services.NewMockMovieCache(ctrl)

	svc := services.NewMoviesService(mockCatalog, mockCache)

	page := &models.PaginatedMovies{
		Results: []models.Movie{{ID: 155, Title: "The Dark Knight"}},
		Page:    1,
	}

	t.Run("empty query", func(t *testing.T) {
		result, err := svc.SearchMovies(context.Background(), "", 1)
		assert.ErrorIs(t, err, services.ErrEmptyQuery)
		assert.Nil(t, result)
	})

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "search:batman:1").Return(page, nil)

		result, err := svc.SearchMovies(context.Background(), "batman", 1)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})

	t.Run("cache miss fetches upstream", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "search:batman:2").Return(nil, errCacheMiss)
		mockCatalog.EXPECT().SearchMovies(gomock.Any(), "batman", 2).Return(page, nil)
		mockCache.EXPECT().SetPage(gomock.Any(), "search:batman:2", page).Return(nil)

		result, err := svc.SearchMovies(context.Background(), "batman", 2)
		assert.NoError(t, err)
		assert.Equal(t, page, result)
	})

	t.Run("upstream error", func(t *testing.T) {
		mockCache.EXPECT().GetPage(gomock.Any(), "search:batman:1").Return(nil, errCacheMiss)
		mockCatalog.EXPECT().SearchMovies(gomock.Any(), "batman", 1).Return(nil, errors.New("upstream down"))

		result, err := svc.SearchMovies(context.Background(), "batman", 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestMoviesService_GetMovieDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := services.NewMockMovieCatalog(ctrl)
	mockCache := services.NewMockMovieCache(ctrl)

	svc := services.NewMoviesService(mockCatalog, mockCache)

	details := &models.MovieDetails{
		Movie:  models.Movie{ID: 603, Title: "The Matrix"},
		Genres: []models.Genre{{ID: 28, Name: "Action"}},
	}

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().GetDetails(gomock.Any(), int64(603)).Return(details, nil)

		result, err := svc.GetMovieDetails(context.Background(), 603)
		assert.NoError(t, err)
		assert.Equal(t, details, result)
	})

	t.Run("cache miss fetches upstream and fills cache", func(t *testing.T) {
		mockCache.EXPECT().GetDetails(gomock.Any(), int64(603)).Return(nil, errCacheMiss)
		mockCatalog.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(details, nil)
		mockCache.EXPECT().SetDetails(gomock.Any(), details).Return(nil)

		result, err := svc.GetMovieDetails(context.Background(), 603)
		assert.NoError(t, err)
		assert.Equal(t, details, result)
	})

	t.Run("upstream error", func(t *testing.T) {
		mockCache.EXPECT().GetDetails(gomock.Any(), int64(603)).Return(nil, errCacheMiss)
		mockCatalog.EXPECT().GetMovieDetails(gomock.Any(), int64(603)).Return(nil, errors.New("upstream down"))

		result, err := svc.GetMovieDetails(context.Background(), 603)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
