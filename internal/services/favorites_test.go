package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestFavoritesService_GetUserFavorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, nil)

	userID := uuid.New()
	poster := "/poster.jpg"

	tests := []struct {
		name      string
		rows      []models.FavoriteDB
		readerErr error
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns favorites",
			rows: []models.FavoriteDB{
				{FavoriteID: uuid.New(), UserID: userID, TmdbID: 603, Title: "The Matrix", PosterPath: &poster, MediaType: models.MediaTypeMovie},
				{FavoriteID: uuid.New(), UserID: userID, TmdbID: 1396, Title: "Breaking Bad", MediaType: models.MediaTypeTV},
			},
			wantLen: 2,
		},
		{
			name:    "empty list",
			rows:    nil,
			wantLen: 0,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUserID(gomock.Any(), userID).
				Return(tt.rows, tt.readerErr)

			favorites, err := svc.GetUserFavorites(context.Background(), userID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, favorites)
			} else {
				assert.NoError(t, err)
				assert.Len(t, favorites, tt.wantLen)
			}
		})
	}
}

func TestFavoritesService_AddFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, nil)

	userID := uuid.New()
	poster := "/poster.jpg"

	tests := []struct {
		name      string
		tmdbID    int64
		title     string
		mediaType string
		exists    bool
		existsErr error
		saveErr   error
		wantErr   error
	}{
		{
			name:      "successful add",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: models.MediaTypeMovie,
		},
		{
			name:      "media type defaults to movie",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: "",
		},
		{
			name:    "missing tmdb id",
			tmdbID:  0,
			title:   "The Matrix",
			wantErr: services.ErrMissingFavoriteFields,
		},
		{
			name:    "missing title",
			tmdbID:  603,
			title:   "",
			wantErr: services.ErrMissingFavoriteFields,
		},
		{
			name:      "invalid media type",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: "book",
			wantErr:   services.ErrInvalidMediaType,
		},
		{
			name:      "already in favorites",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: models.MediaTypeMovie,
			exists:    true,
			wantErr:   services.ErrFavoriteExists,
		},
		{
			name:      "duplicate insert race",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: models.MediaTypeMovie,
			saveErr:   sql.ErrNoRows,
			wantErr:   services.ErrFavoriteExists,
		},
		{
			name:      "exists check error",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: models.MediaTypeMovie,
			existsErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "save error",
			tmdbID:    603,
			title:     "The Matrix",
			mediaType: models.MediaTypeMovie,
			saveErr:   errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validInput := tt.wantErr != services.ErrMissingFavoriteFields && tt.wantErr != services.ErrInvalidMediaType
			if validInput {
				mockReader.EXPECT().
					Exists(gomock.Any(), userID, tt.tmdbID, models.MediaTypeMovie).
					Return(tt.exists, tt.existsErr)
			}
			if validInput && !tt.exists && tt.existsErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fav *models.FavoriteDB) (*models.FavoriteDB, error) {
						if tt.saveErr != nil {
							return nil, tt.saveErr
						}
						saved := *fav
						saved.FavoriteID = uuid.New()
						return &saved, nil
					})
			}

			favorite, err := svc.AddFavorite(context.Background(), userID, tt.tmdbID, tt.title, &poster, tt.mediaType, nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, favorite)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.tmdbID, favorite.TmdbID)
				assert.Equal(t, models.MediaTypeMovie, favorite.MediaType)
			}
		})
	}
}

func TestFavoritesService_RemoveFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, nil)

	userID := uuid.New()

	tests := []struct {
		name      string
		mediaType string
		deleteErr error
		wantErr   error
	}{
		{
			name:      "successful remove",
			mediaType: models.MediaTypeTV,
		},
		{
			name:      "media type defaults to movie",
			mediaType: "",
		},
		{
			name:      "favorite not found",
			mediaType: models.MediaTypeMovie,
			deleteErr: sql.ErrNoRows,
			wantErr:   services.ErrFavoriteNotFound,
		},
		{
			name:      "delete error",
			mediaType: models.MediaTypeMovie,
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectedMediaType := tt.mediaType
			if expectedMediaType == "" {
				expectedMediaType = models.MediaTypeMovie
			}
			mockWriter.EXPECT().
				Delete(gomock.Any(), userID, int64(603), expectedMediaType).
				Return(tt.deleteErr)

			err := svc.RemoveFavorite(context.Background(), userID, 603, tt.mediaType)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFavoritesService_IsFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, nil)

	userID := uuid.New()

	mockReader.EXPECT().
		Exists(gomock.Any(), userID, int64(603), models.MediaTypeMovie).
		Return(true, nil)

	exists, err := svc.IsFavorite(context.Background(), userID, 603, "")
	assert.NoError(t, err)
	assert.True(t, exists)

	mockReader.EXPECT().
		Exists(gomock.Any(), userID, int64(1396), models.MediaTypeTV).
		Return(false, errors.New("db error"))

	exists, err = svc.IsFavorite(context.Background(), userID, 1396, models.MediaTypeTV)
	assert.Error(t, err)
	assert.False(t, exists)
}

func TestFavoritesService_AddFavorite_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()

	mockReader.EXPECT().
		Exists(gomock.Any(), userID, int64(603), models.MediaTypeMovie).
		Return(false, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fav *models.FavoriteDB) (*models.FavoriteDB, error) {
			saved := *fav
			saved.FavoriteID = uuid.New()
			return &saved, nil
		})
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.AddFavorite(context.Background(), userID, 603, "The Matrix", nil, models.MediaTypeMovie, nil, nil)
	assert.NoError(t, err)
}

func TestFavoritesService_RemoveFavorite_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewFavoritesService(mockReader, mockWriter, mockKafka)

	userID := uuid.New()

	mockWriter.EXPECT().
		Delete(gomock.Any(), userID, int64(603), models.MediaTypeMovie).
		Return(nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	err := svc.RemoveFavorite(context.Background(), userID, 603, models.MediaTypeMovie)
	assert.NoError(t, err)
}
