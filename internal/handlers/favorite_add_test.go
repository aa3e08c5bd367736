package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/moviedeck/moviedeck/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestFavoriteAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	poster := "/poster.jpg"

	tests := []struct {
		name            string
		body            string
		mockSetup       func(svc *MockFavoriteAdder, tok *MockTokener)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":"/poster.jpg","mediaType":"movie"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(603), "The Matrix", &poster, models.MediaTypeMovie, nil, nil).
					Return(&models.Favorite{ID: uuid.NewString(), TmdbID: 603, Title: "The Matrix", PosterPath: &poster, MediaType: models.MediaTypeMovie}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "null poster path accepted",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":null}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(603), "The Matrix", nil, models.MediaTypeMovie, nil, nil).
					Return(&models.Favorite{ID: uuid.NewString(), TmdbID: 603, Title: "The Matrix", MediaType: models.MediaTypeMovie}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing poster path key",
			body: `{"tmdbId":603,"title":"The Matrix"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrMissingFavoriteFields.Error(),
		},
		{
			name: "missing tmdb id",
			body: `{"title":"The Matrix","posterPath":"/poster.jpg"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrMissingFavoriteFields.Error(),
		},
		{
			name: "movie already in favorites",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":"/poster.jpg","mediaType":"movie"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(603), "The Matrix", &poster, models.MediaTypeMovie, nil, nil).
					Return(nil, services.ErrFavoriteExists)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Movie already in favorites",
		},
		{
			name: "tv show already in favorites",
			body: `{"tmdbId":1396,"title":"Breaking Bad","posterPath":"/poster.jpg","mediaType":"tv"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(1396), "Breaking Bad", &poster, models.MediaTypeTV, nil, nil).
					Return(nil, services.ErrFavoriteExists)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "TV show already in favorites",
		},
		{
			name: "invalid media type",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":"/poster.jpg","mediaType":"book"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(603), "The Matrix", &poster, "book", nil, nil).
					Return(nil, services.ErrInvalidMediaType)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrInvalidMediaType.Error(),
		},
		{
			name: "unauthorized",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":"/poster.jpg"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "unauthorized",
		},
		{
			name: "internal server error",
			body: `{"tmdbId":603,"title":"The Matrix","posterPath":"/poster.jpg"}`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
				svc.EXPECT().
					AddFavorite(gomock.Any(), userID, int64(603), "The Matrix", &poster, models.MediaTypeMovie, nil, nil).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
		{
			name: "invalid json",
			body: `{invalid`,
			mockSetup: func(svc *MockFavoriteAdder, tok *MockTokener) {
				expectAuthorized(tok, userID)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFavoriteAdder(ctrl)
			mockTok := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTok)

			handler := NewFavoriteAddHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", "Bearer token123")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.Favorite
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotEmpty(t, resp.ID)
			} else {
				var resp FavoritesErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
