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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    "john@example.com",
		Username: "john",
	}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"username":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(user, "token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing credentials",
			body: `{"username":"","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "", "secret123").
					Return(nil, "", services.ErrMissingCredentials)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrMissingCredentials.Error(),
		},
		{
			name: "invalid credentials",
			body: `{"username":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: services.ErrInvalidCredentials.Error(),
		},
		{
			name: "internal server error",
			body: `{"username":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
		{
			name:            "invalid json",
			body:            `{invalid`,
			mockSetup:       func(m *MockLoginer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp AuthResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "token123", resp.Token)
				assert.Equal(t, user.Email, resp.User.Email)
			} else {
				var resp LoginErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
