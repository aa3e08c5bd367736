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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     "john@example.com",
		Username:  "john",
		FirstName: "John",
		LastName:  "Doe",
	}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret123","firstName":"John","lastName":"Doe","username":"john"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "John", "Doe", "john").
					Return(user, "token123", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing required fields",
			body: `{"email":"john@example.com","password":"","firstName":"John","lastName":"Doe"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "", "John", "Doe", "").
					Return(nil, "", services.ErrMissingRequiredFields)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrMissingRequiredFields.Error(),
		},
		{
			name: "invalid email",
			body: `{"email":"not-an-email","password":"secret123","firstName":"John","lastName":"Doe"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "not-an-email", "secret123", "John", "Doe", "").
					Return(nil, "", services.ErrInvalidEmail)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrInvalidEmail.Error(),
		},
		{
			name: "email already exists",
			body: `{"email":"john@example.com","password":"secret123","firstName":"John","lastName":"Doe"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "John", "Doe", "").
					Return(nil, "", services.ErrEmailAlreadyExists)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: services.ErrEmailAlreadyExists.Error(),
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"secret123","firstName":"John","lastName":"Doe"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "John", "Doe", "").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
		{
			name:            "invalid json",
			body:            `{invalid`,
			mockSetup:       func(m *MockRegisterer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp AuthResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "token123", resp.Token)
				assert.Equal(t, user.Email, resp.User.Email)
			} else {
				var resp RegisterErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
