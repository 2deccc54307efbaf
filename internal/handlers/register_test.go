package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"name":"John Doe","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), strPtr("John Doe"), "john@example.com", "secret").
					Return(&models.User{
						ID:        userID,
						Email:     "john@example.com",
						Name:      strPtr("John Doe"),
						Username:  strPtr("johndoe"),
						CreatedAt: time.Now(),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: `{"email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), nil, "alice@example.com", "pass").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User with this email already exists",
		},
		{
			name: "internal server error",
			body: `{"email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), nil, "bob@example.com", "pass").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to register user",
		},
		{
			name:          "missing password",
			body:          `{"email":"bob@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "password is required",
		},
		{
			name:          "invalid email",
			body:          `{"email":"not-an-email","password":"x"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "email must be a valid email address",
		},
		{
			name:          "invalid json",
			body:          `{invalid json}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			body := decodeBody(t, rr)
			if tt.expectedError != "" {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}

			assert.Equal(t, true, body["success"])
			user := body["user"].(map[string]any)
			assert.Equal(t, userID.String(), user["id"])
			assert.Equal(t, "johndoe", user["username"])
			assert.Equal(t, false, user["isAdmin"])
			assert.NotContains(t, user, "passwordHash")
		})
	}
}
