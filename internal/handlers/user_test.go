package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func(m *MockCurrentUserGetter)
		expectedCode int
	}{
		{
			name:   "success",
			authed: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().Me(gomock.Any(), userID).
					Return(&models.User{ID: userID, Email: "me@example.com", Username: strPtr("me")}, 2, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "anonymous",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "not found",
			authed: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().Me(gomock.Any(), userID).Return(nil, 0, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "internal error",
			authed: true,
			mockSetup: func(m *MockCurrentUserGetter) {
				m.EXPECT().Me(gomock.Any(), userID).Return(nil, 0, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCurrentUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authed {
				req = authenticated(req, userID, false)
			}
			rr := httptest.NewRecorder()
			NewMeHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				data := decodeBody(t, rr)["data"].(map[string]any)
				assert.Equal(t, "me@example.com", data["email"])
				assert.EqualValues(t, 2, data["favoriteCount"])
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockProfileUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"bio":"Film nerd","isProfilePublic":false,"favoriteGenres":["Drama"]}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, models.ProfileUpdate{
						Bio:             strPtr("Film nerd"),
						IsProfilePublic: boolPtr(false),
						FavoriteGenres:  []string{"Drama"},
					}).
					Return(&models.User{ID: userID, Bio: strPtr("Film nerd")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "too many genres",
			body: `{"favoriteGenres":["a","b","c","d","e","f"]}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, services.ErrTooManyGenres)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "You can select up to 5 favorite genres",
		},
		{
			name: "username taken",
			body: `{"username":"taken"}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, services.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username is already taken",
		},
		{
			name: "internal error",
			body: `{"name":"x"}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to update profile",
		},
		{
			name:          "invalid json",
			body:          `[`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := authenticated(httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewBufferString(tt.body)), userID, false)
			rr := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, rr)["error"])
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	tests := []struct {
		name         string
		viewer       *uuid.UUID
		mockSetup    func(m *MockPublicProfileGetter)
		expectedCode int
	}{
		{
			name: "public profile",
			mockSetup: func(m *MockPublicProfileGetter) {
				m.EXPECT().GetPublic(gomock.Any(), nil, "bobsmith").
					Return(&models.User{ID: uuid.New(), Username: strPtr("bobsmith"), IsProfilePublic: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "viewer passed through",
			viewer: &viewerID,
			mockSetup: func(m *MockPublicProfileGetter) {
				m.EXPECT().GetPublic(gomock.Any(), &models.Actor{UserID: viewerID}, "bobsmith").
					Return(&models.User{ID: viewerID, Username: strPtr("bobsmith")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "private profile",
			mockSetup: func(m *MockPublicProfileGetter) {
				m.EXPECT().GetPublic(gomock.Any(), nil, "bobsmith").Return(nil, services.ErrProfilePrivate)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "not found",
			mockSetup: func(m *MockPublicProfileGetter) {
				m.EXPECT().GetPublic(gomock.Any(), nil, "bobsmith").Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPublicProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/users/bobsmith", nil)
			if tt.viewer != nil {
				req = authenticated(req, *tt.viewer, false)
			}
			req = withURLParams(req, "userId", "bobsmith")
			rr := httptest.NewRecorder()
			NewGetUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusOK {
				data := decodeBody(t, rr)["data"].(map[string]any)
				assert.NotContains(t, data, "email")
			}
		})
	}
}
