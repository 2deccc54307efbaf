package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// CurrentUserGetter returns the caller's own account.
type CurrentUserGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, int, error)
}

// ProfileUpdater stores profile changes.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

// PublicProfileGetter returns profiles visible to the viewer.
type PublicProfileGetter interface {
	GetPublic(ctx context.Context, viewer *models.Actor, idOrUsername string) (*models.User, error)
}

// CurrentUser is the caller's account together with their favorite count
// swagger:model CurrentUser
type CurrentUser struct {
	models.User

	// Number of movies marked as favorite
	// default: 2
	FavoriteCount int `json:"favoriteCount"`
}

// UpdateProfileRequest represents the JSON body of a profile update. Omitted fields are unchanged.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// default: John Doe
	Name *string `json:"name"`

	// default: john_doe
	Username *string `json:"username"`

	// default: I watch too many movies.
	Bio *string `json:"bio" validate:"omitempty,max=500"`

	// default: https://example.com/me.png
	ProfileImage *string `json:"profileImage"`

	// default: #3b82f6
	ThemeColor *string `json:"themeColor"`

	// default: true
	IsProfilePublic *bool `json:"isProfilePublic"`

	// Up to five genres
	FavoriteGenres []string `json:"favoriteGenres"`
}

func profileErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrProfilePrivate):
		return http.StatusForbidden, "This profile is private"
	case errors.Is(err, services.ErrUsernameTaken):
		return http.StatusConflict, "Username is already taken"
	case errors.Is(err, services.ErrTooManyGenres):
		return http.StatusBadRequest, "You can select up to 5 favorite genres"
	case errors.Is(err, services.ErrInvalidImageURL):
		return http.StatusBadRequest, "Invalid profile image URL"
	case errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidThemeColor):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, ""
}

// NewMeHandler returns an HTTP handler for the caller's own account.
// @Summary Current user
// @Description Returns the full record of the authenticated user, including email and favorite count
// @Tags users
// @Produce json
// @Success 200 {object} handlers.Response{data=handlers.CurrentUser}
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}

		user, count, err := svc.Me(r.Context(), actor.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to fetch user", "user_id", actor.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch user data")
			return
		}

		writeData(w, http.StatusOK, CurrentUser{User: *user, FavoriteCount: count})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update profile
// @Description Updates the caller's profile. Empty strings clear optional fields.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} handlers.Response{data=models.User}
// @Failure 400 {object} handlers.ErrorResponse "Invalid profile data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Username taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateRequest(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.UpdateProfile(r.Context(), actor.UserID, models.ProfileUpdate{
			Name:            req.Name,
			Username:        req.Username,
			Bio:             req.Bio,
			ProfileImage:    req.ProfileImage,
			ThemeColor:      req.ThemeColor,
			IsProfilePublic: req.IsProfilePublic,
			FavoriteGenres:  req.FavoriteGenres,
		})
		if err != nil {
			status, msg := profileErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to update profile", "user_id", actor.UserID, "err", err)
				msg = "Failed to update profile"
			}
			writeError(w, status, msg)
			return
		}

		writeData(w, http.StatusOK, user)
	}
}

// NewGetUserHandler returns an HTTP handler for public profiles.
// @Summary Get user profile
// @Description Looks a user up by username or id. Private profiles are visible to their owner and admins only.
// @Tags users
// @Produce json
// @Param userId path string true "Username or user id"
// @Success 200 {object} handlers.Response{data=models.User}
// @Failure 403 {object} handlers.ErrorResponse "Profile is private"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{userId} [get]
func NewGetUserHandler(svc PublicProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "userId")

		user, err := svc.GetPublic(r.Context(), actorFromRequest(r), key)
		if err != nil {
			status, msg := profileErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("failed to fetch user", "user", key, "err", err)
				msg = "Failed to fetch user"
			}
			writeError(w, status, msg)
			return
		}

		writeData(w, http.StatusOK, user)
	}
}
