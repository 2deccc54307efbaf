package services

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfilePrivate    = errors.New("this profile is private")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrInvalidUsername   = errors.New("username must be 3-20 characters of letters, digits, '_', '.' or '-'")
	ErrTooManyGenres     = errors.New("you can list up to 5 favorite genres")
	ErrInvalidImageURL   = errors.New("profile image must be an http(s) URL")
	ErrInvalidThemeColor = errors.New("theme color must be a hex color like #1a2b3c")
)

var themeColorFormat = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// uniqueViolation is the Postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// ProfileReader defines user lookups needed for profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ProfileWriter persists profile changes.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

// FavoriteCounter counts a user's favorite movies.
type FavoriteCounter interface {
	CountFavorites(ctx context.Context, userID uuid.UUID) (int, error)
}

// UserService serves user profiles.
type UserService struct {
	reader    ProfileReader
	writer    ProfileWriter
	favorites FavoriteCounter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader ProfileReader, writer ProfileWriter, favorites FavoriteCounter) *UserService {
	return &UserService{reader: reader, writer: writer, favorites: favorites}
}

// Me returns the caller's own record and the number of favorites they hold.
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*models.User, int, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}

	count, err := s.favorites.CountFavorites(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count favorites", "user_id", userID, "error", err)
		return nil, 0, err
	}
	return user, count, nil
}

// GetPublic looks a user up by username, falling back to the id, and returns the
// public view of the profile. viewer is nil for anonymous requests.
func (s *UserService) GetPublic(ctx context.Context, viewer *models.Actor, idOrUsername string) (*models.User, error) {
	user, err := s.reader.GetByUsername(ctx, idOrUsername)
	if err != nil {
		logger.Log.Errorw("failed to get user by username", "username", idOrUsername, "error", err)
		return nil, err
	}

	if user == nil {
		id, parseErr := uuid.Parse(idOrUsername)
		if parseErr != nil {
			return nil, ErrUserNotFound
		}
		user, err = s.reader.GetByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}

	if !user.IsProfilePublic && (viewer == nil || !viewer.CanManage(user.ID)) {
		return nil, ErrProfilePrivate
	}

	public := user.PublicView()
	return &public, nil
}

func validateProfile(upd *models.ProfileUpdate) error {
	if upd.Username != nil {
		trimmed := strings.TrimSpace(*upd.Username)
		if !IsValidUsername(trimmed) {
			return ErrInvalidUsername
		}
		upd.Username = &trimmed
	}
	if upd.ProfileImage != nil && *upd.ProfileImage != "" {
		u, err := url.Parse(*upd.ProfileImage)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidImageURL
		}
	}
	if upd.ThemeColor != nil && *upd.ThemeColor != "" && !themeColorFormat.MatchString(*upd.ThemeColor) {
		return ErrInvalidThemeColor
	}
	if upd.FavoriteGenres != nil {
		genres := make([]string, 0, len(upd.FavoriteGenres))
		for _, g := range upd.FavoriteGenres {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}
		if len(genres) > models.MaxFavoriteGenres {
			return ErrTooManyGenres
		}
		upd.FavoriteGenres = genres
	}
	return nil
}

// UpdateProfile validates and stores the caller's profile changes.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	if err := validateProfile(&upd); err != nil {
		return nil, err
	}

	if upd.Username != nil {
		owner, err := s.reader.GetByUsername(ctx, *upd.Username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "username", *upd.Username, "error", err)
			return nil, err
		}
		if owner != nil && owner.ID != userID {
			return nil, ErrUsernameTaken
		}
	}

	user, err := s.writer.UpdateProfile(ctx, userID, upd)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("profile updated", "user_id", userID)
	return user, nil
}
