package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

//go:generate mockgen -source=username.go -destination=mock_username.go -package=services

const (
	minUsernameLength = 3
	maxUsernameLength = 20
)

var (
	usernameDisallowed = regexp.MustCompile(`[^a-z0-9]`)
	usernameFormat     = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,20}$`)
)

// UsernameReader looks up users by username.
type UsernameReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListWithoutUsername(ctx context.Context) ([]models.User, error)
}

// UsernameWriter persists usernames.
type UsernameWriter interface {
	SetUsername(ctx context.Context, id uuid.UUID, username string) error
}

// UsernameService assigns unique usernames.
type UsernameService struct {
	reader UsernameReader
	writer UsernameWriter
}

// NewUsernameService creates a new UsernameService instance.
func NewUsernameService(reader UsernameReader, writer UsernameWriter) *UsernameService {
	return &UsernameService{reader: reader, writer: writer}
}

func normalizeUsername(s string) string {
	return usernameDisallowed.ReplaceAllString(strings.ToLower(s), "")
}

// BaseUsername derives the collision-free candidate for a user: the display name with
// everything outside [a-z0-9] removed, or the local part of the email when that leaves
// nothing. Short results are padded with '0' to 3 characters, long ones cut to 20.
func BaseUsername(name *string, email string) string {
	var base string
	if name != nil {
		base = normalizeUsername(*name)
	}
	if base == "" {
		local, _, _ := strings.Cut(email, "@")
		base = normalizeUsername(local)
	}

	if len(base) < minUsernameLength {
		base += strings.Repeat("0", minUsernameLength-len(base))
	}
	if len(base) > maxUsernameLength {
		base = base[:maxUsernameLength]
	}
	return base
}

// withSuffix appends n to base, shortening base so the result stays within the length limit.
func withSuffix(base string, n int) string {
	suffix := strconv.Itoa(n)
	if len(base)+len(suffix) > maxUsernameLength {
		base = base[:maxUsernameLength-len(suffix)]
	}
	return base + suffix
}

// IsValidUsername reports whether a user-chosen username has an acceptable format.
func IsValidUsername(username string) bool {
	return usernameFormat.MatchString(username)
}

// Assign returns the first free username among base, base1, base2, ...
// Candidates are checked against the store one by one; the caller persists the result.
func (s *UsernameService) Assign(ctx context.Context, name *string, email string) (string, error) {
	base := BaseUsername(name, email)

	candidate := base
	for n := 1; ; n++ {
		existing, err := s.reader.GetByUsername(ctx, candidate)
		if err != nil {
			logger.Log.Errorw("failed to look up username", "username", candidate, "error", err)
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = withSuffix(base, n)
	}
}

// Backfill assigns a username to every user that has none, one user at a time, and
// returns how many users were updated.
func (s *UsernameService) Backfill(ctx context.Context) (int, error) {
	users, err := s.reader.ListWithoutUsername(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users without username", "error", err)
		return 0, err
	}

	updated := 0
	for _, user := range users {
		username, err := s.Assign(ctx, user.Name, user.Email)
		if err != nil {
			return updated, err
		}
		if err := s.writer.SetUsername(ctx, user.ID, username); err != nil {
			logger.Log.Errorw("failed to save username", "user_id", user.ID, "username", username, "error", err)
			return updated, err
		}
		updated++
	}

	logger.Log.Infow("usernames backfilled", "count", updated)
	return updated, nil
}
