package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Unique constraints on the users table.
const (
	usersEmailKey    = "users_email_key"
	usersUsernameKey = "users_username_key"
)

// registerAttempts bounds retries when a generated username is taken between lookup and insert.
const registerAttempts = 3

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// UsernameAssigner derives a free username for a new account.
type UsernameAssigner interface {
	Assign(ctx context.Context, name *string, email string) (string, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	usernames UsernameAssigner
	jwt       JWTGenerator
	cost      int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, usernames UsernameAssigner, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		usernames: usernames,
		jwt:       jwt,
		cost:      PasswordCost,
	}
}

// Register creates a regular (non-admin) account with a generated username.
func (svc *AuthService) Register(ctx context.Context, name *string, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	hash := string(hashed)

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		name = &trimmed
		if trimmed == "" {
			name = nil
		}
	}

	for attempt := 1; ; attempt++ {
		username, err := svc.usernames.Assign(ctx, name, email)
		if err != nil {
			logger.Log.Errorw("failed to assign username", "email", email, "err", err)
			return nil, err
		}

		user, err := svc.writer.Create(ctx, &models.User{
			Email:        email,
			Username:     &username,
			Name:         name,
			PasswordHash: &hash,
			IsAdmin:      false,
		})

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch {
			case pgErr.ConstraintName == usersEmailKey:
				logger.Log.Warnw("user already exists", "email", email)
				return nil, ErrUserAlreadyExists
			case pgErr.ConstraintName == usersUsernameKey && attempt < registerAttempts:
				logger.Log.Infow("username taken concurrently, retrying", "username", username, "attempt", attempt)
				continue
			}
		}
		if err != nil {
			logger.Log.Errorw("failed to save user", "err", err)
			return nil, err
		}

		logger.Log.Infow("user registered", "user_id", user.ID, "username", username)
		return user, nil
	}
}

// Login checks the credentials and returns a signed token carrying the user id and admin flag.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || user.PasswordHash == nil {
		logger.Log.Warnw("login for unknown account", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
