package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=seed.go -destination=mock_seed.go -package=services

// ErrAdminCredentialsRequired is returned when the admin bootstrap is missing an email or password.
var ErrAdminCredentialsRequired = errors.New("admin email and password are required")

// AdminName is the display name given to the bootstrap admin account.
const AdminName = "Admin User"

// AdminWriter creates or promotes the admin account.
type AdminWriter interface {
	UpsertAdmin(ctx context.Context, email, name, passwordHash string) (*models.User, error)
}

// CatalogCounter counts stored movies.
type CatalogCounter interface {
	Count(ctx context.Context) (int, error)
}

// CatalogWriter inserts movies.
type CatalogWriter interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.MovieInput) (*models.Movie, error)
}

// SeedService bootstraps a fresh database.
type SeedService struct {
	admins    AdminWriter
	usernames UsernameAssigner
	usernameW UsernameWriter
	counter   CatalogCounter
	movies    CatalogWriter
	cost      int
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(
	admins AdminWriter,
	usernames UsernameAssigner,
	usernameW UsernameWriter,
	counter CatalogCounter,
	movies CatalogWriter,
) *SeedService {
	return &SeedService{
		admins:    admins,
		usernames: usernames,
		usernameW: usernameW,
		counter:   counter,
		movies:    movies,
		cost:      PasswordCost,
	}
}

// EnsureAdmin creates the admin account, or promotes the existing account with the same
// email, and gives it a username when it has none.
func (s *SeedService) EnsureAdmin(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrAdminCredentialsRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash admin password", "err", err)
		return nil, err
	}

	admin, err := s.admins.UpsertAdmin(ctx, email, AdminName, string(hashed))
	if err != nil {
		logger.Log.Errorw("failed to upsert admin", "email", email, "err", err)
		return nil, err
	}

	if admin.Username == nil {
		username, err := s.usernames.Assign(ctx, admin.Name, admin.Email)
		if err != nil {
			return nil, err
		}
		if err := s.usernameW.SetUsername(ctx, admin.ID, username); err != nil {
			logger.Log.Errorw("failed to set admin username", "user_id", admin.ID, "err", err)
			return nil, err
		}
		admin.Username = &username
	}

	logger.Log.Infow("admin account ready", "user_id", admin.ID, "username", *admin.Username)
	return admin, nil
}

// sampleMovies is the starter catalog shown on an empty site.
var sampleMovies = []models.MovieInput{
	{
		Title:    "Inception",
		Director: strPtr("Christopher Nolan"),
		Year:     intPtr(2010),
		Rating:   5,
		Review:   strPtr("A mind-bending thriller about dream invasion. The concept of planting ideas in someone's mind through their dreams is brilliantly executed."),
	},
	{
		Title:    "The Godfather",
		Director: strPtr("Francis Ford Coppola"),
		Year:     intPtr(1972),
		Rating:   5,
		Review:   strPtr("A cinematic masterpiece that revolutionized gangster films. The performances, particularly by Marlon Brando and Al Pacino, are legendary."),
	},
	{
		Title:    "Pulp Fiction",
		Director: strPtr("Quentin Tarantino"),
		Year:     intPtr(1994),
		Rating:   4,
		Review:   strPtr("A nonlinear narrative that redefined filmmaking in the 90s. The dialogue is sharp and witty, and the characters are unforgettable."),
	},
	{
		Title:    "The Dark Knight",
		Director: strPtr("Christopher Nolan"),
		Year:     intPtr(2008),
		Rating:   5,
		Review:   strPtr("An exceptional superhero film that transcends the genre. Heath Ledger's performance as the Joker is iconic."),
	},
	{
		Title:    "Fight Club",
		Director: strPtr("David Fincher"),
		Year:     intPtr(1999),
		Rating:   4,
		Review:   strPtr("A psychological thriller with a twist that changes everything. The commentary on consumerism and masculinity remains relevant."),
	},
}

// SeedMovies inserts the sample catalog for ownerID when no movies exist yet and
// returns the number of movies added.
func (s *SeedService) SeedMovies(ctx context.Context, ownerID uuid.UUID) (int, error) {
	count, err := s.counter.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count movies", "err", err)
		return 0, err
	}
	if count > 0 {
		logger.Log.Infow("catalog not empty, skipping seed", "count", count)
		return 0, nil
	}

	for i, in := range sampleMovies {
		if _, err := s.movies.Create(ctx, ownerID, in); err != nil {
			logger.Log.Errorw("failed to seed movie", "title", in.Title, "err", err)
			return i, err
		}
	}

	logger.Log.Infow("sample movies added", "count", len(sampleMovies))
	return len(sampleMovies), nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
