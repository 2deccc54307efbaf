package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type seedMocks struct {
	admins    *services.MockAdminWriter
	usernames *services.MockUsernameAssigner
	usernameW *services.MockUsernameWriter
	counter   *services.MockCatalogCounter
	movies    *services.MockCatalogWriter
	svc       *services.SeedService
}

func newSeedMocks(t *testing.T) *seedMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &seedMocks{
		admins:    services.NewMockAdminWriter(ctrl),
		usernames: services.NewMockUsernameAssigner(ctrl),
		usernameW: services.NewMockUsernameWriter(ctrl),
		counter:   services.NewMockCatalogCounter(ctrl),
		movies:    services.NewMockCatalogWriter(ctrl),
	}
	m.svc = services.NewSeedService(m.admins, m.usernames, m.usernameW, m.counter, m.movies)
	return m
}

func TestSeedService_EnsureAdmin(t *testing.T) {
	t.Run("new admin gets a username", func(t *testing.T) {
		m := newSeedMocks(t)
		admin := &models.User{ID: uuid.New(), Email: "admin@x.com", Name: strPtr(services.AdminName), IsAdmin: true}

		m.admins.EXPECT().
			UpsertAdmin(gomock.Any(), "admin@x.com", services.AdminName, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, hash string) (*models.User, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
				return admin, nil
			})
		m.usernames.EXPECT().Assign(gomock.Any(), admin.Name, "admin@x.com").Return("adminuser", nil)
		m.usernameW.EXPECT().SetUsername(gomock.Any(), admin.ID, "adminuser").Return(nil)

		got, err := m.svc.EnsureAdmin(context.Background(), "admin@x.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "adminuser", *got.Username)
	})

	t.Run("existing username kept", func(t *testing.T) {
		m := newSeedMocks(t)
		admin := &models.User{ID: uuid.New(), Email: "admin@x.com", Username: strPtr("boss"), IsAdmin: true}
		m.admins.EXPECT().UpsertAdmin(gomock.Any(), "admin@x.com", services.AdminName, gomock.Any()).Return(admin, nil)

		got, err := m.svc.EnsureAdmin(context.Background(), "admin@x.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "boss", *got.Username)
	})

	t.Run("missing credentials", func(t *testing.T) {
		m := newSeedMocks(t)
		_, err := m.svc.EnsureAdmin(context.Background(), "admin@x.com", "")
		assert.ErrorIs(t, err, services.ErrAdminCredentialsRequired)
	})
}

func TestSeedService_SeedMovies(t *testing.T) {
	owner := uuid.New()

	t.Run("empty catalog", func(t *testing.T) {
		m := newSeedMocks(t)
		m.counter.EXPECT().Count(gomock.Any()).Return(0, nil)
		m.movies.EXPECT().
			Create(gomock.Any(), owner, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in models.MovieInput) (*models.Movie, error) {
				assert.NotEmpty(t, in.Title)
				assert.GreaterOrEqual(t, in.Rating, models.MinRating)
				assert.LessOrEqual(t, in.Rating, models.MaxRating)
				return &models.Movie{ID: uuid.New(), Title: in.Title}, nil
			}).
			Times(5)

		added, err := m.svc.SeedMovies(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, 5, added)
	})

	t.Run("catalog not empty", func(t *testing.T) {
		m := newSeedMocks(t)
		m.counter.EXPECT().Count(gomock.Any()).Return(12, nil)

		added, err := m.svc.SeedMovies(context.Background(), owner)
		require.NoError(t, err)
		assert.Zero(t, added)
	})

	t.Run("insert failure", func(t *testing.T) {
		m := newSeedMocks(t)
		insertErr := errors.New("insert failed")
		m.counter.EXPECT().Count(gomock.Any()).Return(0, nil)
		gomock.InOrder(
			m.movies.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(&models.Movie{}, nil),
			m.movies.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(nil, insertErr),
		)

		added, err := m.svc.SeedMovies(context.Background(), owner)
		assert.ErrorIs(t, err, insertErr)
		assert.Equal(t, 1, added)
	})
}
