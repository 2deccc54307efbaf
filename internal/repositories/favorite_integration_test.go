package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepositories_FavoriteLimitUnderConcurrency(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, nil)
	reader := NewMovieReadRepository(db, nil)
	writer := NewMovieWriteRepository(db, nil)

	owner, err := users.Create(ctx, &models.User{Email: "fan@example.com", Username: strPtr("fan")})
	require.NoError(t, err)

	const total = 10
	movies := make([]*models.Movie, 0, total)
	for i := 0; i < total; i++ {
		m, err := writer.Create(ctx, owner.ID, models.MovieInput{Title: "Movie", Rating: 3})
		require.NoError(t, err)
		movies = append(movies, m)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for _, m := range movies {
		wg.Add(1)
		go func(m *models.Movie) {
			defer wg.Done()
			_, err := writer.SetFavorite(ctx, m.ID, owner.ID, true, models.MaxFavorites)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, models.ErrFavoriteLimit):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(m)
	}
	wg.Wait()

	assert.Equal(t, models.MaxFavorites, succeeded)
	assert.Equal(t, total-models.MaxFavorites, rejected)

	count, err := reader.CountFavorites(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MaxFavorites, count)

	t.Run("re-favoriting an existing favorite is allowed at the limit", func(t *testing.T) {
		favs, err := reader.List(ctx, models.MovieFilter{UserID: &owner.ID, IncludePrivate: true})
		require.NoError(t, err)
		for _, m := range favs {
			if m.IsFavorite {
				_, err := writer.SetFavorite(ctx, m.ID, owner.ID, true, models.MaxFavorites)
				assert.NoError(t, err)
				break
			}
		}
	})

	t.Run("unfavorite frees a slot", func(t *testing.T) {
		favs, err := reader.List(ctx, models.MovieFilter{UserID: &owner.ID, IncludePrivate: true})
		require.NoError(t, err)

		var fav, plain *models.Movie
		for i := range favs {
			if favs[i].IsFavorite && fav == nil {
				fav = &favs[i]
			}
			if !favs[i].IsFavorite && plain == nil {
				plain = &favs[i]
			}
		}
		require.NotNil(t, fav)
		require.NotNil(t, plain)

		_, err = writer.SetFavorite(ctx, fav.ID, owner.ID, false, models.MaxFavorites)
		require.NoError(t, err)
		_, err = writer.SetFavorite(ctx, plain.ID, owner.ID, true, models.MaxFavorites)
		require.NoError(t, err)

		count, err := reader.CountFavorites(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, models.MaxFavorites, count)
	})
}
