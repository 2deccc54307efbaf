package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTMDBCacheRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	ctx := context.Background()

	repo := NewTMDBCacheRepository(rdb, 2*time.Second, time.Minute)

	t.Run("search round trip ignores case and padding", func(t *testing.T) {
		results := []models.TMDBSearchResult{{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-15"}}
		require.NoError(t, repo.SetSearch(ctx, "Inception", results))

		got, err := repo.GetSearch(ctx, "  inception ")
		require.NoError(t, err)
		assert.Equal(t, results, got)
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		_, err := repo.GetSearch(ctx, "never searched")
		assert.ErrorIs(t, err, ErrCacheMiss)

		_, err = repo.GetMovie(ctx, 1)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("movie details round trip", func(t *testing.T) {
		year := 2010
		details := &models.TMDBMovieDetails{ID: 27205, Title: "Inception", Director: "Christopher Nolan", ReleaseYear: &year}
		require.NoError(t, repo.SetMovie(ctx, details))

		got, err := repo.GetMovie(ctx, 27205)
		require.NoError(t, err)
		assert.Equal(t, details, got)
	})

	t.Run("search results expire", func(t *testing.T) {
		require.NoError(t, repo.SetSearch(ctx, "Heat", []models.TMDBSearchResult{{ID: 949}}))
		time.Sleep(3 * time.Second)

		_, err := repo.GetSearch(ctx, "Heat")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
