package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// TMDBCacheRepository caches TMDB responses in Redis as JSON.
type TMDBCacheRepository struct {
	client     *redis.Client
	searchExp  time.Duration // expiration of search results
	detailsExp time.Duration // expiration of movie details
}

// NewTMDBCacheRepository creates a new repository instance.
func NewTMDBCacheRepository(client *redis.Client, searchExp, detailsExp time.Duration) *TMDBCacheRepository {
	return &TMDBCacheRepository{
		client:     client,
		searchExp:  searchExp,
		detailsExp: detailsExp,
	}
}

func searchKey(query string) string {
	return "tmdb:search:" + strings.ToLower(strings.TrimSpace(query))
}

func movieKey(id int) string {
	return fmt.Sprintf("tmdb:movie:%d", id)
}

func (r *TMDBCacheRepository) get(ctx context.Context, key string, dst any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get", "key", key, "hit", err == nil, "error", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(val, dst)
}

func (r *TMDBCacheRepository) set(ctx context.Context, key string, value any, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, exp).Err()
	logger.Log.Infow("cache set", "key", key, "ttl", exp, "error", err)
	return err
}

// GetSearch returns cached search results for the query.
func (r *TMDBCacheRepository) GetSearch(ctx context.Context, query string) ([]models.TMDBSearchResult, error) {
	var results []models.TMDBSearchResult
	if err := r.get(ctx, searchKey(query), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// SetSearch caches search results for the query.
func (r *TMDBCacheRepository) SetSearch(ctx context.Context, query string, results []models.TMDBSearchResult) error {
	return r.set(ctx, searchKey(query), results, r.searchExp)
}

// GetMovie returns cached movie details.
func (r *TMDBCacheRepository) GetMovie(ctx context.Context, id int) (*models.TMDBMovieDetails, error) {
	var details models.TMDBMovieDetails
	if err := r.get(ctx, movieKey(id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// SetMovie caches movie details.
func (r *TMDBCacheRepository) SetMovie(ctx context.Context, details *models.TMDBMovieDetails) error {
	return r.set(ctx, movieKey(details.ID), details, r.detailsExp)
}
