package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const DefaultTMDBBaseURL = "https://api.themoviedb.org/3"

var (
	// ErrTMDBNotConfigured is returned when no API key was provided.
	ErrTMDBNotConfigured = errors.New("tmdb api key not configured")
	// ErrTMDBNotFound is returned when TMDB answers 404.
	ErrTMDBNotFound = errors.New("tmdb resource not found")
)

// TMDBFacade is a rate limited, circuit broken HTTP client for the TMDB v3 API.
type TMDBFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// TMDBOpt configures a TMDBFacade.
type TMDBOpt func(*tmdbConfig)

type tmdbConfig struct {
	baseURL          string
	timeout          time.Duration
	requestsPerSec   float64
	failureThreshold uint32
	openTimeout      time.Duration
}

// WithTMDBBaseURL overrides the API root, mainly for tests.
func WithTMDBBaseURL(u string) TMDBOpt {
	return func(c *tmdbConfig) { c.baseURL = u }
}

// WithTMDBTimeout sets the per-request HTTP timeout.
func WithTMDBTimeout(d time.Duration) TMDBOpt {
	return func(c *tmdbConfig) { c.timeout = d }
}

// WithTMDBRateLimit caps outbound requests per second.
func WithTMDBRateLimit(rps float64) TMDBOpt {
	return func(c *tmdbConfig) {
		if rps > 0 {
			c.requestsPerSec = rps
		}
	}
}

// WithTMDBBreaker sets how many consecutive failures open the breaker and how long it stays open.
func WithTMDBBreaker(failures uint32, openFor time.Duration) TMDBOpt {
	return func(c *tmdbConfig) {
		c.failureThreshold = failures
		c.openTimeout = openFor
	}
}

// NewTMDBFacade creates a facade. An empty apiKey yields a facade whose calls fail with
// ErrTMDBNotConfigured.
func NewTMDBFacade(apiKey string, opts ...TMDBOpt) *TMDBFacade {
	cfg := tmdbConfig{
		baseURL:          DefaultTMDBBaseURL,
		timeout:          10 * time.Second,
		requestsPerSec:   20,
		failureThreshold: 5,
		openTimeout:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: 1,
		Timeout:     cfg.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.failureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrTMDBNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &TMDBFacade{
		baseURL: cfg.baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: cfg.timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.requestsPerSec), int(cfg.requestsPerSec)+1),
		breaker: breaker,
	}
}

// SearchMovies runs a title search, adult titles excluded.
func (f *TMDBFacade) SearchMovies(ctx context.Context, query string) ([]models.TMDBSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var resp models.TMDBSearchResponse
	if err := f.get(ctx, "/search/movie", params, &resp); err != nil {
		logger.Log.Errorw("failed to search movies via TMDB", "query", query, "error", err)
		return nil, err
	}
	return resp.Results, nil
}

// GetMovie fetches the details of a movie.
func (f *TMDBFacade) GetMovie(ctx context.Context, id int) (*models.TMDBMovie, error) {
	var movie models.TMDBMovie
	if err := f.get(ctx, "/movie/"+strconv.Itoa(id), nil, &movie); err != nil {
		logger.Log.Errorw("failed to fetch movie via TMDB", "id", id, "error", err)
		return nil, err
	}
	return &movie, nil
}

// GetCredits fetches cast and crew of a movie.
func (f *TMDBFacade) GetCredits(ctx context.Context, id int) (*models.TMDBCredits, error) {
	var credits models.TMDBCredits
	if err := f.get(ctx, "/movie/"+strconv.Itoa(id)+"/credits", nil, &credits); err != nil {
		logger.Log.Errorw("failed to fetch credits via TMDB", "id", id, "error", err)
		return nil, err
	}
	return &credits, nil
}

func (f *TMDBFacade) get(ctx context.Context, path string, params url.Values, dst any) error {
	if f.apiKey == "" {
		return ErrTMDBNotConfigured
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", f.apiKey)
	endpoint := f.baseURL + path + "?" + params.Encode()

	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := f.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrTMDBNotFound
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("tmdb api error: status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
