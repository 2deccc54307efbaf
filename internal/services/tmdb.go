package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sbilibin2017/movie-ratings/internal/facades"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

//go:generate mockgen -source=tmdb.go -destination=mock_tmdb.go -package=services

var (
	ErrSearchQueryRequired   = errors.New("search query is required")
	ErrExternalMovieNotFound = errors.New("movie not found on TMDB")
	ErrTMDBNotConfigured     = errors.New("TMDB API key not configured")
)

const (
	// MaxSearchResults is how many TMDB search hits are returned to clients.
	MaxSearchResults = 10
	// PosterBaseURL prefixes TMDB poster paths.
	PosterBaseURL = "https://image.tmdb.org/t/p/w500"
)

// TMDBClient defines the TMDB API calls used by the service.
type TMDBClient interface {
	SearchMovies(ctx context.Context, query string) ([]models.TMDBSearchResult, error)
	GetMovie(ctx context.Context, id int) (*models.TMDBMovie, error)
	GetCredits(ctx context.Context, id int) (*models.TMDBCredits, error)
}

// TMDBCache stores TMDB responses.
type TMDBCache interface {
	GetSearch(ctx context.Context, query string) ([]models.TMDBSearchResult, error)
	SetSearch(ctx context.Context, query string, results []models.TMDBSearchResult) error
	GetMovie(ctx context.Context, id int) (*models.TMDBMovieDetails, error)
	SetMovie(ctx context.Context, details *models.TMDBMovieDetails) error
}

// TMDBService looks up movie metadata for the rating form.
type TMDBService struct {
	client TMDBClient
	cache  TMDBCache
}

// NewTMDBService creates a new TMDBService. cache may be nil.
func NewTMDBService(client TMDBClient, cache TMDBCache) *TMDBService {
	return &TMDBService{client: client, cache: cache}
}

func mapTMDBError(err error) error {
	switch {
	case errors.Is(err, facades.ErrTMDBNotFound):
		return ErrExternalMovieNotFound
	case errors.Is(err, facades.ErrTMDBNotConfigured):
		return ErrTMDBNotConfigured
	}
	return err
}

// Search returns the first results of a TMDB title search.
func (s *TMDBService) Search(ctx context.Context, query string) ([]models.TMDBSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, query); err == nil {
			return cached, nil
		}
	}

	results, err := s.client.SearchMovies(ctx, query)
	if err != nil {
		logger.Log.Errorw("tmdb search failed", "query", query, "error", err)
		return nil, mapTMDBError(err)
	}
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	if results == nil {
		results = []models.TMDBSearchResult{}
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, query, results); err != nil {
			logger.Log.Warnw("failed to cache tmdb search", "query", query, "error", err)
		}
	}
	return results, nil
}

// Movie returns the details of a TMDB movie together with its director(s).
func (s *TMDBService) Movie(ctx context.Context, id int) (*models.TMDBMovieDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMovie(ctx, id); err == nil {
			return cached, nil
		}
	}

	movie, err := s.client.GetMovie(ctx, id)
	if err != nil {
		logger.Log.Errorw("tmdb movie lookup failed", "tmdb_id", id, "error", err)
		return nil, mapTMDBError(err)
	}

	credits, err := s.client.GetCredits(ctx, id)
	if err != nil {
		logger.Log.Errorw("tmdb credits lookup failed", "tmdb_id", id, "error", err)
		return nil, mapTMDBError(err)
	}

	details := buildMovieDetails(movie, credits)

	if s.cache != nil {
		if err := s.cache.SetMovie(ctx, details); err != nil {
			logger.Log.Warnw("failed to cache tmdb movie", "tmdb_id", id, "error", err)
		}
	}
	return details, nil
}

func buildMovieDetails(movie *models.TMDBMovie, credits *models.TMDBCredits) *models.TMDBMovieDetails {
	details := &models.TMDBMovieDetails{
		ID:       movie.ID,
		Title:    movie.Title,
		Overview: movie.Overview,
		Runtime:  movie.Runtime,
	}

	var directors []string
	if credits != nil {
		for _, member := range credits.Crew {
			if member.Job == "Director" {
				directors = append(directors, member.Name)
			}
		}
	}
	details.Director = strings.Join(directors, ", ")

	if movie.PosterPath != nil && *movie.PosterPath != "" {
		poster := PosterBaseURL + *movie.PosterPath
		details.PosterURL = &poster
	}

	if len(movie.ReleaseDate) >= 4 {
		if year, err := strconv.Atoi(movie.ReleaseDate[:4]); err == nil {
			details.ReleaseYear = &year
		}
	}
	return details
}
