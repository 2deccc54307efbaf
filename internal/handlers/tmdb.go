package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
)

//go:generate mockgen -source=tmdb.go -destination=mock_tmdb.go -package=handlers

// TMDBSearcher searches TMDB by title.
type TMDBSearcher interface {
	Search(ctx context.Context, query string) ([]models.TMDBSearchResult, error)
}

// TMDBMovieGetter returns TMDB movie details.
type TMDBMovieGetter interface {
	Movie(ctx context.Context, id int) (*models.TMDBMovieDetails, error)
}

// TMDBSearchResponse lists TMDB search hits
// swagger:model TMDBSearchResponse
type TMDBSearchResponse struct {
	// default: true
	Success bool                      `json:"success"`
	Results []models.TMDBSearchResult `json:"results"`
}

// TMDBMovieResponse carries the details of a TMDB movie
// swagger:model TMDBMovieResponse
type TMDBMovieResponse struct {
	// default: true
	Success bool                     `json:"success"`
	Movie   *models.TMDBMovieDetails `json:"movie"`
}

func writeTMDBError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrSearchQueryRequired):
		writeError(w, http.StatusBadRequest, "Query parameter is required")
	case errors.Is(err, services.ErrExternalMovieNotFound):
		writeError(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, services.ErrTMDBNotConfigured):
		writeError(w, http.StatusInternalServerError, "TMDB API key not configured")
	default:
		logger.Log.Errorw("tmdb request failed", "err", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// NewTMDBSearchHandler returns an HTTP handler searching TMDB.
// @Summary Search TMDB
// @Description Returns up to 10 TMDB movies matching the query
// @Tags tmdb
// @Produce json
// @Param query query string true "Title to search for"
// @Success 200 {object} handlers.TMDBSearchResponse
// @Failure 400 {object} handlers.ErrorResponse "Query parameter is required"
// @Failure 500 {object} handlers.ErrorResponse "Search failed"
// @Router /tmdb/search [get]
func NewTMDBSearchHandler(svc TMDBSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.Search(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			writeTMDBError(w, err, "Failed to search for movies")
			return
		}

		writeJSON(w, http.StatusOK, TMDBSearchResponse{Success: true, Results: results})
	}
}

// NewTMDBMovieHandler returns an HTTP handler for TMDB movie details.
// @Summary TMDB movie details
// @Description Returns title, director(s), release year, poster URL, overview and runtime
// @Tags tmdb
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} handlers.TMDBMovieResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse "Lookup failed"
// @Router /tmdb/movie/{id} [get]
func NewTMDBMovieHandler(svc TMDBMovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || id <= 0 {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}

		movie, err := svc.Movie(r.Context(), id)
		if err != nil {
			writeTMDBError(w, err, "Failed to get movie details")
			return
		}

		writeJSON(w, http.StatusOK, TMDBMovieResponse{Success: true, Movie: movie})
	}
}
