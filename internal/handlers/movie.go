package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
)

//go:generate mockgen -source=movie.go -destination=mock_movie.go -package=handlers

// MaxListLimit caps the number of movies returned by a single listing.
const MaxListLimit = 100

// MovieLister lists movies.
type MovieLister interface {
	List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
}

// MovieGetter returns a single movie.
type MovieGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Movie, error)
}

// MovieCreator stores new ratings.
type MovieCreator interface {
	Create(ctx context.Context, actor models.Actor, in models.MovieInput) (*models.Movie, error)
}

// MovieUpdater applies partial updates.
type MovieUpdater interface {
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, patch models.MoviePatch) (*models.Movie, error)
}

// MovieDeleter removes ratings.
type MovieDeleter interface {
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
}

// CreateMovieRequest represents the JSON body for a new rating
// swagger:model CreateMovieRequest
type CreateMovieRequest struct {
	// required: true
	// default: Inception
	Title string `json:"title" validate:"required,max=200"`

	// default: Christopher Nolan
	Director *string `json:"director" validate:"omitempty,max=200"`

	// default: 2010
	Year *int `json:"year" validate:"omitempty,gte=1870,lte=2100"`

	// Poster URL
	Poster *string `json:"poster" validate:"omitempty,url"`

	// Stars from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// default: A mind-bending thriller.
	Review *string `json:"review"`

	// default: true
	IsPublic *bool `json:"isPublic"`
}

// UpdateMovieRequest represents the JSON body of a partial update. Omitted fields are unchanged.
// swagger:model UpdateMovieRequest
type UpdateMovieRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Director   *string `json:"director" validate:"omitempty,max=200"`
	Year       *int    `json:"year" validate:"omitempty,lte=2100"`
	Poster     *string `json:"poster"`
	Rating     *int    `json:"rating"`
	Review     *string `json:"review"`
	IsPublic   *bool   `json:"isPublic"`
	IsFavorite *bool   `json:"isFavorite"`
}

// movieErrorStatus maps service errors to a status and message. ok is false for unexpected errors.
func movieErrorStatus(err error) (status int, msg string, ok bool) {
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		return http.StatusNotFound, "Movie not found", true
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "Not authorized to modify this movie", true
	case errors.Is(err, services.ErrFavoriteLimitExceeded):
		return http.StatusBadRequest, "You can only have up to 4 favorite movies. Remove a favorite first.", true
	case errors.Is(err, services.ErrInvalidRating):
		return http.StatusBadRequest, "Invalid rating", true
	case errors.Is(err, services.ErrTitleRequired):
		return http.StatusBadRequest, "Invalid movie data", true
	}
	return http.StatusInternalServerError, errInternal, false
}

func writeMovieError(w http.ResponseWriter, err error, action string) {
	status, msg, ok := movieErrorStatus(err)
	if !ok {
		logger.Log.Errorw("movie request failed", "action", action, "err", err)
		msg = "Failed to " + action
	}
	writeError(w, status, msg)
}

// movieIDParam parses the {id} URL parameter, answering 404 when it is not a valid id.
func movieIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Movie not found")
		return uuid.Nil, false
	}
	return id, true
}

// parseMovieFilter reads the listing query parameters. Private movies are included
// for admins and for owners listing their own movies.
func parseMovieFilter(r *http.Request) (models.MovieFilter, error) {
	q := r.URL.Query()
	filter := models.MovieFilter{Sort: q.Get("sort")}

	if v := q.Get("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("userId must be a valid id")
		}
		filter.UserID = &id
	}

	if v := q.Get("isAdmin"); v != "" {
		isAdmin, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("isAdmin must be true or false")
		}
		filter.OwnerIsAdmin = &isAdmin
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return filter, errors.New("limit must be a positive number")
		}
		filter.Limit = min(limit, MaxListLimit)
	}

	if actor := actorFromRequest(r); actor != nil {
		filter.IncludePrivate = actor.IsAdmin || (filter.UserID != nil && *filter.UserID == actor.UserID)
	}
	return filter, nil
}

// NewListMoviesHandler returns an HTTP handler listing movies.
// @Summary List movies
// @Description Lists public movies with their owners. Owners and admins also see private movies.
// @Tags movies
// @Produce json
// @Param userId query string false "Only movies rated by this user"
// @Param isAdmin query bool false "Only movies rated by admins (true) or by the community (false)"
// @Param sort query string false "newest (default), rating or title"
// @Param limit query int false "Maximum number of movies"
// @Success 200 {object} handlers.Response{data=[]models.Movie}
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies [get]
func NewListMoviesHandler(svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseMovieFilter(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		movies, err := svc.List(r.Context(), filter)
		if err != nil {
			writeMovieError(w, err, "fetch movies")
			return
		}

		writeData(w, http.StatusOK, movies)
	}
}

// NewGetMovieHandler returns an HTTP handler for a single movie.
// Private movies are reported as missing to everyone but their owner and admins.
// @Summary Get movie
// @Description Returns a movie rating with its owner summary
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} handlers.Response{data=models.Movie}
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies/{id} [get]
// @Security BearerAuth
func NewGetMovieHandler(svc MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := movieIDParam(w, r)
		if !ok {
			return
		}

		movie, err := svc.Get(r.Context(), id)
		if err != nil {
			writeMovieError(w, err, "fetch movie")
			return
		}
		if !movie.IsPublic {
			if actor := actorFromRequest(r); actor == nil || !actor.CanManage(movie.UserID) {
				writeMovieError(w, services.ErrMovieNotFound, "fetch movie")
				return
			}
		}

		writeData(w, http.StatusOK, movie)
	}
}

// NewCreateMovieHandler returns an HTTP handler creating a rating owned by the caller.
// @Summary Create movie rating
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body handlers.CreateMovieRequest true "Movie rating"
// @Success 201 {object} handlers.Response{data=models.Movie}
// @Failure 400 {object} handlers.ErrorResponse "Invalid movie data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies [post]
// @Security BearerAuth
func NewCreateMovieHandler(svc MovieCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}

		var req CreateMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie data")
			return
		}
		if err := validateRequest(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		movie, err := svc.Create(r.Context(), *actor, models.MovieInput{
			Title:    req.Title,
			Director: req.Director,
			Year:     req.Year,
			Poster:   req.Poster,
			Rating:   req.Rating,
			Review:   req.Review,
			IsPublic: req.IsPublic,
		})
		if err != nil {
			writeMovieError(w, err, "create movie")
			return
		}

		writeData(w, http.StatusCreated, movie)
	}
}

// NewUpdateMovieHandler returns an HTTP handler for partial movie updates.
// @Summary Update movie rating
// @Description Owner or admin only. Setting isFavorite is subject to the limit of 4 favorites per user.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie id"
// @Param movie body handlers.UpdateMovieRequest true "Fields to change"
// @Success 200 {object} handlers.Response{data=models.Movie}
// @Failure 400 {object} handlers.ErrorResponse "Invalid rating or favorite limit reached"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies/{id} [put]
// @Security BearerAuth
func NewUpdateMovieHandler(svc MovieUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}
		id, ok := movieIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie data")
			return
		}
		if err := validateRequest(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		movie, err := svc.Update(r.Context(), *actor, id, models.MoviePatch{
			Title:      req.Title,
			Director:   req.Director,
			Year:       req.Year,
			Poster:     req.Poster,
			Rating:     req.Rating,
			Review:     req.Review,
			IsPublic:   req.IsPublic,
			IsFavorite: req.IsFavorite,
		})
		if err != nil {
			writeMovieError(w, err, "update movie")
			return
		}

		writeData(w, http.StatusOK, movie)
	}
}

// NewDeleteMovieHandler returns an HTTP handler deleting a rating.
// @Summary Delete movie rating
// @Description Owner or admin only
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} handlers.Response
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies/{id} [delete]
// @Security BearerAuth
func NewDeleteMovieHandler(svc MovieDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}
		id, ok := movieIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), *actor, id); err != nil {
			writeMovieError(w, err, "delete movie")
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true})
	}
}
