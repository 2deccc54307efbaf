package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

//go:generate mockgen -source=favorite.go -destination=mock_favorite.go -package=handlers

// FavoriteSetter changes the favorite flag of a movie.
type FavoriteSetter interface {
	SetFavorite(ctx context.Context, actor models.Actor, id uuid.UUID, favorite bool) (*models.Movie, error)
	ToggleFavorite(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Movie, error)
}

// FavoriteRequest optionally names the desired favorite state. Without it the flag is toggled.
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	// default: true
	IsFavorite *bool `json:"isFavorite"`
}

// NewFavoriteHandler returns an HTTP handler for marking movies as favorite.
// @Summary Set or toggle favorite
// @Description Sets the favorite flag to isFavorite, or toggles it when the body is empty. A user may have at most 4 favorites.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie id"
// @Param favorite body handlers.FavoriteRequest false "Desired state"
// @Success 200 {object} handlers.Response{data=models.Movie}
// @Failure 400 {object} handlers.ErrorResponse "Favorite limit reached"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /movies/{id}/favorite [patch]
// @Security BearerAuth
func NewFavoriteHandler(svc FavoriteSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := requireActor(w, r)
		if actor == nil {
			return
		}
		id, ok := movieIDParam(w, r)
		if !ok {
			return
		}

		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var (
			movie *models.Movie
			err   error
		)
		if req.IsFavorite != nil {
			movie, err = svc.SetFavorite(r.Context(), *actor, id, *req.IsFavorite)
		} else {
			movie, err = svc.ToggleFavorite(r.Context(), *actor, id)
		}
		if err != nil {
			writeMovieError(w, err, "update favorite status")
			return
		}

		msg := "Removed from favorites"
		if movie.IsFavorite {
			msg = "Added to favorites"
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: movie, Message: msg})
	}
}
