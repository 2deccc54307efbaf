package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/movie-ratings/internal/logger"
)

//go:generate mockgen -source=usernames.go -destination=mock_usernames.go -package=handlers

// UsernameBackfiller assigns usernames to accounts that have none.
type UsernameBackfiller interface {
	Backfill(ctx context.Context) (int, error)
}

// BackfillResult reports how many accounts received a username
// swagger:model BackfillResult
type BackfillResult struct {
	// default: 3
	Updated int `json:"updated"`
}

// NewGenerateUsernamesHandler returns an HTTP handler running the username backfill.
// @Summary Generate missing usernames
// @Description Admin only. Assigns a unique username to every account without one.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.Response{data=handlers.BackfillResult}
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /generate-usernames [post]
// @Security BearerAuth
func NewGenerateUsernamesHandler(svc UsernameBackfiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := svc.Backfill(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to generate usernames", "updated", updated, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate usernames")
			return
		}

		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    BackfillResult{Updated: updated},
			Message: fmt.Sprintf("Usernames generated successfully for %d users", updated),
		})
	}
}
