package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/movie-ratings/internal/logger"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=movie.go -destination=mock_movie.go -package=services

var (
	ErrMovieNotFound         = errors.New("movie not found")
	ErrForbidden             = errors.New("not authorized to modify this movie")
	ErrFavoriteLimitExceeded = errors.New("you can only have up to 4 favorite movies")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrTitleRequired         = errors.New("title is required")
)

// MovieReader defines movie lookups.
type MovieReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
}

// MovieWriter defines movie mutations.
type MovieWriter interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.MovieInput) (*models.Movie, error)
	Update(ctx context.Context, id uuid.UUID, patch models.MoviePatch) (*models.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetFavorite(ctx context.Context, movieID, ownerID uuid.UUID, favorite bool, limit int) (*models.Movie, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// MovieService handles movie ratings and publishes their changes.
type MovieService struct {
	reader      MovieReader
	writer      MovieWriter
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
}

// MovieServiceOpt configures a MovieService.
type MovieServiceOpt func(*MovieService)

// WithAfterCommit sets the function that schedules event publishing once the
// surrounding transaction has been committed.
func WithAfterCommit(fn func(ctx context.Context, fn func())) MovieServiceOpt {
	return func(s *MovieService) {
		s.afterCommit = fn
	}
}

// NewMovieService creates a new MovieService. kafkaWriter may be nil.
func NewMovieService(reader MovieReader, writer MovieWriter, kafkaWriter KafkaWriter, opts ...MovieServiceOpt) *MovieService {
	s := &MovieService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishEvent schedules a movie event for Kafka once the change is committed.
func (s *MovieService) publishEvent(ctx context.Context, eventType string, actor models.Actor, movie *models.Movie) {
	s.afterCommit(ctx, func() {
		s.writeEvent(context.WithoutCancel(ctx), eventType, actor, movie)
	})
}

// writeEvent writes a movie event to Kafka. Failures are logged only.
func (s *MovieService) writeEvent(ctx context.Context, eventType string, actor models.Actor, movie *models.Movie) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "movie_id", movie.ID)
		return
	}

	event := models.MovieEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		MovieID:   movie.ID.String(),
		OwnerID:   movie.UserID.String(),
		ActorID:   actor.UserID.String(),
		Title:     movie.Title,
		Rating:    movie.Rating,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal movie event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.MovieID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish movie event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Movie event published", "event_id", event.EventID, "type", eventType, "movie_id", event.MovieID)
	}
}

func validRating(r int) bool {
	return r >= models.MinRating && r <= models.MaxRating
}

// List returns movies matching the filter.
func (s *MovieService) List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	movies, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "error", err)
		return nil, err
	}
	return movies, nil
}

// Get returns a single movie with its owner summary.
func (s *MovieService) Get(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	movie, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movie_id", id, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// getManaged loads a movie and checks that the actor may modify it.
func (s *MovieService) getManaged(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Movie, error) {
	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(movie.UserID) {
		logger.Log.Warnw("forbidden movie access", "movie_id", id, "actor", actor.UserID)
		return nil, ErrForbidden
	}
	return movie, nil
}

// Create stores a new rating owned by the actor.
func (s *MovieService) Create(ctx context.Context, actor models.Actor, in models.MovieInput) (*models.Movie, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if !validRating(in.Rating) {
		return nil, ErrInvalidRating
	}

	movie, err := s.writer.Create(ctx, actor.UserID, in)
	if err != nil {
		logger.Log.Errorw("failed to create movie", "owner", actor.UserID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventMovieCreated, actor, movie)
	return movie, nil
}

// Update applies a partial update. A change of the favorite flag is subject to the
// favorite limit and is applied before the other fields.
func (s *MovieService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, patch models.MoviePatch) (*models.Movie, error) {
	existing, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Rating != nil && !validRating(*patch.Rating) {
		return nil, ErrInvalidRating
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		patch.Title = nil
	}

	result := existing
	favoriteEvent := ""
	if patch.IsFavorite != nil {
		result, favoriteEvent, err = s.setFavorite(ctx, existing, *patch.IsFavorite)
		if err != nil {
			return nil, err
		}
	}

	if patch.HasFieldChanges() {
		updated, err := s.writer.Update(ctx, id, patch)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		if err != nil {
			logger.Log.Errorw("failed to update movie", "movie_id", id, "error", err)
			return nil, err
		}
		updated.Owner = existing.Owner
		result = updated
	}

	if favoriteEvent != "" {
		s.publishEvent(ctx, favoriteEvent, actor, result)
	}
	if patch.HasFieldChanges() {
		s.publishEvent(ctx, models.EventMovieUpdated, actor, result)
	}
	return result, nil
}

// Delete removes a rating.
func (s *MovieService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	existing, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMovieNotFound
		}
		logger.Log.Errorw("failed to delete movie", "movie_id", id, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventMovieDeleted, actor, existing)
	return nil
}

// SetFavorite sets the favorite flag of a movie. Raising the flag fails with
// ErrFavoriteLimitExceeded when the owner already has the maximum number of favorites,
// in which case nothing is changed.
func (s *MovieService) SetFavorite(ctx context.Context, actor models.Actor, id uuid.UUID, favorite bool) (*models.Movie, error) {
	existing, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return s.applyFavorite(ctx, actor, existing, favorite)
}

// ToggleFavorite flips the favorite flag of a movie.
func (s *MovieService) ToggleFavorite(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Movie, error) {
	existing, err := s.getManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return s.applyFavorite(ctx, actor, existing, !existing.IsFavorite)
}

func (s *MovieService) applyFavorite(ctx context.Context, actor models.Actor, existing *models.Movie, favorite bool) (*models.Movie, error) {
	movie, eventType, err := s.setFavorite(ctx, existing, favorite)
	if err != nil {
		return nil, err
	}
	if eventType != "" {
		s.publishEvent(ctx, eventType, actor, movie)
	}
	return movie, nil
}

// setFavorite stores the flag and returns the event type describing the change,
// empty when the flag was already set that way.
func (s *MovieService) setFavorite(ctx context.Context, existing *models.Movie, favorite bool) (*models.Movie, string, error) {
	movie, err := s.writer.SetFavorite(ctx, existing.ID, existing.UserID, favorite, models.MaxFavorites)
	switch {
	case errors.Is(err, models.ErrFavoriteLimit):
		logger.Log.Infow("favorite limit reached", "movie_id", existing.ID, "owner", existing.UserID)
		return nil, "", ErrFavoriteLimitExceeded
	case errors.Is(err, sql.ErrNoRows):
		return nil, "", ErrMovieNotFound
	case err != nil:
		logger.Log.Errorw("failed to set favorite", "movie_id", existing.ID, "favorite", favorite, "error", err)
		return nil, "", err
	}
	movie.Owner = existing.Owner

	if favorite == existing.IsFavorite {
		return movie, "", nil
	}
	if favorite {
		return movie, models.EventMovieFavorited, nil
	}
	return movie, models.EventMovieUnfavorited, nil
}
