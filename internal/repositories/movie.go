package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

const movieColumns = `id, user_id, title, director, year, poster, rating, review,
	is_favorite, is_public, created_at, updated_at`

const movieWithOwnerSelect = `
	SELECT m.id, m.user_id, m.title, m.director, m.year, m.poster, m.rating, m.review,
	       m.is_favorite, m.is_public, m.created_at, m.updated_at,
	       u.id AS "owner.id", u.name AS "owner.name",
	       u.username AS "owner.username", u.is_admin AS "owner.is_admin"
	FROM movies m
	JOIN users u ON u.id = m.user_id`

var movieOrderBy = map[string]string{
	models.SortNewest: "m.created_at DESC",
	models.SortRating: "m.rating DESC, m.created_at DESC",
	models.SortTitle:  "m.title ASC",
}

// MovieReadRepository handles movie lookups.
type MovieReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMovieReadRepository(db *sqlx.DB, txGetter TxGetter) *MovieReadRepository {
	return &MovieReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the movie together with its owner summary, or nil.
func (r *MovieReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	query := movieWithOwnerSelect + ` WHERE m.id = $1`

	var movie models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &movie, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, []any{id}, nil, nil)
		return nil, nil
	}
	logQuery(query, []any{id}, movie.ID, err)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns movies matching the filter. Unknown sort orders fall back to newest first.
func (r *MovieReadRepository) List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	var (
		where []string
		args  []any
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		where = append(where, fmt.Sprintf("m.user_id = $%d", len(args)))
	}
	if filter.OwnerIsAdmin != nil {
		args = append(args, *filter.OwnerIsAdmin)
		where = append(where, fmt.Sprintf("u.is_admin = $%d", len(args)))
	}
	if !filter.IncludePrivate {
		where = append(where, "m.is_public")
	}

	query := movieWithOwnerSelect
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	orderBy, ok := movieOrderBy[filter.Sort]
	if !ok {
		orderBy = movieOrderBy[models.SortNewest]
	}
	query += ` ORDER BY ` + orderBy

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	movies := []models.Movie{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &movies, query, args...)
	logQuery(query, args, len(movies), err)

	return movies, err
}

// CountFavorites returns how many movies of the user are marked as favorite.
func (r *MovieReadRepository) CountFavorites(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM movies WHERE user_id = $1 AND is_favorite`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, userID)
	logQuery(query, []any{userID}, count, err)

	return count, err
}

// Count returns the number of movies in the catalog.
func (r *MovieReadRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query)
	logQuery(query, nil, count, err)

	return count, err
}

// MovieWriteRepository handles movie inserts, updates and deletes.
type MovieWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMovieWriteRepository(db *sqlx.DB, txGetter TxGetter) *MovieWriteRepository {
	return &MovieWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a rating owned by ownerID.
func (r *MovieWriteRepository) Create(ctx context.Context, ownerID uuid.UUID, in models.MovieInput) (*models.Movie, error) {
	query := `
		INSERT INTO movies (id, user_id, title, director, year, poster, rating, review, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, TRUE), NOW(), NOW())
		RETURNING ` + movieColumns
	args := []any{uuid.New(), ownerID, in.Title, in.Director, in.Year, in.Poster, in.Rating, in.Review, in.IsPublic}

	var movie models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &movie, query, args...)
	logQuery(query, args, movie.ID, err)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update applies the field changes of the patch. The favorite flag is ignored here,
// it only changes through SetFavorite. Returns sql.ErrNoRows when the movie does not exist.
func (r *MovieWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.MoviePatch) (*models.Movie, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Director != nil {
		add("director", nullIfEmpty(*patch.Director))
	}
	if patch.Year != nil {
		var year *int
		if *patch.Year != 0 {
			year = patch.Year
		}
		add("year", year)
	}
	if patch.Poster != nil {
		add("poster", nullIfEmpty(*patch.Poster))
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Review != nil {
		add("review", nullIfEmpty(*patch.Review))
	}
	if patch.IsPublic != nil {
		add("is_public", *patch.IsPublic)
	}

	query := `UPDATE movies SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + movieColumns

	var movie models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &movie, query, args...)
	logQuery(query, args, movie.ID, err)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete removes a movie. Returns sql.ErrNoRows when nothing was deleted.
func (r *MovieWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetFavorite sets the favorite flag of a movie owned by ownerID.
//
// Raising the flag succeeds only while the owner has fewer than limit favorites. The owner's
// user row is locked first, so concurrent favorite changes for the same owner are serialized
// and the count seen by the conditional update is always current. The lock is taken inside
// the request transaction when there is one, otherwise in a transaction of its own.
//
// Returns sql.ErrNoRows when the movie does not exist and models.ErrFavoriteLimit when the limit
// would be exceeded.
func (r *MovieWriteRepository) SetFavorite(ctx context.Context, movieID, ownerID uuid.UUID, favorite bool, limit int) (*models.Movie, error) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.setFavorite(ctx, tx, movieID, ownerID, favorite, limit)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	movie, err := r.setFavorite(ctx, tx, movieID, ownerID, favorite, limit)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return movie, nil
}

func (r *MovieWriteRepository) setFavorite(ctx context.Context, tx *sqlx.Tx, movieID, ownerID uuid.UUID, favorite bool, limit int) (*models.Movie, error) {
	lockQuery := `SELECT id FROM users WHERE id = $1 FOR UPDATE`

	var locked uuid.UUID
	err := tx.GetContext(ctx, &locked, lockQuery, ownerID)
	logQuery(lockQuery, []any{ownerID}, locked, err)
	if err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE movies
		SET is_favorite = $3::BOOLEAN, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		  AND (NOT $3::BOOLEAN
		       OR is_favorite
		       OR (SELECT COUNT(*) FROM movies WHERE user_id = $2 AND is_favorite) < $4)
		RETURNING ` + movieColumns
	args := []any{movieID, ownerID, favorite, limit}

	var movie models.Movie
	err = tx.GetContext(ctx, &movie, updateQuery, args...)
	logQuery(updateQuery, args, movie.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.favoriteMiss(ctx, tx, movieID, ownerID)
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// favoriteMiss tells apart a missing movie from a rejected favorite after the
// conditional update matched nothing.
func (r *MovieWriteRepository) favoriteMiss(ctx context.Context, tx *sqlx.Tx, movieID, ownerID uuid.UUID) error {
	existsQuery := `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := tx.GetContext(ctx, &exists, existsQuery, movieID, ownerID)
	logQuery(existsQuery, []any{movieID, ownerID}, exists, err)
	if err != nil {
		return err
	}
	if !exists {
		return sql.ErrNoRows
	}
	return models.ErrFavoriteLimit
}
