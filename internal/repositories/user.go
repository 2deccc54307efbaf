package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/movie-ratings/internal/models"
)

const userColumns = `id, email, username, name, password_hash, is_admin, bio, profile_image,
	theme_color, is_profile_public, favorite_genres, created_at, updated_at`

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// getOne returns nil without error when no row matches.
func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, nil, nil)
		return nil, nil
	}
	logQuery(query, args, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user with the given email (case-insensitive), or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.getOne(ctx, query, email)
}

// GetByUsername returns the user with the given username, or nil.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// ListWithoutUsername returns every user whose username has not been assigned yet, oldest first.
func (r *UserReadRepository) ListWithoutUsername(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username IS NULL ORDER BY created_at`

	var users []models.User
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)

	return users, err
}

// UserWriteRepository handles user inserts and updates.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user and returns the stored row.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, username, name, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{user.Email, user.Username, user.Name, user.PasswordHash, user.IsAdmin}

	var created models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, []any{user.Email, user.Username, user.Name, user.IsAdmin}, created.ID, err)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpsertAdmin creates the admin account or promotes an existing one with the same email.
func (r *UserWriteRepository) UpsertAdmin(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET is_admin = TRUE,
		    password_hash = EXCLUDED.password_hash,
		    updated_at = NOW()
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, name, passwordHash)
	logQuery(query, []any{email, name}, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUsername stores the username of a user.
func (r *UserWriteRepository) SetUsername(ctx context.Context, id uuid.UUID, username string) error {
	query := `UPDATE users SET username = $2, updated_at = NOW() WHERE id = $1`
	args := []any{id, username}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated row.
// It returns sql.ErrNoRows when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", nullIfEmpty(*upd.Name))
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Bio != nil {
		add("bio", nullIfEmpty(*upd.Bio))
	}
	if upd.ProfileImage != nil {
		add("profile_image", nullIfEmpty(*upd.ProfileImage))
	}
	if upd.ThemeColor != nil {
		add("theme_color", nullIfEmpty(*upd.ThemeColor))
	}
	if upd.IsProfilePublic != nil {
		add("is_profile_public", *upd.IsProfilePublic)
	}
	if upd.FavoriteGenres != nil {
		add("favorite_genres", pq.StringArray(upd.FavoriteGenres))
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// nullIfEmpty maps "" to NULL so optional text columns can be cleared.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
