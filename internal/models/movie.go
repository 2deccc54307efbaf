package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxFavorites is the number of movies a single user may mark as favorite.
const MaxFavorites = 4

// ErrFavoriteLimit is returned by storage when raising a favorite flag would exceed MaxFavorites.
var ErrFavoriteLimit = errors.New("favorite limit reached")

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// MovieOwner is the public summary of the user who rated a movie.
type MovieOwner struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     *string   `json:"name" db:"name"`
	Username *string   `json:"username" db:"username"`
	IsAdmin  bool      `json:"isAdmin" db:"is_admin"`
}

// Movie represents a movie rating row in the database
type Movie struct {
	ID         uuid.UUID  `json:"id" db:"id"`                  // Primary key
	UserID     uuid.UUID  `json:"userId" db:"user_id"`         // Owner of the rating
	Title      string     `json:"title" db:"title"`            // Movie title
	Director   *string    `json:"director" db:"director"`      // Director(s)
	Year       *int       `json:"year" db:"year"`              // Release year
	Poster     *string    `json:"poster" db:"poster"`          // Poster URL
	Rating     int        `json:"rating" db:"rating"`          // 1..5 stars
	Review     *string    `json:"review" db:"review"`          // Review text
	IsFavorite bool       `json:"isFavorite" db:"is_favorite"` // One of the owner's highlighted picks
	IsPublic   bool       `json:"isPublic" db:"is_public"`     // Visible in public listings
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`   // Last update timestamp
	Owner      MovieOwner `json:"user" db:"owner"`             // Populated by read queries only
}

// MovieInput holds the fields of a new rating.
type MovieInput struct {
	Title    string
	Director *string
	Year     *int
	Poster   *string
	Rating   int
	Review   *string
	IsPublic *bool
}

// MoviePatch holds a partial update. Nil fields are unchanged; empty strings and a zero
// year clear the column.
type MoviePatch struct {
	Title      *string
	Director   *string
	Year       *int
	Poster     *string
	Rating     *int
	Review     *string
	IsPublic   *bool
	IsFavorite *bool
}

// HasFieldChanges reports whether the patch touches anything besides the favorite flag.
func (p MoviePatch) HasFieldChanges() bool {
	return p.Title != nil || p.Director != nil || p.Year != nil || p.Poster != nil ||
		p.Rating != nil || p.Review != nil || p.IsPublic != nil
}

// Sort orders accepted by movie listings.
const (
	SortNewest = "newest"
	SortRating = "rating"
	SortTitle  = "title"
)

// MovieFilter narrows a movie listing.
type MovieFilter struct {
	UserID         *uuid.UUID // only movies rated by this user
	OwnerIsAdmin   *bool      // only movies whose owner is (or is not) an admin
	Sort           string     // newest, rating or title
	Limit          int        // 0 means no limit
	IncludePrivate bool       // include movies not marked public
}
