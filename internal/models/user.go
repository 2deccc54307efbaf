package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User represents a user record in the database
type User struct {
	ID              uuid.UUID      `json:"id" db:"id"`                             // Primary key
	Email           string         `json:"email,omitempty" db:"email"`             // Unique email, hidden from public views
	Username        *string        `json:"username" db:"username"`                 // Unique handle, nil until assigned
	Name            *string        `json:"name" db:"name"`                         // Display name
	PasswordHash    *string        `json:"-" db:"password_hash"`                   // bcrypt hash, nil for seeded accounts
	IsAdmin         bool           `json:"isAdmin" db:"is_admin"`                  // Admin flag
	Bio             *string        `json:"bio" db:"bio"`                           // Free-form profile text
	ProfileImage    *string        `json:"profileImage" db:"profile_image"`        // Avatar URL
	ThemeColor      *string        `json:"themeColor" db:"theme_color"`            // Hex color of the profile page
	IsProfilePublic bool           `json:"isProfilePublic" db:"is_profile_public"` // Profile visible to everyone
	FavoriteGenres  pq.StringArray `json:"favoriteGenres" db:"favorite_genres"`    // Up to five genres
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`              // Creation timestamp
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`              // Last update timestamp
}

// MaxFavoriteGenres is the number of genres a profile may list.
const MaxFavoriteGenres = 5

// PublicView returns a copy of the user without private fields.
func (u User) PublicView() User {
	u.Email = ""
	u.PasswordHash = nil
	return u
}

// ProfileUpdate carries the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Name            *string
	Username        *string
	Bio             *string
	ProfileImage    *string
	ThemeColor      *string
	IsProfilePublic *bool
	FavoriteGenres  []string
}

// Actor identifies who performs an operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// CanManage reports whether the actor may modify a record owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin || a.UserID == ownerID
}
