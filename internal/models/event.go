package models

// Movie event types published to Kafka.
const (
	EventMovieCreated     = "movie.created"
	EventMovieUpdated     = "movie.updated"
	EventMovieDeleted     = "movie.deleted"
	EventMovieFavorited   = "movie.favorited"
	EventMovieUnfavorited = "movie.unfavorited"
)

// MovieEvent describes a change to a movie rating, including who made it and when.
type MovieEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	MovieID   string `json:"movie_id"`  // MovieID is the affected rating.
	OwnerID   string `json:"owner_id"`  // OwnerID is the user who owns the rating.
	ActorID   string `json:"actor_id"`  // ActorID is the user who made the change.
	Title     string `json:"title"`     // Title is the movie title at the time of the event.
	Rating    int    `json:"rating"`    // Rating is the star rating at the time of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the change.
}
