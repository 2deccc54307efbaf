package models

// TMDBSearchResult is a single entry of a TMDB movie search.
type TMDBSearchResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	Popularity    float64 `json:"popularity"`
}

// TMDBSearchResponse is the body of GET /search/movie.
type TMDBSearchResponse struct {
	Page         int                `json:"page"`
	Results      []TMDBSearchResult `json:"results"`
	TotalResults int                `json:"total_results"`
	TotalPages   int                `json:"total_pages"`
}

// TMDBMovie is the body of GET /movie/{id}.
type TMDBMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	Runtime     *int    `json:"runtime"`
}

// TMDBCrewMember is a crew entry of the credits response.
type TMDBCrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// TMDBCredits is the body of GET /movie/{id}/credits.
type TMDBCredits struct {
	ID   int              `json:"id"`
	Crew []TMDBCrewMember `json:"crew"`
}

// TMDBMovieDetails is the shape returned to clients when they pick a movie to rate.
type TMDBMovieDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Director    string  `json:"director"`
	ReleaseYear *int    `json:"release_year"`
	PosterURL   *string `json:"poster_url"`
	Overview    string  `json:"overview"`
	Runtime     *int    `json:"runtime"`
}
