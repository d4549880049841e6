package tmdb

// ListResponse is the envelope returned by the movie list endpoints
type ListResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a single entry in a list response.
// Title/Name and the date fields are pointers so an absent field can be told
// apart from an empty one.
type MovieResult struct {
	ID           int     `json:"id"`
	Title        *string `json:"title"`
	Name         *string `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  *string `json:"release_date"`
	FirstAirDate *string `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// Genre is a genre entry on a movie detail
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetailResponse is the response from GET /movie/{id}
type MovieDetailResponse struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres"`
	Runtime      *int    `json:"runtime"`
	Tagline      *string `json:"tagline"`
	Homepage     *string `json:"homepage"`
	Status       string  `json:"status"`
}

// CastMember is a single cast entry
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// CreditsResponse is the response from GET /movie/{id}/credits
type CreditsResponse struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
}

// GuestSessionResponse is the response from GET /authentication/guest_session/new
type GuestSessionResponse struct {
	Success        bool   `json:"success"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
}

// RatingRequest is the body sent to POST /movie/{id}/rating
type RatingRequest struct {
	Value float64 `json:"value"`
}

// StatusResponse is the generic status envelope TMDb returns for writes and errors
type StatusResponse struct {
	Success       *bool  `json:"success,omitempty"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
