package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported media types for favorites.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// FavoriteDB represents a favorited title in the database.
// The tuple (user_id, tmdb_id, media_type) is unique.
type FavoriteDB struct {
	FavoriteID  uuid.UUID `db:"favorite_id"`
	UserID      uuid.UUID `db:"user_id"`
	TmdbID      int64     `db:"tmdb_id"`
	Title       string    `db:"title"`
	PosterPath  *string   `db:"poster_path"`
	MediaType   string    `db:"media_type"`
	VoteAverage *float64  `db:"vote_average"`
	ReleaseDate *string   `db:"release_date"`
	CreatedAt   time.Time `db:"created_at"`
}

// Favorite is the API projection of a favorited title.
// swagger:model Favorite
type Favorite struct {
	ID          string    `json:"id"`
	TmdbID      int64     `json:"tmdbId"`
	Title       string    `json:"title"`
	PosterPath  *string   `json:"posterPath"`
	MediaType   string    `json:"mediaType"`
	VoteAverage *float64  `json:"voteAverage,omitempty"`
	ReleaseDate *string   `json:"releaseDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public converts a database row to its API projection.
func (f *FavoriteDB) Public() *Favorite {
	return &Favorite{
		ID:          f.FavoriteID.String(),
		TmdbID:      f.TmdbID,
		Title:       f.Title,
		PosterPath:  f.PosterPath,
		MediaType:   f.MediaType,
		VoteAverage: f.VoteAverage,
		ReleaseDate: f.ReleaseDate,
		CreatedAt:   f.CreatedAt,
	}
}
