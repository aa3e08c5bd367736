package models

// FavoriteEvent is published to Kafka when a user adds or removes a favorite.
type FavoriteEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the user who acted.
	TmdbID    int64  `json:"tmdb_id"`   // TmdbID is the catalog identifier of the title.
	MediaType string `json:"media_type"`
	Action    string `json:"action"` // Action is "favorite_added" or "favorite_removed".
}
