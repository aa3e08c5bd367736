package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMissingFavoriteFields = errors.New("tmdbId, title and posterPath are required")
	ErrInvalidMediaType      = errors.New("mediaType must be movie or tv")
	ErrFavoriteExists        = errors.New("already in favorites")
	ErrFavoriteNotFound      = errors.New("favorite not found")
)

// FavoriteReader defines read operations for favorites.
type FavoriteReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
	Exists(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) (bool, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Save(ctx context.Context, fav *models.FavoriteDB) (*models.FavoriteDB, error)
	Delete(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FavoritesService manages the per-user favorites set and publishes
// add/remove events to Kafka.
type FavoritesService struct {
	reader      FavoriteReader
	writer      FavoriteWriter
	kafkaWriter KafkaWriter
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(reader FavoriteReader, writer FavoriteWriter, kafkaWriter KafkaWriter) *FavoritesService {
	return &FavoritesService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a favorite event to Kafka.
func (s *FavoritesService) publishEvent(ctx context.Context, action string, userID uuid.UUID, tmdbID int64, mediaType string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action)
		return
	}

	event := models.FavoriteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		TmdbID:    tmdbID,
		MediaType: mediaType,
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "action", action)
	}
}

// GetUserFavorites returns all favorites of the user, newest first.
func (s *FavoritesService) GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	rows, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get favorites", "userID", userID, "error", err)
		return nil, err
	}

	favorites := make([]models.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, *row.Public())
	}
	return favorites, nil
}

// AddFavorite adds a title to the user's favorites. The existence check is a
// fast path only: the storage unique constraint on
// (user_id, tmdb_id, media_type) is what actually resolves concurrent
// duplicate adds.
func (s *FavoritesService) AddFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, title string, posterPath *string, mediaType string, voteAverage *float64, releaseDate *string) (*models.Favorite, error) {
	if tmdbID == 0 || title == "" {
		return nil, ErrMissingFavoriteFields
	}
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		return nil, ErrInvalidMediaType
	}

	exists, err := s.reader.Exists(ctx, userID, tmdbID, mediaType)
	if err != nil {
		logger.Log.Errorw("failed to check favorite exists", "userID", userID, "tmdbID", tmdbID, "error", err)
		return nil, err
	}
	if exists {
		return nil, ErrFavoriteExists
	}

	saved, err := s.writer.Save(ctx, &models.FavoriteDB{
		UserID:      userID,
		TmdbID:      tmdbID,
		Title:       title,
		PosterPath:  posterPath,
		MediaType:   mediaType,
		VoteAverage: voteAverage,
		ReleaseDate: releaseDate,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race: another request inserted the same key first.
			return nil, ErrFavoriteExists
		}
		logger.Log.Errorw("failed to save favorite", "userID", userID, "tmdbID", tmdbID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, "favorite_added", userID, tmdbID, mediaType)

	return saved.Public(), nil
}

// RemoveFavorite removes the favorite keyed on (userID, tmdbID, mediaType).
// A favorite owned by another user does not match the lookup, so non-owners
// always get ErrFavoriteNotFound.
func (s *FavoritesService) RemoveFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) error {
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}

	if err := s.writer.Delete(ctx, userID, tmdbID, mediaType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFavoriteNotFound
		}
		logger.Log.Errorw("failed to delete favorite", "userID", userID, "tmdbID", tmdbID, "error", err)
		return err
	}

	s.publishEvent(ctx, "favorite_removed", userID, tmdbID, mediaType)

	return nil
}

// IsFavorite reports whether the user has favorited the title.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) (bool, error) {
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}

	exists, err := s.reader.Exists(ctx, userID, tmdbID, mediaType)
	if err != nil {
		logger.Log.Errorw("failed to check favorite", "userID", userID, "tmdbID", tmdbID, "error", err)
		return false, err
	}
	return exists, nil
}
