package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/moviedeck/moviedeck/internal/logger"
	"github.com/moviedeck/moviedeck/internal/models"
)

// FavoriteWriteRepository handles favorite write operations
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a favorite. Uniqueness of (user_id, tmdb_id, media_type) is
// enforced by the storage constraint: on conflict the insert is a no-op and
// sql.ErrNoRows is returned.
func (r *FavoriteWriteRepository) Save(ctx context.Context, fav *models.FavoriteDB) (*models.FavoriteDB, error) {
	query := `
		INSERT INTO favorites (favorite_id, user_id, tmdb_id, title, poster_path, media_type, vote_average, release_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id, tmdb_id, media_type) DO NOTHING
		RETURNING favorite_id, user_id, tmdb_id, title, poster_path, media_type, vote_average, release_date, created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.FavoriteDB
	err := sqlx.GetContext(ctx, executor, &saved, query,
		uuid.New(), fav.UserID, fav.TmdbID, fav.Title, fav.PosterPath, fav.MediaType, fav.VoteAverage, fav.ReleaseDate)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fav.UserID, fav.TmdbID, fav.MediaType},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the favorite keyed on (user_id, tmdb_id, media_type).
// Returns sql.ErrNoRows when no such row exists for this user.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND tmdb_id = $2 AND media_type = $3
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, userID, tmdbID, mediaType)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, tmdbID, mediaType},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FavoriteReadRepository handles favorite read operations
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// GetByUserID returns all favorites of a user, newest first.
func (r *FavoriteReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	const query = `
		SELECT favorite_id, user_id, tmdb_id, title, poster_path, media_type, vote_average, release_date, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var favorites []models.FavoriteDB
	err := r.db.SelectContext(ctx, &favorites, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(favorites),
		"error", err,
	)

	return favorites, err
}

// Exists reports whether the user has favorited the title under the given media type.
func (r *FavoriteReadRepository) Exists(ctx context.Context, userID uuid.UUID, tmdbID int64, mediaType string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND tmdb_id = $2 AND media_type = $3
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, tmdbID, mediaType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, tmdbID, mediaType},
		"result", exists,
		"error", err,
	)

	return exists, err
}
