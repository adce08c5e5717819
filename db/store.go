// Package db is the SQLite backing store for the local feed cache
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	sqlbuilder "github.com/huandu/go-sqlbuilder"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"essentialfeed/cache"
	"essentialfeed/models"
)

// Store keeps the cached feed and image data in a SQLite database
type Store struct {
	db *sql.DB
}

// Open connects to an already migrated database
func Open(database string) (*Store, error) {
	db, err := connection(database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) DeleteCachedFeed(ctx context.Context) error {
	return s.inTx(ctx, deleteFeed)
}

// Rows per INSERT, keeping the bound parameters well below SQLite's variable limit
const insertBatchSize = 500

// InsertFeed replaces the cached feed in a single transaction
func (s *Store) InsertFeed(ctx context.Context, feed []models.LocalFeedImage, timestamp time.Time) error {
	return s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := deleteFeed(ctx, tx); err != nil {
			return err
		}

		insertCache := sqlbuilder.SQLite.NewInsertBuilder()
		sql, args := insertCache.InsertInto("feed_cache").Cols("id", "timestamp").Values(0, timestamp.UnixNano()).Build()
		if _, err := tx.ExecContext(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert error: %w", err)
		}

		if len(feed) == 0 {
			return nil
		}

		for n, chunk := range lo.Chunk(feed, insertBatchSize) {
			insertImages := sqlbuilder.SQLite.NewInsertBuilder()
			insertImages.InsertInto("feed_images").Cols("position", "id", "description", "location", "url")
			for i, image := range chunk {
				position := n*insertBatchSize + i
				insertImages.Values(position, image.ID.String(), nullString(image.Description), nullString(image.Location), image.URL.String())
			}
			sql, args = insertImages.Build()
			if _, err := tx.ExecContext(ctx, sql, args...); err != nil {
				return fmt.Errorf("insert error: %w", err)
			}
		}

		log.WithFields(log.Fields{
			"count":     len(feed),
			"timestamp": timestamp.Format(time.RFC3339),
		}).Debug("Inserted feed")
		return nil
	})
}

func (s *Store) RetrieveFeed(ctx context.Context) (*models.CachedFeed, error) {
	selectCache := sqlbuilder.SQLite.NewSelectBuilder()
	query, args := selectCache.Select("timestamp").From("feed_cache").Where(selectCache.Equal("id", 0)).Build()

	var timestamp int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	selectImages := sqlbuilder.SQLite.NewSelectBuilder()
	query, args = selectImages.Select("id", "description", "location", "url").
		From("feed_images").
		OrderBy("position").Asc().
		Build()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	feed := make([]models.LocalFeedImage, 0)
	for rows.Next() {
		var (
			id, rawURL            string
			description, location sql.NullString
		)
		if err := rows.Scan(&id, &description, &location, &rawURL); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		image, err := toLocalFeedImage(id, description, location, rawURL)
		if err != nil {
			return nil, err
		}
		feed = append(feed, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &models.CachedFeed{
		Feed:      feed,
		Timestamp: time.Unix(0, timestamp).UTC(),
	}, nil
}

func (s *Store) InsertImageData(ctx context.Context, data []byte, u *url.URL) error {
	ib := sqlbuilder.SQLite.NewInsertBuilder()
	query, args := ib.ReplaceInto("image_data").
		Cols("url", "data", "cached_at").
		Values(u.String(), data, time.Now().Unix()).
		Build()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert error: %w", err)
	}
	return nil
}

func (s *Store) RetrieveImageData(ctx context.Context, u *url.URL) ([]byte, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	query, args := sb.Select("data").From("image_data").Where(sb.Equal("url", u.String())).Build()

	var data []byte
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return data, nil
}

func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin error: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.WithFields(log.Fields{
				"error": rbErr,
			}).Error("Error rolling back transaction")
		}
		return err
	}

	return tx.Commit()
}

func deleteFeed(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"feed_images", "feed_cache"} {
		sql, args := sqlbuilder.SQLite.NewDeleteBuilder().DeleteFrom(table).Build()
		if _, err := tx.ExecContext(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete error: %w", err)
		}
	}
	return nil
}

func toLocalFeedImage(id string, description, location sql.NullString, rawURL string) (models.LocalFeedImage, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return models.LocalFeedImage{}, fmt.Errorf("invalid image id %q: %w", id, err)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.LocalFeedImage{}, fmt.Errorf("invalid image url %q: %w", rawURL, err)
	}

	image := models.LocalFeedImage{ID: parsedID, URL: u}
	if description.Valid {
		image.Description = &description.String
	}
	if location.Valid {
		image.Location = &location.String
	}
	return image, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var _ cache.FeedStore = (*Store)(nil)
var _ cache.FeedImageDataStore = (*Store)(nil)
