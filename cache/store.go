// Package cache keeps a local copy of the feed and its image data
package cache

import (
	"context"
	"net/url"
	"time"

	"essentialfeed/models"
)

// FeedStore persists a single cached feed. RetrieveFeed returns nil when
// nothing is cached.
type FeedStore interface {
	DeleteCachedFeed(ctx context.Context) error
	InsertFeed(ctx context.Context, feed []models.LocalFeedImage, timestamp time.Time) error
	RetrieveFeed(ctx context.Context) (*models.CachedFeed, error)
}

// FeedImageDataStore persists image bytes by URL. RetrieveImageData returns
// nil data when nothing is stored for the URL.
type FeedImageDataStore interface {
	InsertImageData(ctx context.Context, data []byte, url *url.URL) error
	RetrieveImageData(ctx context.Context, url *url.URL) ([]byte, error)
}
