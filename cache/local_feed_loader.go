package cache

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/models"
)

// LocalFeedLoader loads, saves and validates the cached feed
type LocalFeedLoader struct {
	store  FeedStore
	now    func() time.Time
	policy CachePolicy
}

func NewLocalFeedLoader(store FeedStore, now func() time.Time) *LocalFeedLoader {
	return &LocalFeedLoader{store: store, now: now, policy: DefaultCachePolicy()}
}

// WithPolicy returns a copy of the loader using policy
func (l *LocalFeedLoader) WithPolicy(policy CachePolicy) *LocalFeedLoader {
	return &LocalFeedLoader{store: l.store, now: l.now, policy: policy}
}

// Save replaces whatever is cached with feed
func (l *LocalFeedLoader) Save(ctx context.Context, images []models.FeedImage) error {
	if err := l.store.DeleteCachedFeed(ctx); err != nil {
		return fmt.Errorf("delete cached feed: %w", err)
	}

	if err := l.store.InsertFeed(ctx, models.ToLocal(images), l.now()); err != nil {
		return fmt.Errorf("insert feed: %w", err)
	}

	log.WithFields(log.Fields{
		"count": len(images),
	}).Debug("Saved feed to cache")
	return nil
}

// Load returns the cached feed. An empty or expired cache is an empty feed.
func (l *LocalFeedLoader) Load(ctx context.Context) ([]models.FeedImage, error) {
	cached, err := l.store.RetrieveFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve feed: %w", err)
	}

	if cached == nil || !l.policy.Validate(cached.Timestamp, l.now()) {
		return []models.FeedImage{}, nil
	}

	return models.ToModels(cached.Feed), nil
}

// ValidateCache deletes a cache that is expired or cannot be read
func (l *LocalFeedLoader) ValidateCache(ctx context.Context) error {
	cached, err := l.store.RetrieveFeed(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Warn("Cache could not be read, deleting it")
		return l.store.DeleteCachedFeed(ctx)
	}

	if cached != nil && !l.policy.Validate(cached.Timestamp, l.now()) {
		log.WithFields(log.Fields{
			"timestamp": cached.Timestamp.Format(time.RFC3339),
		}).Info("Cache expired, deleting it")
		return l.store.DeleteCachedFeed(ctx)
	}

	return nil
}

var _ feed.FeedLoader = (*LocalFeedLoader)(nil)
var _ feed.FeedCache = (*LocalFeedLoader)(nil)
