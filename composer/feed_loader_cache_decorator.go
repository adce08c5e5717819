package composer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/models"
)

// FeedLoaderCacheDecorator saves every successfully loaded feed to a cache
// and otherwise behaves exactly like the loader it wraps.
type FeedLoaderCacheDecorator struct {
	decoratee feed.FeedLoader
	cache     feed.FeedCache
}

func NewFeedLoaderCacheDecorator(decoratee feed.FeedLoader, cache feed.FeedCache) *FeedLoaderCacheDecorator {
	return &FeedLoaderCacheDecorator{decoratee: decoratee, cache: cache}
}

// Load delegates to the wrapped loader. The cache write is best effort: its
// error is logged and never reaches the caller.
func (d *FeedLoaderCacheDecorator) Load(ctx context.Context) ([]models.FeedImage, error) {
	images, err := d.decoratee.Load(ctx)
	if err != nil {
		return nil, err
	}

	cacheSaves.WithLabelValues("feed").Inc()
	if err := d.cache.Save(ctx, images); err != nil {
		cacheSaveFailures.WithLabelValues("feed").Inc()
		log.WithFields(log.Fields{
			"count": len(images),
			"error": err,
		}).Warn("Failed to cache loaded feed")
	}

	return images, nil
}

var _ feed.FeedLoader = (*FeedLoaderCacheDecorator)(nil)
