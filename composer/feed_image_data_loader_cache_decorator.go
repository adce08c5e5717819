package composer

import (
	"context"
	"net/url"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
)

// FeedImageDataLoaderCacheDecorator saves the bytes of every successfully
// loaded image to a cache.
type FeedImageDataLoaderCacheDecorator struct {
	decoratee feed.FeedImageDataLoader
	cache     feed.FeedImageDataCache
}

func NewFeedImageDataLoaderCacheDecorator(decoratee feed.FeedImageDataLoader, cache feed.FeedImageDataCache) *FeedImageDataLoaderCacheDecorator {
	return &FeedImageDataLoaderCacheDecorator{decoratee: decoratee, cache: cache}
}

func (d *FeedImageDataLoaderCacheDecorator) LoadImageData(ctx context.Context, url *url.URL) ([]byte, error) {
	data, err := d.decoratee.LoadImageData(ctx, url)
	if err != nil {
		return nil, err
	}

	cacheSaves.WithLabelValues("image").Inc()
	if err := d.cache.SaveImageData(ctx, data, url); err != nil {
		cacheSaveFailures.WithLabelValues("image").Inc()
		log.WithFields(log.Fields{
			"url":   url.String(),
			"bytes": len(data),
			"error": err,
		}).Warn("Failed to cache image data")
	}

	return data, nil
}

var _ feed.FeedImageDataLoader = (*FeedImageDataLoaderCacheDecorator)(nil)
