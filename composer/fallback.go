package composer

import (
	"context"
	"net/url"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/models"
)

// FeedLoaderWithFallbackComposite tries the primary loader and only asks the
// fallback when the primary fails.
type FeedLoaderWithFallbackComposite struct {
	primary  feed.FeedLoader
	fallback feed.FeedLoader
}

func NewFeedLoaderWithFallbackComposite(primary, fallback feed.FeedLoader) *FeedLoaderWithFallbackComposite {
	return &FeedLoaderWithFallbackComposite{primary: primary, fallback: fallback}
}

func (c *FeedLoaderWithFallbackComposite) Load(ctx context.Context) ([]models.FeedImage, error) {
	images, err := c.primary.Load(ctx)
	if err == nil {
		return images, nil
	}

	fallbacks.WithLabelValues("feed").Inc()
	log.WithFields(log.Fields{
		"error": err,
	}).Info("Primary feed loader failed, using fallback")
	return c.fallback.Load(ctx)
}

// FeedImageDataLoaderWithFallbackComposite is the image data counterpart of
// FeedLoaderWithFallbackComposite.
type FeedImageDataLoaderWithFallbackComposite struct {
	primary  feed.FeedImageDataLoader
	fallback feed.FeedImageDataLoader
}

func NewFeedImageDataLoaderWithFallbackComposite(primary, fallback feed.FeedImageDataLoader) *FeedImageDataLoaderWithFallbackComposite {
	return &FeedImageDataLoaderWithFallbackComposite{primary: primary, fallback: fallback}
}

func (c *FeedImageDataLoaderWithFallbackComposite) LoadImageData(ctx context.Context, url *url.URL) ([]byte, error) {
	data, err := c.primary.LoadImageData(ctx, url)
	if err == nil {
		return data, nil
	}

	fallbacks.WithLabelValues("image").Inc()
	log.WithFields(log.Fields{
		"url":   url.String(),
		"error": err,
	}).Debug("Primary image data loader failed, using fallback")
	return c.fallback.LoadImageData(ctx, url)
}

var _ feed.FeedLoader = (*FeedLoaderWithFallbackComposite)(nil)
var _ feed.FeedImageDataLoader = (*FeedImageDataLoaderWithFallbackComposite)(nil)
