// Package feed holds the capabilities the rest of the client is written against
package feed

import (
	"context"
	"net/url"

	"essentialfeed/models"
)

// FeedLoader loads the image feed from wherever it lives
type FeedLoader interface {
	Load(ctx context.Context) ([]models.FeedImage, error)
}

// FeedCache persists a feed for later use
type FeedCache interface {
	Save(ctx context.Context, feed []models.FeedImage) error
}

// FeedImageDataLoader loads the raw bytes of a single image
type FeedImageDataLoader interface {
	LoadImageData(ctx context.Context, url *url.URL) ([]byte, error)
}

// FeedImageDataCache persists raw image bytes keyed by their URL
type FeedImageDataCache interface {
	SaveImageData(ctx context.Context, data []byte, url *url.URL) error
}

// FeedLoaderFunc adapts a plain function to FeedLoader
type FeedLoaderFunc func(ctx context.Context) ([]models.FeedImage, error)

func (f FeedLoaderFunc) Load(ctx context.Context) ([]models.FeedImage, error) {
	return f(ctx)
}

// FeedImageDataLoaderFunc adapts a plain function to FeedImageDataLoader
type FeedImageDataLoaderFunc func(ctx context.Context, url *url.URL) ([]byte, error)

func (f FeedImageDataLoaderFunc) LoadImageData(ctx context.Context, url *url.URL) ([]byte, error) {
	return f(ctx, url)
}
