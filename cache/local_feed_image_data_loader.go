package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"essentialfeed/feed"
)

var (
	ErrFailed   = errors.New("image data store failed")
	ErrNotFound = errors.New("image data not found")
)

type LocalFeedImageDataLoader struct {
	store FeedImageDataStore
}

func NewLocalFeedImageDataLoader(store FeedImageDataStore) *LocalFeedImageDataLoader {
	return &LocalFeedImageDataLoader{store: store}
}

func (l *LocalFeedImageDataLoader) LoadImageData(ctx context.Context, u *url.URL) ([]byte, error) {
	data, err := l.store.RetrieveImageData(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return data, nil
}

func (l *LocalFeedImageDataLoader) SaveImageData(ctx context.Context, data []byte, u *url.URL) error {
	if err := l.store.InsertImageData(ctx, data, u); err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return nil
}

var _ feed.FeedImageDataLoader = (*LocalFeedImageDataLoader)(nil)
var _ feed.FeedImageDataCache = (*LocalFeedImageDataLoader)(nil)
