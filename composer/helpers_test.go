package composer_test

import (
	"context"
	"net/url"
	"sync"

	"essentialfeed/models"
)

type feedLoaderStub struct {
	feed []models.FeedImage
	err  error
}

func (s *feedLoaderStub) Load(ctx context.Context) ([]models.FeedImage, error) {
	return s.feed, s.err
}

type feedCacheSpy struct {
	mu       sync.Mutex
	messages [][]models.FeedImage
	err      error
}

func (s *feedCacheSpy) Save(ctx context.Context, feed []models.FeedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, feed)
	return s.err
}

type imageDataLoaderStub struct {
	data     []byte
	err      error
	requests []*url.URL
}

func (s *imageDataLoaderStub) LoadImageData(ctx context.Context, url *url.URL) ([]byte, error) {
	s.requests = append(s.requests, url)
	return s.data, s.err
}

type imageDataSave struct {
	data []byte
	url  *url.URL
}

type imageDataCacheSpy struct {
	mu       sync.Mutex
	messages []imageDataSave
	err      error
}

func (s *imageDataCacheSpy) SaveImageData(ctx context.Context, data []byte, url *url.URL) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, imageDataSave{data: data, url: url})
	return s.err
}
