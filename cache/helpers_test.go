package cache_test

import (
	"context"
	"net/url"
	"time"

	"essentialfeed/models"
)

type storeMessage struct {
	kind      string
	feed      []models.LocalFeedImage
	timestamp time.Time
}

func deleteMessage() storeMessage   { return storeMessage{kind: "delete"} }
func retrieveMessage() storeMessage { return storeMessage{kind: "retrieve"} }
func insertMessage(feed []models.LocalFeedImage, timestamp time.Time) storeMessage {
	return storeMessage{kind: "insert", feed: feed, timestamp: timestamp}
}

type feedStoreSpy struct {
	messages    []storeMessage
	deleteErr   error
	insertErr   error
	retrieveErr error
	cached      *models.CachedFeed
}

func (s *feedStoreSpy) DeleteCachedFeed(ctx context.Context) error {
	s.messages = append(s.messages, deleteMessage())
	return s.deleteErr
}

func (s *feedStoreSpy) InsertFeed(ctx context.Context, feed []models.LocalFeedImage, timestamp time.Time) error {
	s.messages = append(s.messages, insertMessage(feed, timestamp))
	return s.insertErr
}

func (s *feedStoreSpy) RetrieveFeed(ctx context.Context) (*models.CachedFeed, error) {
	s.messages = append(s.messages, retrieveMessage())
	return s.cached, s.retrieveErr
}

type imageDataStoreSpy struct {
	inserted    map[string][]byte
	stored      []byte
	insertErr   error
	retrieveErr error
}

func (s *imageDataStoreSpy) InsertImageData(ctx context.Context, data []byte, u *url.URL) error {
	if s.inserted == nil {
		s.inserted = map[string][]byte{}
	}
	s.inserted[u.String()] = data
	return s.insertErr
}

func (s *imageDataStoreSpy) RetrieveImageData(ctx context.Context, u *url.URL) ([]byte, error) {
	return s.stored, s.retrieveErr
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}
