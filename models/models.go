package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// FeedImage is a single entry of the image feed as seen by the domain
type FeedImage struct {
	ID          uuid.UUID
	Description *string
	Location    *string
	URL         *url.URL
}

// LocalFeedImage is the cache representation of a FeedImage
type LocalFeedImage struct {
	ID          uuid.UUID
	Description *string
	Location    *string
	URL         *url.URL
}

// CachedFeed is what a feed store hands back on retrieval
type CachedFeed struct {
	Feed      []LocalFeedImage
	Timestamp time.Time
}

// ToLocal maps domain images to their cache representation
func ToLocal(feed []FeedImage) []LocalFeedImage {
	local := make([]LocalFeedImage, len(feed))
	for i, image := range feed {
		local[i] = LocalFeedImage(image)
	}
	return local
}

// ToModels maps cached images back to domain images
func ToModels(local []LocalFeedImage) []FeedImage {
	feed := make([]FeedImage, len(local))
	for i, image := range local {
		feed[i] = FeedImage(image)
	}
	return feed
}
