// Package feedtest has fixtures shared by the test suites of the other packages
package feedtest

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"

	"essentialfeed/models"
)

var errAny = errors.New("any error")

// AnyError returns the same generic error on every call so results compare equal
func AnyError() error {
	return errAny
}

func AnyURL() *url.URL {
	u, _ := url.Parse("http://any-url.com")
	return u
}

func AnyData() []byte {
	return []byte("any data")
}

func UniqueFeedImage() models.FeedImage {
	return models.FeedImage{ID: uuid.New(), URL: AnyURL()}
}

// UniqueImageFeed returns two unique images in both their domain and cache representation
func UniqueImageFeed() ([]models.FeedImage, []models.LocalFeedImage) {
	feed := []models.FeedImage{UniqueFeedImage(), UniqueFeedImage()}
	return feed, models.ToLocal(feed)
}

// MinusFeedCacheMaxAge moves t back by the default cache retention of seven days
func MinusFeedCacheMaxAge(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

func Ptr[T any](v T) *T {
	return &v
}
