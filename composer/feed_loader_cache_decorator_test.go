package composer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"essentialfeed/composer"
	"essentialfeed/feedtest"
	"essentialfeed/models"
)

func TestFeedLoaderCacheDecorator_DeliversFeedOnLoaderSuccess(t *testing.T) {
	feed, _ := feedtest.UniqueImageFeed()
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{feed: feed}, &feedCacheSpy{})

	got, err := sut.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, feed, got)
}

func TestFeedLoaderCacheDecorator_DeliversErrorOnLoaderFailure(t *testing.T) {
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{err: feedtest.AnyError()}, &feedCacheSpy{})

	got, err := sut.Load(context.Background())

	assert.ErrorIs(t, err, feedtest.AnyError())
	assert.Nil(t, got)
}

func TestFeedLoaderCacheDecorator_DoesNotCacheOnLoaderFailure(t *testing.T) {
	cache := &feedCacheSpy{}
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{err: feedtest.AnyError()}, cache)

	_, _ = sut.Load(context.Background())

	assert.Empty(t, cache.messages, "Expected not to cache feed on load error")
}

func TestFeedLoaderCacheDecorator_CachesLoadedFeedOnLoaderSuccess(t *testing.T) {
	cache := &feedCacheSpy{}
	feed, _ := feedtest.UniqueImageFeed()
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{feed: feed}, cache)

	_, _ = sut.Load(context.Background())

	assert.Equal(t, [][]models.FeedImage{feed}, cache.messages, "Expected to cache loaded feed on success")
}

func TestFeedLoaderCacheDecorator_IgnoresCacheFailure(t *testing.T) {
	cache := &feedCacheSpy{err: errors.New("disk full")}
	feed, _ := feedtest.UniqueImageFeed()
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{feed: feed}, cache)

	got, err := sut.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, feed, got)
	assert.Len(t, cache.messages, 1)
}

func TestFeedLoaderCacheDecorator_CachesEmptyFeed(t *testing.T) {
	cache := &feedCacheSpy{}
	sut := composer.NewFeedLoaderCacheDecorator(&feedLoaderStub{feed: []models.FeedImage{}}, cache)

	got, err := sut.Load(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, cache.messages, 1)
}
