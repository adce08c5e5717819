// Package composer wires loaders, caches and their decorators together
package composer

import (
	"essentialfeed/feed"
)

// FeedLoaderCache is a local feed that can be both read and written,
// such as cache.LocalFeedLoader
type FeedLoaderCache interface {
	feed.FeedLoader
	feed.FeedCache
}

// FeedImageDataLoaderCache is the image data counterpart of FeedLoaderCache
type FeedImageDataLoaderCache interface {
	feed.FeedImageDataLoader
	feed.FeedImageDataCache
}

// Loaders holds the composed loaders the app reads from
type Loaders struct {
	Feed      feed.FeedLoader
	ImageData feed.FeedImageDataLoader
}

// Compose reads the feed remotely and caches it, falling back to the local
// copy when the remote fails. Images are read locally first and fetched
// remotely on a miss.
func Compose(remoteFeed feed.FeedLoader, localFeed FeedLoaderCache, remoteImages feed.FeedImageDataLoader, localImages FeedImageDataLoaderCache) Loaders {
	return Loaders{
		Feed: NewFeedLoaderWithFallbackComposite(
			NewFeedLoaderCacheDecorator(remoteFeed, localFeed),
			localFeed,
		),
		ImageData: NewFeedImageDataLoaderWithFallbackComposite(
			localImages,
			NewFeedImageDataLoaderCacheDecorator(remoteImages, localImages),
		),
	}
}
