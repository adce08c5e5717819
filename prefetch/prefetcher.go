// Package prefetch warms the image data cache for a whole feed with a pool of workers
package prefetch

import (
	"context"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/models"
)

// Result counts the outcome of a prefetch run
type Result struct {
	Loaded int64
	Failed int64
}

type Prefetcher struct {
	maxWorkers int
	loader     feed.FeedImageDataLoader
}

// New returns a prefetcher loading through loader, typically the composed
// image data loader so every fetched image ends up cached.
func New(loader feed.FeedImageDataLoader, maxWorkers int) *Prefetcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Prefetcher{maxWorkers: maxWorkers, loader: loader}
}

// Prefetch loads the image data of every image and waits for all of them.
// A failed image is counted and does not stop the others.
func (p *Prefetcher) Prefetch(ctx context.Context, images []models.FeedImage) Result {
	workerQueue := make(chan models.FeedImage)
	var (
		wg     sync.WaitGroup
		loaded atomic.Int64
		failed atomic.Int64
	)

	for i := 0; i < p.maxWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for image := range workerQueue {
				if _, err := p.loader.LoadImageData(ctx, image.URL); err != nil {
					failed.Add(1)
					log.WithFields(log.Fields{
						"worker": id,
						"url":    image.URL.String(),
						"error":  err,
					}).Warn("Error prefetching image data")
					continue
				}
				loaded.Add(1)
			}
		}(i)
	}

enqueue:
	for _, image := range images {
		select {
		case <-ctx.Done():
			break enqueue
		case workerQueue <- image:
		}
	}
	close(workerQueue)
	wg.Wait()

	result := Result{Loaded: loaded.Load(), Failed: failed.Load()}
	log.WithFields(log.Fields{
		"loaded": result.Loaded,
		"failed": result.Failed,
	}).Info("Prefetched image data")
	return result
}
