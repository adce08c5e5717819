package remote

import (
	"context"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
)

// RemoteFeedImageDataLoader downloads image bytes
type RemoteFeedImageDataLoader struct {
	client HTTPClient
}

func NewRemoteFeedImageDataLoader(client HTTPClient) *RemoteFeedImageDataLoader {
	return &RemoteFeedImageDataLoader{client: client}
}

func (l *RemoteFeedImageDataLoader) LoadImageData(ctx context.Context, u *url.URL) ([]byte, error) {
	resp, err := l.client.Get(ctx, u)
	if err != nil {
		remoteRequests.WithLabelValues("image", "connectivity").Inc()
		log.WithFields(log.Fields{
			"url":   u.String(),
			"error": err,
		}).Warn("Error loading remote image data")
		return nil, ErrConnectivity
	}

	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		remoteRequests.WithLabelValues("image", "invalid").Inc()
		return nil, ErrInvalidData
	}

	remoteRequests.WithLabelValues("image", "success").Inc()
	return resp.Body, nil
}

var _ feed.FeedImageDataLoader = (*RemoteFeedImageDataLoader)(nil)
