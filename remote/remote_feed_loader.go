// Package remote loads the feed and its images over HTTP
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/models"
)

var (
	ErrConnectivity = errors.New("connectivity error")
	ErrInvalidData  = errors.New("invalid data")
)

var remoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "essentialfeed_remote_requests_total",
	Help: "The total number of remote loads by loader and outcome",
}, []string{"loader", "outcome"})

// RemoteFeedLoader loads the feed from a JSON endpoint
type RemoteFeedLoader struct {
	url    *url.URL
	client HTTPClient
}

func NewRemoteFeedLoader(url *url.URL, client HTTPClient) *RemoteFeedLoader {
	return &RemoteFeedLoader{url: url, client: client}
}

type remoteFeedItem struct {
	ID          uuid.UUID `json:"id"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Image       string    `json:"image"`
}

type remoteFeed struct {
	Items []remoteFeedItem `json:"items"`
}

func (l *RemoteFeedLoader) Load(ctx context.Context) ([]models.FeedImage, error) {
	resp, err := l.client.Get(ctx, l.url)
	if err != nil {
		remoteRequests.WithLabelValues("feed", "connectivity").Inc()
		log.WithFields(log.Fields{
			"url":   l.url.String(),
			"error": err,
		}).Error("Error loading remote feed")
		return nil, ErrConnectivity
	}

	images, err := mapFeed(resp)
	if err != nil {
		remoteRequests.WithLabelValues("feed", "invalid").Inc()
		log.WithFields(log.Fields{
			"url":    l.url.String(),
			"status": resp.StatusCode,
		}).Error("Remote feed returned invalid data")
		return nil, err
	}

	remoteRequests.WithLabelValues("feed", "success").Inc()
	return images, nil
}

func mapFeed(resp *Response) ([]models.FeedImage, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidData
	}

	// A missing items key is not a valid feed, an empty one is
	var root struct {
		Items *[]remoteFeedItem `json:"items"`
	}
	if err := json.Unmarshal(resp.Body, &root); err != nil || root.Items == nil {
		return nil, ErrInvalidData
	}

	images := make([]models.FeedImage, 0, len(*root.Items))
	for _, item := range *root.Items {
		u, err := url.Parse(item.Image)
		if err != nil || !u.IsAbs() {
			return nil, ErrInvalidData
		}
		images = append(images, models.FeedImage{
			ID:          item.ID,
			Description: item.Description,
			Location:    item.Location,
			URL:         u,
		})
	}

	return images, nil
}

// EncodeFeed renders images in the wire format the remote loader reads
func EncodeFeed(images []models.FeedImage) ([]byte, error) {
	return json.Marshal(remoteFeed{
		Items: lo.Map(images, func(image models.FeedImage, _ int) remoteFeedItem {
			return remoteFeedItem{
				ID:          image.ID,
				Description: image.Description,
				Location:    image.Location,
				Image:       image.URL.String(),
			}
		}),
	})
}

var _ feed.FeedLoader = (*RemoteFeedLoader)(nil)
