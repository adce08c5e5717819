package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Response is the part of an HTTP response the loaders care about
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPClient performs GET requests
type HTTPClient interface {
	Get(ctx context.Context, url *url.URL) (*Response, error)
}

// ClientConfig holds the retry and timeout settings of the HTTP client
type ClientConfig struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	UserAgent       string
}

// DefaultClientConfig returns the settings used when nothing is configured
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		UserAgent:       "essentialfeed",
	}
}

type httpClient struct {
	client *http.Client
	config ClientConfig
}

// NewHTTPClient wraps an *http.Client. Transport errors are retried with
// exponential backoff; a response with any status code is never retried.
func NewHTTPClient(client *http.Client, config ClientConfig) HTTPClient {
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	return &httpClient{client: client, config: config}
}

func (c *httpClient) Get(ctx context.Context, u *url.URL) (*Response, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.InitialInterval
	b.MaxInterval = c.config.MaxInterval
	b.MaxElapsedTime = 0

	var response *Response
	attempt := 0
	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		if c.config.UserAgent != "" {
			req.Header.Set("User-Agent", c.config.UserAgent)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			log.WithFields(log.Fields{
				"url":     u.String(),
				"attempt": attempt,
				"error":   err,
			}).Warn("Request failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		response = &Response{StatusCode: resp.StatusCode, Body: body}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, c.config.MaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return response, nil
}
