package cmd

import (
	"fmt"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"essentialfeed/cache"
	"essentialfeed/composer"
	"essentialfeed/config"
	"essentialfeed/db"
	"essentialfeed/remote"
)

// app is the fully wired client: composed loaders on top of the store
type app struct {
	store   *db.Store
	local   *cache.LocalFeedLoader
	loaders composer.Loaders
}

func newApp(cfg *config.TomlConfig) (*app, error) {
	feedURL, err := url.Parse(cfg.Remote.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}

	if err := db.Migrate(cfg.Cache.Database); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	store, err := db.Open(cfg.Cache.Database)
	if err != nil {
		return nil, err
	}

	clientCfg := remote.DefaultClientConfig()
	clientCfg.Timeout = cfg.Remote.Timeout.Duration
	clientCfg.MaxRetries = cfg.Remote.MaxRetries
	clientCfg.UserAgent = cfg.Remote.UserAgent
	client := remote.NewHTTPClient(nil, clientCfg)

	local := cache.NewLocalFeedLoader(store, time.Now).
		WithPolicy(cache.CachePolicy{MaxAgeInDays: cfg.Cache.MaxAgeInDays})
	localImages := cache.NewLocalFeedImageDataLoader(store)

	log.WithFields(log.Fields{
		"feed_url": feedURL.String(),
		"database": cfg.Cache.Database,
		"max_age":  cfg.Cache.MaxAgeInDays,
	}).Info("Composed feed client")

	return &app{
		store: store,
		local: local,
		loaders: composer.Compose(
			remote.NewRemoteFeedLoader(feedURL, client),
			local,
			remote.NewRemoteFeedImageDataLoader(client),
			localImages,
		),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
