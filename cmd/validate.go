/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"essentialfeed/cache"
	"essentialfeed/db"
)

func validateCacheCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate-cache",
		Usage: "Delete the cached feed if it is expired",
		Description: `Checks the cached feed against the cache policy.

		Removes the cached feed when it is older than the configured maximum
		age, or when it can't be read. Can be run as a cron job.`,
		Flags: []cli.Flag{
			configFlag(),
			databaseFlag(),
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			log.Infof("Database configured: %s", cfg.Cache.Database)

			if err := db.Migrate(cfg.Cache.Database); err != nil {
				return err
			}
			store, err := db.Open(cfg.Cache.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			local := cache.NewLocalFeedLoader(store, time.Now).
				WithPolicy(cache.CachePolicy{MaxAgeInDays: cfg.Cache.MaxAgeInDays})
			return local.ValidateCache(ctx.Context)
		},
	}
}
