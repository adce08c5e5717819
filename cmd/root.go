/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "essentialfeed",
		Usage: "An image feed client with a local cache",
		Description: `Loads an image feed from a remote JSON endpoint and keeps a local
		copy in an SQLite database.

		When the remote feed can't be reached the cached copy is served
		instead, for as long as the cache is fresh. The feed and its images are
		exposed as presentation view models over an HTTP API.

		Flags can generally be set via environment variables, e.g.:

		--database => ESSENTIALFEED_DATABASE=feed.db
		--port => ESSENTIALFEED_PORT=3000
		`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ESSENTIALFEED_LOG_LEVEL"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level, err := log.ParseLevel(ctx.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			loadCmd(),
			migrateCmd(),
			rollbackCmd(),
			validateCacheCmd(),
			initCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
