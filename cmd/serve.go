/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"essentialfeed/imaging"
	"essentialfeed/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the feed view models over HTTP",
		Description: `Starts the HTTP server on the configured or default port.

The feed is loaded from the remote endpoint on every request to /feed and
cached in the SQLite database. When the remote fails the cached feed is served
while it is still fresh.`,
		Flags: []cli.Flag{
			configFlag(),
			databaseFlag(),
			feedURLFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on, overrides the config file",
				EnvVars: []string{"ESSENTIALFEED_PORT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			// Drop an expired cache before serving from it
			if err := a.local.ValidateCache(ctx.Context); err != nil {
				log.Errorf("Error validating cache: %v", err)
			}

			app := server.Server(&server.ServerConfig{
				FeedLoader:      a.loaders.Feed,
				ImageDataLoader: a.loaders.ImageData,
				Transformer:     imaging.Transform,
				LoadTimeout:     cfg.Remote.Timeout.Duration * 2,
			})

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-c
				log.Info("Gracefully shutting down...")
				if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
					log.Errorf("Error shutting down server: %v", err)
				}
			}()

			log.Infof("Starting server on port %d", cfg.Server.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
		},
	}
}
