/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/cqroot/prompt"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"essentialfeed/config"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a configuration file interactively",
		Description: `Asks for the remote feed URL, the database location and the server
port and writes them to a TOML configuration file. Everything else is
set to its default.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "essentialfeed.toml",
				Usage:   "Where to write the configuration file",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := config.Default()

			feedURL, err := prompt.New().Ask("Feed URL:").Input(cfg.Remote.FeedURL)
			if err != nil {
				return err
			}
			database, err := prompt.New().Ask("Database file:").Input(cfg.Cache.Database)
			if err != nil {
				return err
			}
			port, err := prompt.New().Ask("Server port:").Input(strconv.Itoa(cfg.Server.Port))
			if err != nil {
				return err
			}

			cfg.Remote.FeedURL = feedURL
			cfg.Cache.Database = database
			if cfg.Server.Port, err = strconv.Atoi(port); err != nil {
				return fmt.Errorf("invalid port %q: %w", port, err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.WriteConfig(ctx.String("output"), cfg); err != nil {
				return err
			}
			log.Infof("Wrote configuration to %s", ctx.String("output"))
			return nil
		},
	}
}
