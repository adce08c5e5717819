package cmd

import (
	"github.com/urfave/cli/v2"

	"essentialfeed/config"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the TOML configuration file",
		EnvVars: []string{"ESSENTIALFEED_CONFIG"},
	}
}

func databaseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "database",
		Aliases: []string{"d"},
		Usage:   "SQLite database file location, overrides the config file",
		EnvVars: []string{"ESSENTIALFEED_DATABASE"},
	}
}

func feedURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "feed-url",
		Usage:   "URL of the remote feed, overrides the config file",
		EnvVars: []string{"ESSENTIALFEED_FEED_URL"},
	}
}

// loadConfig reads the config file and applies any flags set on the command line
func loadConfig(ctx *cli.Context) (*config.TomlConfig, error) {
	cfg, err := config.LoadConfig(ctx.String("config"))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("database") {
		cfg.Cache.Database = ctx.String("database")
	}
	if ctx.IsSet("feed-url") {
		cfg.Remote.FeedURL = ctx.String("feed-url")
	}
	if ctx.IsSet("port") {
		cfg.Server.Port = ctx.Int("port")
	}

	return cfg, cfg.Validate()
}
