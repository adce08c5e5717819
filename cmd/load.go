/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"essentialfeed/models"
	"essentialfeed/prefetch"
)

type feedLine struct {
	ID          string  `json:"id"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	URL         string  `json:"url"`
}

func loadCmd() *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Load the feed once and print it",
		Description: `Loads the feed through the same remote, cache and fallback chain
the server uses and prints it to the command line.

Returns each image as a JSON object on a single line. Use a tool like jq to
process the output.

Prints all other log messages to stderr.`,
		Flags: []cli.Flag{
			configFlag(),
			databaseFlag(),
			feedURLFlag(),
			&cli.BoolFlag{
				Name:    "prefetch-images",
				Usage:   "Also download and cache the image data of every image",
				EnvVars: []string{"ESSENTIALFEED_PREFETCH_IMAGES"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   4,
				Usage:   "Number of concurrent image downloads when prefetching",
				EnvVars: []string{"ESSENTIALFEED_WORKERS"},
			},
		},
		Action: func(ctx *cli.Context) error {
			// Keep stdout for the feed
			log.SetOutput(os.Stderr)

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			images, err := a.loaders.Feed.Load(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load feed: %w", err)
			}

			if err := printFeed(os.Stdout, images); err != nil {
				return err
			}

			if ctx.Bool("prefetch-images") {
				result := prefetch.New(a.loaders.ImageData, ctx.Int("workers")).Prefetch(ctx.Context, images)
				return checkPrefetch(result, len(images))
			}
			return nil
		},
	}
}

// checkPrefetch fails unless every image was tried and loaded
func checkPrefetch(result prefetch.Result, total int) error {
	if skipped := int64(total) - result.Loaded - result.Failed; skipped > 0 {
		return fmt.Errorf("prefetch interrupted: %d of %d images not tried, %d failed", skipped, total, result.Failed)
	}
	if result.Failed > 0 {
		return fmt.Errorf("failed to prefetch %d of %d images", result.Failed, total)
	}
	return nil
}

func printFeed(w io.Writer, images []models.FeedImage) error {
	enc := json.NewEncoder(w)
	for _, image := range images {
		if err := enc.Encode(feedLine{
			ID:          image.ID.String(),
			Description: image.Description,
			Location:    image.Location,
			URL:         image.URL.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}
