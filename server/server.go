package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"essentialfeed/feed"
	"essentialfeed/imaging"
	"essentialfeed/models"
	"essentialfeed/presentation"
)

var errImageNotInFeed = errors.New("image not in feed")

type ServerConfig struct {
	// Loads the feed, usually the composed remote and cache chain
	FeedLoader feed.FeedLoader

	// Loads image bytes for a feed image URL
	ImageDataLoader feed.FeedImageDataLoader

	// Turns image bytes into the image shown by the image view
	Transformer presentation.ImageTransformer[imaging.ImageInfo]

	// Upper bound for a single load triggered by a request
	LoadTimeout time.Duration

	// Minimum time between feed reloads caused by unknown image ids
	ReloadInterval time.Duration
}

// feedIndex remembers the images of the last loaded feed by id
type feedIndex struct {
	sync.RWMutex
	images     map[uuid.UUID]models.FeedImage
	reloadedAt time.Time
}

func (i *feedIndex) replace(images []models.FeedImage) {
	i.Lock()
	defer i.Unlock()
	i.images = make(map[uuid.UUID]models.FeedImage, len(images))
	for _, image := range images {
		i.images[image.ID] = image
	}
}

func (i *feedIndex) get(id uuid.UUID) (models.FeedImage, bool) {
	i.RLock()
	defer i.RUnlock()
	image, ok := i.images[id]
	return image, ok
}

// claimReload reports whether a reload may run now and records the attempt
func (i *feedIndex) claimReload(interval time.Duration) bool {
	i.Lock()
	defer i.Unlock()
	if !i.reloadedAt.IsZero() && time.Since(i.reloadedAt) < interval {
		return false
	}
	i.reloadedAt = time.Now()
	return true
}

// Returns a fiber.App instance serving the feed view models as JSON
func Server(config *ServerConfig) *fiber.App {
	if config.Transformer == nil {
		config.Transformer = imaging.Transform
	}
	if config.LoadTimeout == 0 {
		config.LoadTimeout = 30 * time.Second
	}
	if config.ReloadInterval == 0 {
		config.ReloadInterval = time.Minute
	}

	index := &feedIndex{}

	// loadFeed runs one feed load through the presenter and indexes the result
	loadFeed := func(ctx context.Context) *feedJSONView {
		view := newFeedJSONView()
		presenter := presentation.NewFeedPresenter(view, view, view)

		presenter.DidStartLoadingFeed()
		images, err := config.FeedLoader.Load(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error loading feed")
			presenter.DidFinishLoadingFeedWithError(err)
			return view
		}

		index.replace(images)
		presenter.DidFinishLoadingFeed(images)
		return view
	}

	findImage := func(ctx context.Context, id uuid.UUID) (models.FeedImage, error) {
		if image, ok := index.get(id); ok {
			return image, nil
		}
		// Unknown ids trigger a reload in case the feed changed, at most once per interval
		if !index.claimReload(config.ReloadInterval) {
			return models.FeedImage{}, errImageNotInFeed
		}
		loadFeed(ctx)
		if image, ok := index.get(id); ok {
			return image, nil
		}
		return models.FeedImage{}, errImageNotInFeed
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/feed", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), config.LoadTimeout)
		defer cancel()

		view := loadFeed(ctx)
		view.mu.Lock()
		defer view.mu.Unlock()
		if view.response.Error != nil {
			return c.Status(fiber.StatusBadGateway).JSON(view.response)
		}
		return c.JSON(view.response)
	})

	app.Get("/feed/:id/image", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid image id")
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), config.LoadTimeout)
		defer cancel()

		model, err := findImage(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Image not found")
		}

		view := &imageJSONView{}
		presenter := presentation.NewFeedImagePresenter[imaging.ImageInfo](view, config.Transformer)

		presenter.DidStartLoadingImageData(model)
		data, err := config.ImageDataLoader.LoadImageData(ctx, model.URL)
		if err != nil {
			log.WithFields(log.Fields{
				"id":    id.String(),
				"url":   model.URL.String(),
				"error": err,
			}).Warn("Error loading image data")
			presenter.DidFinishLoadingImageDataWithError(err, model)
		} else {
			presenter.DidFinishLoadingImageData(data, model)
		}

		return c.JSON(view.response())
	})

	app.Get("/feed/:id/image/data", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid image id")
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), config.LoadTimeout)
		defer cancel()

		model, err := findImage(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Image not found")
		}

		data, err := config.ImageDataLoader.LoadImageData(ctx, model.URL)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).SendString("Error loading image data")
		}

		c.Set(fiber.HeaderContentType, mimetype.Detect(data).String())
		return c.Send(data)
	})

	return app
}
