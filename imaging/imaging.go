// Package imaging turns raw image bytes into the image representation the
// presenters hand to views.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

// ImageInfo describes a decodable image without holding its pixels
type ImageInfo struct {
	MIME   string `json:"mime"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Transform returns nil when data is not an image in a registered format
func Transform(data []byte) *ImageInfo {
	if len(data) == 0 {
		return nil
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.WithFields(log.Fields{
			"mime":  mime.String(),
			"error": err,
		}).Debug("Could not decode image data")
		return nil
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil
	}

	return &ImageInfo{
		MIME:   "image/" + format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
