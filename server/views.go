package server

import (
	"sync"

	"github.com/samber/lo"

	"essentialfeed/imaging"
	"essentialfeed/models"
	"essentialfeed/presentation"
)

type feedImageResponse struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	URL         string  `json:"url"`
	HasLocation bool    `json:"has_location"`
}

type feedResponse struct {
	Title   string              `json:"title"`
	Loading bool                `json:"loading"`
	Error   *string             `json:"error"`
	Feed    []feedImageResponse `json:"feed"`
}

// feedJSONView collects everything the feed presenter displays into a
// single response
type feedJSONView struct {
	mu       sync.Mutex
	response feedResponse
}

func newFeedJSONView() *feedJSONView {
	return &feedJSONView{response: feedResponse{
		Title: presentation.Title(),
		Feed:  []feedImageResponse{},
	}}
}

func (v *feedJSONView) DisplayFeed(model presentation.FeedViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.response.Feed = lo.Map(model.Feed, func(image models.FeedImage, _ int) feedImageResponse {
		return feedImageResponse{
			ID:          image.ID.String(),
			Description: image.Description,
			Location:    image.Location,
			URL:         image.URL.String(),
			HasLocation: image.Location != nil,
		}
	})
}

func (v *feedJSONView) DisplayLoading(model presentation.FeedLoadingViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.response.Loading = model.IsLoading
}

func (v *feedJSONView) DisplayError(model presentation.FeedErrorViewModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.response.Error = model.Message
}

type imageResponse struct {
	Description *string            `json:"description"`
	Location    *string            `json:"location"`
	HasLocation bool               `json:"has_location"`
	Loading     bool               `json:"loading"`
	ShouldRetry bool               `json:"should_retry"`
	Image       *imaging.ImageInfo `json:"image"`
}

// imageJSONView keeps the last view model it was shown
type imageJSONView struct {
	mu   sync.Mutex
	last presentation.FeedImageViewModel[imaging.ImageInfo]
}

func (v *imageJSONView) Display(model presentation.FeedImageViewModel[imaging.ImageInfo]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = model
}

func (v *imageJSONView) response() imageResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	return imageResponse{
		Description: v.last.Description,
		Location:    v.last.Location,
		HasLocation: v.last.HasLocation(),
		Loading:     v.last.IsLoading,
		ShouldRetry: v.last.ShouldRetry,
		Image:       v.last.Image,
	}
}
