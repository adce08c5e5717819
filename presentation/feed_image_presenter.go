package presentation

import (
	"errors"

	"essentialfeed/models"
)

// FeedImageViewModel is the presentation state of a single feed image
type FeedImageViewModel[Image any] struct {
	Description *string
	Location    *string
	Image       *Image
	IsLoading   bool
	ShouldRetry bool
}

func (vm FeedImageViewModel[Image]) HasLocation() bool {
	return vm.Location != nil
}

// FeedImageView receives every view model the presenter produces
type FeedImageView[Image any] interface {
	Display(model FeedImageViewModel[Image])
}

// ImageTransformer turns raw bytes into an image, or nil if the bytes are not one
type ImageTransformer[Image any] func(data []byte) *Image

var errInvalidImageData = errors.New("invalid image data")

// FeedImagePresenter maps the lifecycle of an image data load onto a view.
// Each call produces exactly one view model.
type FeedImagePresenter[Image comparable] struct {
	view        FeedImageView[Image]
	transformer ImageTransformer[Image]
}

func NewFeedImagePresenter[Image comparable](view FeedImageView[Image], transformer ImageTransformer[Image]) *FeedImagePresenter[Image] {
	return &FeedImagePresenter[Image]{view: view, transformer: transformer}
}

func (p *FeedImagePresenter[Image]) DidStartLoadingImageData(model models.FeedImage) {
	p.view.Display(FeedImageViewModel[Image]{
		Description: model.Description,
		Location:    model.Location,
		IsLoading:   true,
		ShouldRetry: false,
	})
}

// DidFinishLoadingImageDataWithError shows the retry state. The error itself
// never reaches the view.
func (p *FeedImagePresenter[Image]) DidFinishLoadingImageDataWithError(err error, model models.FeedImage) {
	p.view.Display(FeedImageViewModel[Image]{
		Description: model.Description,
		Location:    model.Location,
		IsLoading:   false,
		ShouldRetry: true,
	})
}

func (p *FeedImagePresenter[Image]) DidFinishLoadingImageData(data []byte, model models.FeedImage) {
	image := p.transformer(data)
	if image == nil {
		p.DidFinishLoadingImageDataWithError(errInvalidImageData, model)
		return
	}

	p.view.Display(FeedImageViewModel[Image]{
		Description: model.Description,
		Location:    model.Location,
		Image:       image,
		IsLoading:   false,
		ShouldRetry: false,
	})
}
