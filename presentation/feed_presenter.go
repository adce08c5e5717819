// Package presentation turns loader events into view models
package presentation

import (
	"essentialfeed/models"
)

const (
	feedTitle            = "My Feed"
	feedLoadErrorMessage = "Couldn't connect to server"
)

type FeedViewModel struct {
	Feed []models.FeedImage
}

type FeedLoadingViewModel struct {
	IsLoading bool
}

type FeedErrorViewModel struct {
	Message *string
}

type FeedView interface {
	DisplayFeed(model FeedViewModel)
}

type FeedLoadingView interface {
	DisplayLoading(model FeedLoadingViewModel)
}

type FeedErrorView interface {
	DisplayError(model FeedErrorViewModel)
}

// FeedPresenter drives the feed, loading and error views through one feed load
type FeedPresenter struct {
	feedView    FeedView
	loadingView FeedLoadingView
	errorView   FeedErrorView
}

func NewFeedPresenter(feedView FeedView, loadingView FeedLoadingView, errorView FeedErrorView) *FeedPresenter {
	return &FeedPresenter{
		feedView:    feedView,
		loadingView: loadingView,
		errorView:   errorView,
	}
}

// Title is the title shown above the feed
func Title() string {
	return feedTitle
}

func (p *FeedPresenter) DidStartLoadingFeed() {
	p.errorView.DisplayError(FeedErrorViewModel{})
	p.loadingView.DisplayLoading(FeedLoadingViewModel{IsLoading: true})
}

func (p *FeedPresenter) DidFinishLoadingFeed(feed []models.FeedImage) {
	p.feedView.DisplayFeed(FeedViewModel{Feed: feed})
	p.loadingView.DisplayLoading(FeedLoadingViewModel{IsLoading: false})
}

func (p *FeedPresenter) DidFinishLoadingFeedWithError(err error) {
	message := feedLoadErrorMessage
	p.errorView.DisplayError(FeedErrorViewModel{Message: &message})
	p.loadingView.DisplayLoading(FeedLoadingViewModel{IsLoading: false})
}
