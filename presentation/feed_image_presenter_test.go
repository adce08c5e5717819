package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essentialfeed/feedtest"
	"essentialfeed/models"
	"essentialfeed/presentation"
)

type anyImage struct{}

type viewSpy struct {
	messages []presentation.FeedImageViewModel[anyImage]
}

func (v *viewSpy) Display(model presentation.FeedImageViewModel[anyImage]) {
	v.messages = append(v.messages, model)
}

func success(data []byte) *anyImage {
	return &anyImage{}
}

func fail(data []byte) *anyImage {
	return nil
}

func makeSUT(transformer presentation.ImageTransformer[anyImage]) (*presentation.FeedImagePresenter[anyImage], *viewSpy) {
	if transformer == nil {
		transformer = fail
	}
	view := &viewSpy{}
	return presentation.NewFeedImagePresenter[anyImage](view, transformer), view
}

func imageWithDetails() models.FeedImage {
	image := feedtest.UniqueFeedImage()
	image.Description = feedtest.Ptr("a description")
	image.Location = feedtest.Ptr("a location")
	return image
}

func assertCopiesDetails(t *testing.T, message presentation.FeedImageViewModel[anyImage]) {
	t.Helper()
	require.NotNil(t, message.Description)
	require.NotNil(t, message.Location)
	assert.Equal(t, "a description", *message.Description)
	assert.Equal(t, "a location", *message.Location)
	assert.True(t, message.HasLocation())
}

func TestFeedImagePresenter_InitDoesNotSendMessagesToView(t *testing.T) {
	_, view := makeSUT(nil)

	assert.Empty(t, view.messages, "Expected no view messages")
}

func TestFeedImagePresenter_DidStartLoadingImageDataDisplaysLoadingImage(t *testing.T) {
	sut, view := makeSUT(nil)
	image := imageWithDetails()

	sut.DidStartLoadingImageData(image)

	require.Len(t, view.messages, 1)
	message := view.messages[0]
	assertCopiesDetails(t, message)
	assert.True(t, message.IsLoading)
	assert.False(t, message.ShouldRetry)
	assert.Nil(t, message.Image)
}

func TestFeedImagePresenter_DidFinishLoadingImageDataWithErrorDisplaysRetry(t *testing.T) {
	sut, view := makeSUT(nil)
	image := imageWithDetails()

	sut.DidFinishLoadingImageDataWithError(feedtest.AnyError(), image)

	require.Len(t, view.messages, 1)
	message := view.messages[0]
	assertCopiesDetails(t, message)
	assert.False(t, message.IsLoading)
	assert.True(t, message.ShouldRetry)
	assert.Nil(t, message.Image)
}

func TestFeedImagePresenter_DidFinishLoadingImageDataDisplaysRetryOnFailedImageTransformation(t *testing.T) {
	sut, view := makeSUT(fail)
	image := imageWithDetails()

	sut.DidFinishLoadingImageData(feedtest.AnyData(), image)

	require.Len(t, view.messages, 1)
	message := view.messages[0]
	assertCopiesDetails(t, message)
	assert.False(t, message.IsLoading)
	assert.True(t, message.ShouldRetry)
	assert.Nil(t, message.Image)
}

func TestFeedImagePresenter_DidFinishLoadingImageDataDisplaysImage(t *testing.T) {
	sut, view := makeSUT(success)
	image := feedtest.UniqueFeedImage()
	image.Description = feedtest.Ptr("a description")
	image.Location = feedtest.Ptr("a location")

	sut.DidFinishLoadingImageData(feedtest.AnyData(), image)

	require.Len(t, view.messages, 1)
	message := view.messages[0]
	assert.Equal(t, image.Description, message.Description)
	assert.Equal(t, image.Location, message.Location)
	assert.True(t, message.HasLocation())
	assert.False(t, message.IsLoading)
	assert.False(t, message.ShouldRetry)
	require.NotNil(t, message.Image)
	assert.Equal(t, anyImage{}, *message.Image)
}

func TestFeedImageViewModel_HasLocation(t *testing.T) {
	tests := []struct {
		name     string
		location *string
		expected bool
	}{
		{name: "nil location", location: nil, expected: false},
		{name: "empty location", location: feedtest.Ptr(""), expected: true},
		{name: "some location", location: feedtest.Ptr("Oslo"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := presentation.FeedImageViewModel[anyImage]{Location: tt.location}
			assert.Equal(t, tt.expected, vm.HasLocation())
		})
	}
}
