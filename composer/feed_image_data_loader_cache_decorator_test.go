package composer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"essentialfeed/composer"
	"essentialfeed/feedtest"
)

func TestFeedImageDataLoaderCacheDecorator(t *testing.T) {
	tests := []struct {
		name      string
		loader    *imageDataLoaderStub
		cacheErr  error
		wantErr   error
		wantSaves int
	}{
		{
			name:      "delivers and caches data on loader success",
			loader:    &imageDataLoaderStub{data: feedtest.AnyData()},
			wantSaves: 1,
		},
		{
			name:      "delivers error and skips cache on loader failure",
			loader:    &imageDataLoaderStub{err: feedtest.AnyError()},
			wantErr:   feedtest.AnyError(),
			wantSaves: 0,
		},
		{
			name:      "ignores cache failure",
			loader:    &imageDataLoaderStub{data: feedtest.AnyData()},
			cacheErr:  errors.New("disk full"),
			wantSaves: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &imageDataCacheSpy{err: tt.cacheErr}
			sut := composer.NewFeedImageDataLoaderCacheDecorator(tt.loader, cache)
			url := feedtest.AnyURL()

			data, err := sut.LoadImageData(context.Background(), url)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.loader.data, data)
			}
			assert.Len(t, cache.messages, tt.wantSaves)
			for _, msg := range cache.messages {
				assert.Equal(t, tt.loader.data, msg.data)
				assert.Equal(t, url, msg.url)
			}
		})
	}
}
