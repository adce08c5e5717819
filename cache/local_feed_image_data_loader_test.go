package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"essentialfeed/cache"
	"essentialfeed/feedtest"
)

func TestLocalFeedImageDataLoader_LoadImageData(t *testing.T) {
	tests := []struct {
		name     string
		store    *imageDataStoreSpy
		wantData []byte
		wantErr  error
	}{
		{
			name:    "fails on store error",
			store:   &imageDataStoreSpy{retrieveErr: feedtest.AnyError()},
			wantErr: cache.ErrFailed,
		},
		{
			name:    "delivers not found when nothing is stored",
			store:   &imageDataStoreSpy{},
			wantErr: cache.ErrNotFound,
		},
		{
			name:     "delivers stored data",
			store:    &imageDataStoreSpy{stored: feedtest.AnyData()},
			wantData: feedtest.AnyData(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := cache.NewLocalFeedImageDataLoader(tt.store)

			data, err := sut.LoadImageData(context.Background(), feedtest.AnyURL())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

func TestLocalFeedImageDataLoader_SaveImageData(t *testing.T) {
	t.Run("inserts data for url", func(t *testing.T) {
		store := &imageDataStoreSpy{}
		u := feedtest.AnyURL()

		err := cache.NewLocalFeedImageDataLoader(store).SaveImageData(context.Background(), feedtest.AnyData(), u)

		assert.NoError(t, err)
		assert.Equal(t, feedtest.AnyData(), store.inserted[u.String()])
	})

	t.Run("fails on insertion error", func(t *testing.T) {
		store := &imageDataStoreSpy{insertErr: feedtest.AnyError()}

		err := cache.NewLocalFeedImageDataLoader(store).SaveImageData(context.Background(), feedtest.AnyData(), feedtest.AnyURL())

		assert.ErrorIs(t, err, cache.ErrFailed)
	})
}
