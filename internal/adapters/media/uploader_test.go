package media

import (
	"context"
	"strings"
	"testing"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("Banner.PNG")
	assert.True(t, strings.HasPrefix(key, "events/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	// 16 random bytes hex-encoded
	assert.Len(t, key, len("events/")+32+len(".png"))

	other := objectKey("Banner.PNG")
	assert.NotEqual(t, key, other)

	assert.False(t, strings.Contains(objectKey("no-extension"), "."))
}

func TestS3Store_ObjectURL(t *testing.T) {
	tests := []struct {
		name  string
		store *s3Store
		want  string
	}{
		{
			name:  "aws url",
			store: &s3Store{bucket: "devevents-media", region: "eu-west-1"},
			want:  "https://devevents-media.s3.eu-west-1.amazonaws.com/events/abc.png",
		},
		{
			name:  "public base url",
			store: &s3Store{publicBaseURL: "https://cdn.example.com/"},
			want:  "https://cdn.example.com/events/abc.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.store.objectURL("events/abc.png"))
		})
	}
}

func TestNewStore(t *testing.T) {
	t.Run("s3 requires bucket", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Provider: "s3"})
		require.Error(t, err)
	})

	t.Run("s3 with bucket", func(t *testing.T) {
		store, err := NewStore(StoreConfig{Provider: "s3", S3: S3Config{
			Region: "eu-west-1",
			Bucket: "devevents-media",
		}})
		require.NoError(t, err)
		require.IsType(t, &s3Store{}, store)
	})

	t.Run("unknown provider falls back to noop", func(t *testing.T) {
		store, err := NewStore(StoreConfig{Provider: "cloudinary"})
		require.NoError(t, err)
		require.IsType(t, &noopStore{}, store)
	})
}

func TestNoopStore_Upload(t *testing.T) {
	store := &noopStore{}
	url, err := store.Upload(context.Background(), &domain.ImageUpload{
		Filename:    "banner.png",
		ContentType: "image/png",
		Data:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://media.invalid/events/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
}
