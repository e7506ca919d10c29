package checks_test

import (
	"context"
	"testing"

	"morphood/core/storage/mocks"
	"morphood/feature/content/checks"
	"morphood/kitchen/ingredient"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestCheckIcons(t *testing.T) {
	identities := []*ingredient.Identity{
		{ID: "tomato", Icon: "icons/tomato.png"},
		{ID: "lettuce", Icon: "icons/lettuce.png"},
		{ID: "mystery"},
	}

	t.Run("Reports Missing Objects", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("StatObject", mock.Anything, "assets", "icons/tomato.png", mock.Anything).
			Return(minio.ObjectInfo{Key: "icons/tomato.png"}, nil)
		client.On("StatObject", mock.Anything, "assets", "icons/lettuce.png", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(listing("icons/tomato.png"))

		report, err := checks.CheckIcons(context.Background(), client, "assets", "", identities)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Checked)
		assert.Len(t, report.Missing, 2)
		assert.Contains(t, report.Missing[0], "lettuce")
		assert.Contains(t, report.Missing[1], "no icon authored")
		assert.Equal(t, []string{"icons/lettuce.png"}, report.MissingObjects)
		assert.Empty(t, report.Orphaned)
		client.AssertExpectations(t)
	})

	t.Run("Reports Orphaned Objects", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("StatObject", mock.Anything, "assets", "icons/tomato.png", mock.Anything).
			Return(minio.ObjectInfo{}, nil)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(listing("icons/tomato.png", "icons/removed_item.png"))

		report, err := checks.CheckIcons(context.Background(), client, "assets", "",
			[]*ingredient.Identity{{ID: "tomato", Icon: "icons/tomato.png"}})
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.Equal(t, []string{"icons/removed_item.png"}, report.Orphaned)
	})

	t.Run("Prefix Applied", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("StatObject", mock.Anything, "assets", "cdn/icons/tomato.png", mock.Anything).
			Return(minio.ObjectInfo{}, nil)
		client.On("ListObjects", mock.Anything, "assets",
			minio.ListObjectsOptions{Prefix: "cdn/icons/", Recursive: true}).
			Return(listing())

		_, err := checks.CheckIcons(context.Background(), client, "assets", "cdn",
			[]*ingredient.Identity{{ID: "tomato", Icon: "icons/tomato.png"}})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Missing Bucket Is Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := checks.CheckIcons(context.Background(), client, "assets", "", identities)
		assert.Error(t, err)
	})

	t.Run("Transport Failure Is Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		client.On("StatObject", mock.Anything, "assets", "icons/tomato.png", mock.Anything).
			Return(minio.ObjectInfo{}, assert.AnError)

		_, err := checks.CheckIcons(context.Background(), client, "assets", "",
			[]*ingredient.Identity{{ID: "tomato", Icon: "icons/tomato.png"}})
		assert.Error(t, err)
	})
}

func TestFixIcons(t *testing.T) {
	t.Run("Uploads Placeholders", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "icons/lettuce.png",
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("PutObject", mock.Anything, "assets", "icons/bread.png",
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		uploaded, err := checks.FixIcons(context.Background(), client, "assets",
			[]string{"icons/lettuce.png", "icons/bread.png"})
		require.NoError(t, err)
		assert.Equal(t, 2, uploaded)
		client.AssertExpectations(t)
	})

	t.Run("Nothing To Fix", func(t *testing.T) {
		client := new(mocks.Client)
		uploaded, err := checks.FixIcons(context.Background(), client, "assets", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, uploaded)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "icons/lettuce.png",
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)

		_, err := checks.FixIcons(context.Background(), client, "assets",
			[]string{"icons/lettuce.png"})
		assert.Error(t, err)
	})
}
