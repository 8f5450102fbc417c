package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUploader struct {
	uploads   []uploader.UploadParams
	destroyed []string
	result    *uploader.UploadResult
	err       error
}

func (f *fakeUploader) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploads = append(f.uploads, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeUploader) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = append(f.destroyed, params.PublicID)
	return &uploader.DestroyResult{Result: "ok"}, nil
}

var fixedNow = time.UnixMilli(1767225600000)

func TestObjectPath(t *testing.T) {
	p, err := ObjectPath("portfolio", "v-001", "Ceremony.JPG", fixedNow, "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "portfolio/v-001/1767225600000-a1b2c3d4.jpg", p)

	_, err = ObjectPath("secrets", "v-001", "a.jpg", fixedNow, "x")
	assert.ErrorIs(t, err, ErrInvalidSection)

	for _, id := range []string{"", "../etc", "a/b"} {
		_, err = ObjectPath("hero", id, "a.jpg", fixedNow, "x")
		assert.ErrorIs(t, err, ErrInvalidEntityID, id)
	}

	_, err = ObjectPath("hero", "slide-1", "payload.exe", fixedNow, "x")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	_, err = ObjectPath("hero", "slide-1", "noext", fixedNow, "x")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func newTestStorage(f *fakeUploader) *CloudinaryStorage {
	s := NewStorageWithUploader(f, zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	s.random = func() string { return "r4nd0m00" }
	return s
}

func TestUploadReturnsSecureURL(t *testing.T) {
	f := &fakeUploader{result: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/hero/slide-1/1767225600000-r4nd0m00.png",
	}}
	s := newTestStorage(f)

	got, err := s.Upload(context.Background(), strings.NewReader("png"), "hero", "slide-1", "banner.png")
	require.NoError(t, err)
	assert.Equal(t, "hero/slide-1/1767225600000-r4nd0m00.png", got.Path)
	assert.Equal(t, f.result.SecureURL, got.URL)

	require.Len(t, f.uploads, 1)
	assert.Equal(t, "hero/slide-1/1767225600000-r4nd0m00", f.uploads[0].PublicID)
	assert.Equal(t, "auto", f.uploads[0].ResourceType)
}

func TestUploadFailures(t *testing.T) {
	f := &fakeUploader{err: errors.New("network")}
	_, err := newTestStorage(f).Upload(context.Background(), strings.NewReader(""), "hero", "h", "a.png")
	assert.Error(t, err)

	f = &fakeUploader{result: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
	_, err = newTestStorage(f).Upload(context.Background(), strings.NewReader(""), "hero", "h", "a.png")
	assert.ErrorContains(t, err, "Invalid image file")

	f = &fakeUploader{result: &uploader.UploadResult{}}
	_, err = newTestStorage(f).Upload(context.Background(), strings.NewReader(""), "services", "s", "a.png")
	assert.Error(t, err)

	_, err = newTestStorage(f).Upload(context.Background(), strings.NewReader(""), "nope", "s", "a.png")
	assert.ErrorIs(t, err, ErrInvalidSection)
	assert.Len(t, f.uploads, 1, "invalid paths never reach Cloudinary")
}

func TestDelete(t *testing.T) {
	f := &fakeUploader{}
	require.NoError(t, newTestStorage(f).Delete(context.Background(), "about/team/1-abc.webp"))
	assert.Equal(t, []string{"about/team/1-abc"}, f.destroyed)
}

func TestNewCloudinaryStorageRequiresCredentials(t *testing.T) {
	_, err := NewCloudinaryStorage("", "key", "secret", zap.NewNop())
	assert.Error(t, err)
}
