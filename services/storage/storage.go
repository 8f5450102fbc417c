package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"everafter/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSection  = errors.New("invalid media section")
	ErrInvalidEntityID = errors.New("invalid entity id")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// allowedSections are the folders media may be uploaded into.
var allowedSections = map[string]bool{
	"hero":      true,
	"services":  true,
	"about":     true,
	"vendors":   true,
	"portfolio": true,
}

var allowedExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "webp": true, "gif": true, "avif": true,
	"mp4": true, "mov": true, "webm": true,
}

// MediaStorage uploads admin media and returns its public URL.
type MediaStorage interface {
	Upload(ctx context.Context, r io.Reader, section, entityID, filename string) (*models.MediaUpload, error)
	Delete(ctx context.Context, objectPath string) error
}

// CloudinaryUploader is the subset of the Cloudinary upload API in use.
type CloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// ObjectPath builds {section}/{entityId}/{timestamp}-{random}.{ext}.
func ObjectPath(section, entityID, filename string, now time.Time, random string) (string, error) {
	if !allowedSections[section] {
		return "", fmt.Errorf("%w: %q", ErrInvalidSection, section)
	}
	if entityID == "" || strings.ContainsAny(entityID, `/\`) || strings.Contains(entityID, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityID, entityID)
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, filename)
	}
	return fmt.Sprintf("%s/%s/%d-%s.%s", section, entityID, now.UnixMilli(), random, ext), nil
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// publicID drops the extension; Cloudinary appends the delivered format itself.
func publicID(objectPath string) string {
	return strings.TrimSuffix(objectPath, path.Ext(objectPath))
}

// CloudinaryStorage implements MediaStorage on Cloudinary.
type CloudinaryStorage struct {
	api    CloudinaryUploader
	logger *zap.Logger
	now    func() time.Time
	random func() string
}

// NewCloudinaryStorage connects with the account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return NewStorageWithUploader(&cld.Upload, logger), nil
}

// NewStorageWithUploader is used to plug in a custom uploader.
func NewStorageWithUploader(api CloudinaryUploader, logger *zap.Logger) *CloudinaryStorage {
	return &CloudinaryStorage{api: api, logger: logger, now: time.Now, random: randomSuffix}
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, section, entityID, filename string) (*models.MediaUpload, error) {
	objectPath, err := ObjectPath(section, entityID, filename, s.now(), s.random())
	if err != nil {
		return nil, err
	}
	result, err := s.api.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID(objectPath),
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload media: %s", result.Error.Message)
	}
	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return nil, fmt.Errorf("failed to upload media: no URL returned")
	}
	s.logger.Info("media uploaded", zap.String("path", objectPath), zap.String("url", url))
	return &models.MediaUpload{Section: section, EntityID: entityID, Path: objectPath, URL: url}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, objectPath string) error {
	result, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID(objectPath)})
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete media: %s", result.Error.Message)
	}
	return nil
}
