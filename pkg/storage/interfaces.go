package storage

import (
	"context"
	"io"
)

type StorageService interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type ImageService interface {
	Upload(ctx context.Context, reader io.Reader, filename string) (string, []string, error) // imageID, variants, error
	Delete(ctx context.Context, imageID string) error
	GetPublicURL(imageID string) string
	GetThumbnailURL(imageID string) string
}
