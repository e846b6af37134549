package catalogue_interface

import (
	"context"
	"io"

	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

// BlobStore 对象存储的薄封装
type BlobStore interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string, onProgress func(percent float64)) (string, error)
	// Delete 非本存储的 URL 直接忽略
	Delete(ctx context.Context, url string) error
	Open(ctx context.Context, path string) (*catalogue_models.Blob, error)
	IsOwnedURL(url string) bool
}

type UploadUsecase interface {
	UploadImages(ctx context.Context, batchID, recordingID, path string, files []catalogue_models.UploadFile) (*catalogue_models.UploadBatch, error)
	Progress(batchID string) (*catalogue_models.UploadProgress, error)
	DeleteImage(ctx context.Context, url string) error
	OpenImage(ctx context.Context, path string) (*catalogue_models.Blob, error)
}
