package repository_storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlobRoutePrefix 对外暴露的对象读取路由
const BlobRoutePrefix = "/api/blobs/"

type gridFSBlobStore struct {
	bucket    *gridfs.Bucket
	urlPrefix string
}

// NewGridFSBlobStore 基于 GridFS 的对象存储；文件名即对象路径
func NewGridFSBlobStore(db mongo.Database, bucketName, publicBaseURL string) (catalogue_interface.BlobStore, error) {
	bucket, err := db.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketName, err)
	}
	return &gridFSBlobStore{
		bucket:    bucket,
		urlPrefix: strings.TrimRight(publicBaseURL, "/") + BlobRoutePrefix,
	}, nil
}

func (s *gridFSBlobStore) URLFor(path string) string {
	return s.urlPrefix + strings.TrimLeft(path, "/")
}

func (s *gridFSBlobStore) IsOwnedURL(url string) bool {
	return strings.HasPrefix(url, s.urlPrefix) && len(url) > len(s.urlPrefix)
}

func (s *gridFSBlobStore) Upload(
	ctx context.Context,
	path string,
	r io.Reader,
	size int64,
	contentType string,
	onProgress func(percent float64),
) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty object path", domain.ErrUploadFailure)
	}

	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	stream, err := s.bucket.OpenUploadStream(path, opts)
	if err != nil {
		return "", fmt.Errorf("%w: open upload stream: %v", domain.ErrUploadFailure, err)
	}

	reader := &progressReader{ctx: ctx, r: r, total: size, onProgress: onProgress}
	if _, err := io.Copy(stream, reader); err != nil {
		_ = stream.Abort()
		return "", fmt.Errorf("%w: write %s: %v", domain.ErrUploadFailure, path, err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", domain.ErrUploadFailure, path, err)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return s.URLFor(path), nil
}

// Delete 非本存储的 URL 不处理；对象已不存在也视为成功
func (s *gridFSBlobStore) Delete(ctx context.Context, url string) error {
	if !s.IsOwnedURL(url) {
		log.Debug().Str("url", url).Msg("skip deleting foreign url")
		return nil
	}
	path := strings.TrimPrefix(url, s.urlPrefix)

	cursor, err := s.bucket.FindContext(ctx, bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("failed to find blob %s: %w", path, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("failed to decode blob entry: %w", err)
		}
		if err := s.bucket.DeleteContext(ctx, file.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("%w: delete %s: %v", domain.ErrWriteFailure, path, err)
		}
	}
	return cursor.Err()
}

func (s *gridFSBlobStore) Open(ctx context.Context, path string) (*catalogue_models.Blob, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return nil, fmt.Errorf("%w: empty object path", domain.ErrNotFound)
	}

	stream, err := s.bucket.OpenDownloadStreamByName(path)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: blob %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", path, err)
	}

	file := stream.GetFile()
	contentType := "application/octet-stream"
	if file.Metadata != nil {
		if ct, ok := file.Metadata.Lookup("content_type").StringValueOK(); ok && ct != "" {
			contentType = ct
		}
	}

	return &catalogue_models.Blob{
		Reader:      stream,
		Size:        file.Length,
		ContentType: contentType,
	}, nil
}

// progressReader 读取时按已读字节回报百分比
type progressReader struct {
	ctx        context.Context
	r          io.Reader
	total      int64
	read       int64
	onProgress func(percent float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	if err := p.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.onProgress != nil && p.total > 0 && n > 0 {
		percent := float64(p.read) / float64(p.total) * 100
		if percent > 100 {
			percent = 100
		}
		p.onProgress(percent)
	}
	return n, err
}
