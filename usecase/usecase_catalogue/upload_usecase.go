package usecase_catalogue

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
)

const (
	DefaultUploadMaxSize  int64 = 5 << 20
	DefaultUploadMaxFiles       = 10

	batchRetention = time.Hour
)

// allowedImageTypes 按内容嗅探得到的类型判断，不信任客户端声明
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type UploadUsecase struct {
	store    catalogue_interface.BlobStore
	maxSize  int64
	maxFiles int
	timeout  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	batches map[string]*domain_util.TaskProgress
}

func NewUploadUsecase(store catalogue_interface.BlobStore, maxSize int64, maxFiles int, timeout time.Duration) *UploadUsecase {
	if maxSize <= 0 {
		maxSize = DefaultUploadMaxSize
	}
	if maxFiles <= 0 {
		maxFiles = DefaultUploadMaxFiles
	}
	return &UploadUsecase{
		store:    store,
		maxSize:  maxSize,
		maxFiles: maxFiles,
		timeout:  timeout,
		now:      time.Now,
		batches:  make(map[string]*domain_util.TaskProgress),
	}
}

// ObjectPath recordings/<id>/<main|gallery>/<毫秒时间戳>-<6位随机串>.<扩展名>
func ObjectPath(recordingID, kind string, at time.Time, suffix, ext string) string {
	return fmt.Sprintf("recordings/%s/%s/%d-%s.%s", recordingID, kind, at.UnixMilli(), suffix, ext)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// UploadImages 同批文件并发上传，各自回报进度；全部结束后才返回，失败按文件记录
func (uc *UploadUsecase) UploadImages(
	ctx context.Context,
	batchID, recordingID, kind string,
	files []catalogue_models.UploadFile,
) (*catalogue_models.UploadBatch, error) {
	validations := []func() error{
		func() error {
			if kind != catalogue_models.ImagePathMain && kind != catalogue_models.ImagePathGallery {
				return fmt.Errorf("%w: invalid image path: %s", domain.ErrValidation, kind)
			}
			return nil
		},
		func() error {
			if _, err := domain.ParseID(recordingID); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrValidation, err)
			}
			return nil
		},
		func() error {
			if len(files) == 0 {
				return fmt.Errorf("%w: no files", domain.ErrValidation)
			}
			if len(files) > uc.maxFiles {
				return fmt.Errorf("%w: too many files: %d > %d", domain.ErrValidation, len(files), uc.maxFiles)
			}
			if kind == catalogue_models.ImagePathMain && len(files) > 1 {
				return fmt.Errorf("%w: main image accepts a single file", domain.ErrValidation)
			}
			return nil
		},
	}
	for _, validate := range validations {
		if err := validate(); err != nil {
			return nil, err
		}
	}

	if batchID == "" {
		batchID = uuid.NewString()
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	progress := domain_util.NewTaskProgress(batchID, names)
	uc.registerBatch(progress)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	results := make([]catalogue_models.UploadResult, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f catalogue_models.UploadFile) {
			defer wg.Done()
			results[i].FileName = f.Name

			url, err := uc.uploadOne(ctx, recordingID, kind, f, func(percent float64) {
				progress.SetProgress(i, percent)
			})
			if err != nil {
				log.Warn().Err(err).Str("batch", batchID).Str("file", f.Name).Msg("image upload failed")
				progress.MarkError(i, err)
				results[i].Error = err.Error()
				return
			}
			progress.MarkSuccess(i, url)
			results[i].URL = url
		}(i, f)
	}
	wg.Wait()
	progress.Finish()

	batch := &catalogue_models.UploadBatch{BatchID: batchID, Results: results}
	for _, r := range results {
		if r.Error != "" {
			batch.Failed++
		} else {
			batch.Succeeded++
		}
	}
	if batch.Succeeded == 0 {
		return batch, fmt.Errorf("%w: all %d files failed", domain.ErrUploadFailure, batch.Failed)
	}
	return batch, nil
}

func (uc *UploadUsecase) uploadOne(
	ctx context.Context,
	recordingID, kind string,
	f catalogue_models.UploadFile,
	onProgress func(float64),
) (string, error) {
	size := int64(len(f.Data))
	if size == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrUploadFailure)
	}
	if size > uc.maxSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", domain.ErrUploadFailure, uc.maxSize)
	}

	fileType, err := filetype.Match(f.Data)
	if err != nil || fileType == filetype.Unknown || !allowedImageTypes[fileType.MIME.Value] {
		return "", fmt.Errorf("%w: unsupported file type", domain.ErrUploadFailure)
	}

	path := ObjectPath(recordingID, kind, uc.now(), randomSuffix(), fileType.Extension)
	return uc.store.Upload(ctx, path, bytes.NewReader(f.Data), size, fileType.MIME.Value, onProgress)
}

func (uc *UploadUsecase) registerBatch(progress *domain_util.TaskProgress) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cutoff := uc.now().Add(-batchRetention)
	for id, b := range uc.batches {
		if _, finished := b.Snapshot(); finished && b.StartedAt.Before(cutoff) {
			delete(uc.batches, id)
		}
	}
	uc.batches[progress.ID] = progress
}

func (uc *UploadUsecase) Progress(batchID string) (*catalogue_models.UploadProgress, error) {
	uc.mu.Lock()
	progress, ok := uc.batches[batchID]
	uc.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: upload batch %s", domain.ErrNotFound, batchID)
	}

	files, finished := progress.Snapshot()
	return &catalogue_models.UploadProgress{BatchID: batchID, Files: files, Finished: finished}, nil
}

// DeleteImage 非本存储的 URL 直接忽略
func (uc *UploadUsecase) DeleteImage(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.store.Delete(ctx, url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("delete image failed")
		return err
	}
	return nil
}

func (uc *UploadUsecase) OpenImage(ctx context.Context, path string) (*catalogue_models.Blob, error) {
	return uc.store.Open(ctx, path)
}
