package domain

import "errors"

// 错误分类：所有失败都在本地恢复，不做重试
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrWriteFailure  = errors.New("write failed")
	ErrUploadFailure = errors.New("upload failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidID     = errors.New("invalid id")
)
