package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// BaseUsecase 通用Usecase实现：统一超时、ID解析与错误包装
type BaseUsecase[T any] struct {
	Repo    domain.BaseRepository[T]
	Timeout time.Duration
}

// NewBaseUsecase 创建通用Usecase实例
func NewBaseUsecase[T any](repo domain.BaseRepository[T], timeout time.Duration) *BaseUsecase[T] {
	return &BaseUsecase[T]{
		Repo:    repo,
		Timeout: timeout,
	}
}

// Create 创建实体
func (uc *BaseUsecase[T]) Create(ctx context.Context, entity *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	if entity == nil {
		return nil, errors.New("entity cannot be nil")
	}

	if err := uc.Repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create entity: %w", err)
	}

	return entity, nil
}

// GetByID 根据ID获取实体
func (uc *BaseUsecase[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	objID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	entity, err := uc.Repo.GetByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return entity, nil
}

// UpdateFields 部分更新后返回最新文档
func (uc *BaseUsecase[T]) UpdateFields(ctx context.Context, id string, fields bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	objID, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	if err := uc.Repo.UpdateByID(ctx, objID, fields); err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	entity, err := uc.Repo.GetByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload entity: %w", err)
	}
	return entity, nil
}

// Delete 删除实体
func (uc *BaseUsecase[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	objID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	if err := uc.Repo.Delete(ctx, objID); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

// GetAll 获取所有实体
func (uc *BaseUsecase[T]) GetAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	entities, err := uc.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get entities: %w", err)
	}

	return entities, nil
}
