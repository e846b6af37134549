package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口，对应一个具名集合的文档存储适配
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 基础CRUD操作
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// 查询操作
	GetAll(ctx context.Context) ([]*T, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error)
	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)

	// 游标分页（无限滚动）
	ListPage(ctx context.Context, req PageRequest) (*Page[*T], error)
}
