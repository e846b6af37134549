package mocks

import (
	"context"
	"io"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository testify 版通用仓储
type BaseRepository[T any] struct {
	mock.Mock
}

func (m *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *BaseRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	args := m.Called(ctx, id)
	var out *T
	if v := args.Get(0); v != nil {
		out = v.(*T)
	}
	return out, args.Error(1)
}

func (m *BaseRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *BaseRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BaseRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	var out []*T
	if v := args.Get(0); v != nil {
		out = v.([]*T)
	}
	return out, args.Error(1)
}

func (m *BaseRepository[T]) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error) {
	args := m.Called(ctx, ids)
	var out []*T
	if v := args.Get(0); v != nil {
		out = v.([]*T)
	}
	return out, args.Error(1)
}

func (m *BaseRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]*T, error) {
	args := m.Called(ctx, filter)
	var out []*T
	if v := args.Get(0); v != nil {
		out = v.([]*T)
	}
	return out, args.Error(1)
}

func (m *BaseRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	args := m.Called(ctx, filter)
	var out *T
	if v := args.Get(0); v != nil {
		out = v.(*T)
	}
	return out, args.Error(1)
}

func (m *BaseRepository[T]) ListPage(ctx context.Context, req domain.PageRequest) (*domain.Page[*T], error) {
	args := m.Called(ctx, req)
	var out *domain.Page[*T]
	if v := args.Get(0); v != nil {
		out = v.(*domain.Page[*T])
	}
	return out, args.Error(1)
}

type TheatreRepository struct {
	BaseRepository[catalogue_models.Theatre]
}

type PersonRepository struct {
	BaseRepository[catalogue_models.Person]
}

type RecordingRepository struct {
	BaseRepository[catalogue_models.Recording]
}

func (m *RecordingRepository) GetByPerson(ctx context.Context, personID primitive.ObjectID) ([]*catalogue_models.Recording, error) {
	args := m.Called(ctx, personID)
	var out []*catalogue_models.Recording
	if v := args.Get(0); v != nil {
		out = v.([]*catalogue_models.Recording)
	}
	return out, args.Error(1)
}

type UserRepository struct {
	BaseRepository[catalogue_models.UserData]
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*catalogue_models.UserData, error) {
	args := m.Called(ctx, email)
	var out *catalogue_models.UserData
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.UserData)
	}
	return out, args.Error(1)
}

type BlobStore struct {
	mock.Mock
}

func (m *BlobStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string, onProgress func(percent float64)) (string, error) {
	args := m.Called(ctx, path, r, size, contentType, onProgress)
	if onProgress != nil {
		onProgress(100)
	}
	return args.String(0), args.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *BlobStore) Open(ctx context.Context, path string) (*catalogue_models.Blob, error) {
	args := m.Called(ctx, path)
	var out *catalogue_models.Blob
	if v := args.Get(0); v != nil {
		out = v.(*catalogue_models.Blob)
	}
	return out, args.Error(1)
}

func (m *BlobStore) IsOwnedURL(url string) bool {
	args := m.Called(url)
	return args.Bool(0)
}
