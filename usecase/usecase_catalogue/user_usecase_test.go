package usecase_catalogue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthResolve_AttachesRole(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(&catalogue_models.UserData{Email: "ada@example.com", Role: catalogue_models.UserRoleEditor}, nil).Once()
	uc := NewAuthUsecase(repo, NewQueryCache(), time.Second)

	p, err := uc.Resolve(context.Background(), "uid-1", " Ada@Example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, &catalogue_models.Principal{UID: "uid-1", Email: "ada@example.com", DisplayName: "Ada", Role: "editor"}, p)

	_, err = uc.Resolve(context.Background(), "uid-1", "ada@example.com", "Ada")
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetByEmail", 1)
}

func TestAuthResolve_UnknownUserIsUnauthorized(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("%w: user ghost@example.com", domain.ErrNotFound))
	uc := NewAuthUsecase(repo, NewQueryCache(), time.Second)

	_, err := uc.Resolve(context.Background(), "uid", "ghost@example.com", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Resolve(context.Background(), "uid", "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserCreate_NormalizesAndRejectsDuplicates(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewUserUsecase(repo, NewQueryCache(), time.Second)

	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *catalogue_models.UserData) bool {
		return u.Email == "new@example.com" && u.Role == catalogue_models.UserRoleViewer
	})).Return(nil)

	created, err := uc.Create(context.Background(), &catalogue_models.UserInput{Email: "New@Example.com", Role: "viewer"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)

	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&catalogue_models.UserData{Email: "taken@example.com"}, nil)
	_, err = uc.Create(context.Background(), &catalogue_models.UserInput{Email: "taken@example.com", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(context.Background(), &catalogue_models.UserInput{Email: "not-an-email", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(context.Background(), &catalogue_models.UserInput{Email: "x@example.com", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserUpdateRole(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewUserUsecase(repo, NewQueryCache(), time.Second)
	id := primitive.NewObjectID()

	repo.On("UpdateByID", mock.Anything, id, bson.M{"role": "admin"}).Return(nil)
	repo.On("GetByID", mock.Anything, id).Return(&catalogue_models.UserData{ID: id, Role: "admin"}, nil)

	updated, err := uc.UpdateRole(context.Background(), id.Hex(), &catalogue_models.UserRoleInput{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
}

func TestPersonCreate_OptimisticallyAppendsThenRefetches(t *testing.T) {
	repo := new(mocks.PersonRepository)
	cache := NewQueryCache()
	uc := NewPersonUsecase(repo, cache, time.Second)

	existing := &catalogue_models.Person{ID: primitive.NewObjectID(), Name: "Alan Menken"}
	repo.On("GetAll", mock.Anything).Return([]*catalogue_models.Person{existing}, nil).Once()
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*catalogue_models.Person")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*catalogue_models.Person).ID = primitive.NewObjectID()
		}).Return(nil)
	repo.On("GetAll", mock.Anything).Return(nil, assert.AnError).Once()

	info := "  lyricist  "
	created, err := uc.Create(context.Background(), &catalogue_models.PersonInput{Name: " Howard Ashman ", Info: &info})
	require.NoError(t, err)
	assert.Equal(t, "Howard Ashman", created.Name)
	assert.Equal(t, "lyricist", created.Info)

	list, err = uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Same(t, created, list[1])
	repo.AssertNumberOfCalls(t, "GetAll", 2)
}

func TestTheatreCreate_RequiresFields(t *testing.T) {
	repo := new(mocks.TheatreRepository)
	uc := NewTheatreUsecase(repo, NewQueryCache(), time.Second)

	_, err := uc.Create(context.Background(), &catalogue_models.TheatreInput{Name: "Palladium", City: " ", Country: "UK"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
