package usecase_catalogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/usecase"
	"go.mongodb.org/mongo-driver/bson"
)

type UserUsecase struct {
	*usecase.BaseUsecase[catalogue_models.UserData]
	repo  catalogue_interface.UserRepository
	cache *QueryCache
}

func NewUserUsecase(repo catalogue_interface.UserRepository, cache *QueryCache, timeout time.Duration) *UserUsecase {
	return &UserUsecase{
		BaseUsecase: usecase.NewBaseUsecase[catalogue_models.UserData](repo, timeout),
		repo:        repo,
		cache:       cache,
	}
}

func (uc *UserUsecase) List(ctx context.Context) ([]*catalogue_models.UserData, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionUsers, "", "", uc.GetAll)
}

func (uc *UserUsecase) Create(ctx context.Context, input *catalogue_models.UserInput) (*catalogue_models.UserData, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	lookupCtx, cancel := context.WithTimeout(ctx, uc.Timeout)
	existing, err := uc.repo.GetByEmail(lookupCtx, email)
	cancel()
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered: %s", domain.ErrValidation, email)
	}

	created, err := uc.BaseUsecase.Create(ctx, &catalogue_models.UserData{Email: email, Role: input.Role})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("create user failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionUsers)
	return created, nil
}

func (uc *UserUsecase) UpdateRole(ctx context.Context, id string, input *catalogue_models.UserRoleInput) (*catalogue_models.UserData, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	updated, err := uc.UpdateFields(ctx, id, bson.M{"role": input.Role})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("update user role failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionUsers)
	return updated, nil
}

func (uc *UserUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.BaseUsecase.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(domain.CollectionUsers)
	return nil
}
