package usecase_catalogue

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/usecase"
	"go.mongodb.org/mongo-driver/bson"
)

type TheatreUsecase struct {
	*usecase.BaseUsecase[catalogue_models.Theatre]
	cache *QueryCache
}

func NewTheatreUsecase(repo catalogue_interface.TheatreRepository, cache *QueryCache, timeout time.Duration) *TheatreUsecase {
	return &TheatreUsecase{
		BaseUsecase: usecase.NewBaseUsecase[catalogue_models.Theatre](repo, timeout),
		cache:       cache,
	}
}

func (uc *TheatreUsecase) List(ctx context.Context) ([]*catalogue_models.Theatre, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionTheatres, "", "", uc.GetAll)
}

func (uc *TheatreUsecase) Get(ctx context.Context, id string) (*catalogue_models.Theatre, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionTheatres, id, "", func(ctx context.Context) (*catalogue_models.Theatre, error) {
		return uc.GetByID(ctx, id)
	})
}

func (uc *TheatreUsecase) Create(ctx context.Context, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	theatre := &catalogue_models.Theatre{
		Name:    strings.TrimSpace(input.Name),
		City:    strings.TrimSpace(input.City),
		Country: strings.TrimSpace(input.Country),
	}
	created, err := uc.BaseUsecase.Create(ctx, theatre)
	if err != nil {
		log.Error().Err(err).Str("collection", domain.CollectionTheatres).Msg("create theatre failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionTheatres)
	return created, nil
}

func (uc *TheatreUsecase) Update(ctx context.Context, id string, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	updated, err := uc.UpdateFields(ctx, id, bson.M{
		"name":    strings.TrimSpace(input.Name),
		"city":    strings.TrimSpace(input.City),
		"country": strings.TrimSpace(input.Country),
	})
	if err != nil {
		log.Error().Err(err).Str("collection", domain.CollectionTheatres).Str("id", id).Msg("update theatre failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionTheatres)
	return updated, nil
}

// Delete 不检查是否仍被录音引用
func (uc *TheatreUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.BaseUsecase.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(domain.CollectionTheatres)
	return nil
}
