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

type PersonUsecase struct {
	*usecase.BaseUsecase[catalogue_models.Person]
	cache *QueryCache
}

func NewPersonUsecase(repo catalogue_interface.PersonRepository, cache *QueryCache, timeout time.Duration) *PersonUsecase {
	return &PersonUsecase{
		BaseUsecase: usecase.NewBaseUsecase[catalogue_models.Person](repo, timeout),
		cache:       cache,
	}
}

func (uc *PersonUsecase) List(ctx context.Context) ([]*catalogue_models.Person, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionPeople, "", "", uc.GetAll)
}

func (uc *PersonUsecase) Get(ctx context.Context, id string) (*catalogue_models.Person, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionPeople, id, "", func(ctx context.Context) (*catalogue_models.Person, error) {
		return uc.GetByID(ctx, id)
	})
}

// Create 新人员先乐观地追加到已缓存列表，再同步重新拉取
func (uc *PersonUsecase) Create(ctx context.Context, input *catalogue_models.PersonInput) (*catalogue_models.Person, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	person := &catalogue_models.Person{Name: strings.TrimSpace(input.Name)}
	if input.Info != nil {
		person.Info = strings.TrimSpace(*input.Info)
	}
	created, err := uc.BaseUsecase.Create(ctx, person)
	if err != nil {
		log.Error().Err(err).Str("collection", domain.CollectionPeople).Msg("create person failed")
		return nil, err
	}

	MutateCached(uc.cache, domain.CollectionPeople, "", "", func(list []*catalogue_models.Person) []*catalogue_models.Person {
		next := make([]*catalogue_models.Person, 0, len(list)+1)
		next = append(next, list...)
		return append(next, created)
	})
	if _, err := RefreshCached(ctx, uc.cache, domain.CollectionPeople, "", "", uc.GetAll); err != nil {
		log.Warn().Err(err).Msg("refetch people after create failed")
	}

	return created, nil
}

func (uc *PersonUsecase) Update(ctx context.Context, id string, input *catalogue_models.PersonInput) (*catalogue_models.Person, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	fields := bson.M{"name": strings.TrimSpace(input.Name)}
	if input.Info != nil {
		fields["info"] = strings.TrimSpace(*input.Info)
	}
	updated, err := uc.UpdateFields(ctx, id, fields)
	if err != nil {
		log.Error().Err(err).Str("collection", domain.CollectionPeople).Str("id", id).Msg("update person failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionPeople)
	return updated, nil
}

// Delete 不清理录音中的引用，悬空引用在读取时被忽略
func (uc *PersonUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.BaseUsecase.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(domain.CollectionPeople)
	return nil
}
