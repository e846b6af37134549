package usecase_catalogue

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/repository"
	"github.com/stagearchive/catalogue/usecase"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultFeedPageSize = 12
	MaxFeedPageSize     = 100
)

type RecordingUsecase struct {
	*usecase.BaseUsecase[catalogue_models.Recording]
	repo         catalogue_interface.RecordingRepository
	people       catalogue_interface.PersonUsecase
	denormalizer *RecordingDenormalizer
	cache        *QueryCache
	feedPageSize int
}

func NewRecordingUsecase(
	repo catalogue_interface.RecordingRepository,
	people catalogue_interface.PersonUsecase,
	denormalizer *RecordingDenormalizer,
	cache *QueryCache,
	timeout time.Duration,
	feedPageSize int,
) *RecordingUsecase {
	if feedPageSize < 1 {
		feedPageSize = DefaultFeedPageSize
	}
	return &RecordingUsecase{
		BaseUsecase:  usecase.NewBaseUsecase[catalogue_models.Recording](repo, timeout),
		repo:         repo,
		people:       people,
		denormalizer: denormalizer,
		cache:        cache,
		feedPageSize: feedPageSize,
	}
}

func (uc *RecordingUsecase) List(ctx context.Context) ([]*catalogue_models.Recording, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionRecordings, "", "", uc.GetAll)
}

func (uc *RecordingUsecase) Get(ctx context.Context, id string) (*catalogue_models.Recording, error) {
	return CachedQuery(ctx, uc.cache, domain.CollectionRecordings, id, "", func(ctx context.Context) (*catalogue_models.Recording, error) {
		return uc.GetByID(ctx, id)
	})
}

func (uc *RecordingUsecase) Detail(ctx context.Context, id string) (*catalogue_models.RecordingDetail, error) {
	rec, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()
	return uc.denormalizer.Detail(ctx, rec)
}

func (uc *RecordingUsecase) Create(ctx context.Context, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	rec, err := uc.buildRecording(ctx, input)
	if err != nil {
		return nil, err
	}

	created, err := uc.BaseUsecase.Create(ctx, rec)
	if err != nil {
		log.Error().Err(err).Str("title", input.Title).Msg("create recording failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionRecordings)
	return created, nil
}

func (uc *RecordingUsecase) buildRecording(ctx context.Context, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
	defer cancel()

	fields, err := uc.denormalizer.BuildFields(ctx, input, true, nil)
	if err != nil {
		return nil, err
	}

	data, err := bson.Marshal(repository.CompactFields(fields))
	if err != nil {
		return nil, fmt.Errorf("failed to encode recording: %w", err)
	}
	var rec catalogue_models.Recording
	if err := bson.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode recording: %w", err)
	}
	return &rec, nil
}

func (uc *RecordingUsecase) Update(ctx context.Context, id string, input *catalogue_models.RecordingInput) (*catalogue_models.Recording, error) {
	if err := usecase.ValidateStruct(input); err != nil {
		return nil, err
	}

	var stored *catalogue_models.Recording
	if input.DateInput != "" || input.DatePrecision != "" {
		var err error
		if stored, err = uc.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	buildCtx, cancel := context.WithTimeout(ctx, uc.Timeout)
	fields, err := uc.denormalizer.BuildFields(buildCtx, input, false, stored)
	cancel()
	if err != nil {
		return nil, err
	}

	updated, err := uc.UpdateFields(ctx, id, fields)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("update recording failed")
		return nil, err
	}

	uc.cache.Invalidate(domain.CollectionRecordings)
	return updated, nil
}

func (uc *RecordingUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.BaseUsecase.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(domain.CollectionRecordings)
	return nil
}

// AttachNewPerson 人员创建成功而挂接失败时，人员保留
func (uc *RecordingUsecase) AttachNewPerson(
	ctx context.Context,
	recordingID string,
	role catalogue_models.PersonRole,
	input *catalogue_models.PersonInput,
) (*catalogue_models.Recording, *catalogue_models.Person, error) {
	rec, err := uc.GetByID(ctx, recordingID)
	if err != nil {
		return nil, nil, err
	}

	person, err := uc.people.Create(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	ids := append(append([]string{}, rec.RoleIDs(role)...), person.ID.Hex())

	roleCtx, cancel := context.WithTimeout(ctx, uc.Timeout)
	fields, err := uc.denormalizer.RoleFields(roleCtx, role, ids)
	cancel()
	if err != nil {
		log.Error().Err(err).Str("recording", recordingID).Str("person", person.ID.Hex()).Msg("attach person failed")
		return nil, person, err
	}

	updated, err := uc.UpdateFields(ctx, recordingID, fields)
	if err != nil {
		log.Error().Err(err).Str("recording", recordingID).Str("person", person.ID.Hex()).Msg("attach person failed")
		return nil, person, err
	}

	uc.cache.Invalidate(domain.CollectionRecordings)
	return updated, person, nil
}

// ListByPerson 人员参与的录音及其在每条录音中的角色
func (uc *RecordingUsecase) ListByPerson(ctx context.Context, personID string) ([]catalogue_models.PersonRecording, error) {
	oid, err := domain.ParseID(personID)
	if err != nil {
		return nil, err
	}

	return CachedQuery(ctx, uc.cache, domain.CollectionRecordings, "person:"+personID, "", func(ctx context.Context) ([]catalogue_models.PersonRecording, error) {
		ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
		defer cancel()

		recs, err := uc.repo.GetByPerson(ctx, oid)
		if err != nil {
			return nil, fmt.Errorf("failed to list recordings by person: %w", err)
		}
		hex := oid.Hex()
		out := make([]catalogue_models.PersonRecording, 0, len(recs))
		for _, rec := range recs {
			roles := rec.RolesOf(hex)
			if len(roles) == 0 {
				continue
			}
			out = append(out, catalogue_models.PersonRecording{Recording: rec, Roles: roles})
		}
		return out, nil
	})
}

// Feed 按 date_added 倒序的游标分页
func (uc *RecordingUsecase) Feed(ctx context.Context, cursor string, limit int) (*domain.Page[*catalogue_models.Recording], error) {
	if limit < 1 {
		limit = uc.feedPageSize
	}
	if limit > MaxFeedPageSize {
		limit = MaxFeedPageSize
	}

	params := cursor + "&" + strconv.Itoa(limit)
	return CachedQuery(ctx, uc.cache, domain.CollectionRecordings, "feed", params, func(ctx context.Context) (*domain.Page[*catalogue_models.Recording], error) {
		ctx, cancel := context.WithTimeout(ctx, uc.Timeout)
		defer cancel()

		return uc.repo.ListPage(ctx, domain.PageRequest{
			OrderBy:   "date_added",
			Direction: domain.OrderDesc,
			PageSize:  limit,
			Cursor:    cursor,
		})
	})
}
