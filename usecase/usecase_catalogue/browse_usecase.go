package usecase_catalogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
)

// listView 每类列表页的默认排序与允许的排序/检索键
type listView struct {
	defaultSort  string
	defaultOrder string
	sortFields   []string
	scopes       []string
}

var (
	recordingView = listView{"dateAdded", domain.OrderDesc, catalogue_models.RecordingSortFields, []string{"title", "artist", "theatre"}}
	personView    = listView{"name", domain.OrderAsc, catalogue_models.PersonSortFields, []string{"name", "info"}}
	theatreView   = listView{"name", domain.OrderAsc, catalogue_models.TheatreSortFields, []string{"name", "city", "country"}}
	userView      = listView{"email", domain.OrderAsc, catalogue_models.UserSortFields, []string{"email", "role"}}
)

type BrowseUsecase struct {
	recordings catalogue_interface.RecordingUsecase
	people     catalogue_interface.PersonUsecase
	theatres   catalogue_interface.TheatreUsecase
	users      catalogue_interface.UserUsecase
	pageSize   int
}

func NewBrowseUsecase(
	recordings catalogue_interface.RecordingUsecase,
	people catalogue_interface.PersonUsecase,
	theatres catalogue_interface.TheatreUsecase,
	users catalogue_interface.UserUsecase,
	pageSize int,
) *BrowseUsecase {
	if pageSize < 1 {
		pageSize = domain_util.DefaultPageSize
	}
	return &BrowseUsecase{
		recordings: recordings,
		people:     people,
		theatres:   theatres,
		users:      users,
		pageSize:   pageSize,
	}
}

func (uc *BrowseUsecase) Recordings(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Recording], error) {
	items, err := uc.recordings.List(ctx)
	if err != nil {
		return nil, err
	}
	return composeView(items, q, recordingView, uc.pageSize)
}

func (uc *BrowseUsecase) People(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Person], error) {
	items, err := uc.people.List(ctx)
	if err != nil {
		return nil, err
	}
	return composeView(items, q, personView, uc.pageSize)
}

func (uc *BrowseUsecase) Theatres(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Theatre], error) {
	items, err := uc.theatres.List(ctx)
	if err != nil {
		return nil, err
	}
	return composeView(items, q, theatreView, uc.pageSize)
}

func (uc *BrowseUsecase) Users(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.UserData], error) {
	items, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return composeView(items, q, userView, uc.pageSize)
}

type viewRecord interface {
	domain_util.FieldValuer
	domain_util.Searchable
}

// composeView 过滤 -> 排序 -> 分页
func composeView[T viewRecord](items []T, q *catalogue_models.ViewQuery, view listView, defaultPageSize int) (*domain_util.PageView[T], error) {
	if q == nil {
		q = &catalogue_models.ViewQuery{}
	}

	validations := []func() error{
		func() error {
			if q.Sort == "" {
				return nil
			}
			for _, f := range view.sortFields {
				if f == q.Sort {
					return nil
				}
			}
			return fmt.Errorf("%w: invalid sort field: %s", domain.ErrValidation, q.Sort)
		},
		func() error {
			order := strings.ToLower(q.Order)
			if order != "" && order != domain.OrderAsc && order != domain.OrderDesc {
				return fmt.Errorf("%w: invalid sort order: %s", domain.ErrValidation, q.Order)
			}
			return nil
		},
		func() error {
			if q.Scope == "" || q.Scope == domain_util.ScopeAll {
				return nil
			}
			for _, s := range view.scopes {
				if s == q.Scope {
					return nil
				}
			}
			return fmt.Errorf("%w: invalid search scope: %s", domain.ErrValidation, q.Scope)
		},
	}
	for _, validate := range validations {
		if err := validate(); err != nil {
			return nil, err
		}
	}

	state := domain_util.NewSortState(view.defaultSort, view.defaultOrder)
	if q.Sort != "" {
		state = domain_util.NewSortState(q.Sort, strings.ToLower(q.Order))
	} else if q.Order != "" {
		state.Order = domain.NormalizeOrder(strings.ToLower(q.Order))
	}

	scope := q.Scope
	if scope == "" {
		scope = domain_util.ScopeAll
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filtered := domain_util.FilterRecords(items, q.Search, scope)
	sorted := domain_util.SortRecords(filtered, state.Field, state.Order)
	page := domain_util.Paginate(sorted, q.Page, pageSize)
	return &page, nil
}
