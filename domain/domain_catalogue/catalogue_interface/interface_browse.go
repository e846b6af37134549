package catalogue_interface

import (
	"context"

	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/domain/domain_util"
)

// BrowseUsecase 列表视图：快照 -> 过滤 -> 排序 -> 分页
type BrowseUsecase interface {
	Recordings(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Recording], error)
	People(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Person], error)
	Theatres(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.Theatre], error)
	Users(ctx context.Context, q *catalogue_models.ViewQuery) (*domain_util.PageView[*catalogue_models.UserData], error)
}
