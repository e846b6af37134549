package catalogue_interface

import (
	"context"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type TheatreRepository interface {
	domain.BaseRepository[catalogue_models.Theatre]
}

type TheatreUsecase interface {
	List(ctx context.Context) ([]*catalogue_models.Theatre, error)
	Get(ctx context.Context, id string) (*catalogue_models.Theatre, error)
	Create(ctx context.Context, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error)
	Update(ctx context.Context, id string, input *catalogue_models.TheatreInput) (*catalogue_models.Theatre, error)
	Delete(ctx context.Context, id string) error
}
