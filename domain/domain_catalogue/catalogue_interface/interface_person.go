package catalogue_interface

import (
	"context"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type PersonRepository interface {
	domain.BaseRepository[catalogue_models.Person]
}

type PersonUsecase interface {
	List(ctx context.Context) ([]*catalogue_models.Person, error)
	Get(ctx context.Context, id string) (*catalogue_models.Person, error)
	Create(ctx context.Context, input *catalogue_models.PersonInput) (*catalogue_models.Person, error)
	Update(ctx context.Context, id string, input *catalogue_models.PersonInput) (*catalogue_models.Person, error)
	Delete(ctx context.Context, id string) error
}
