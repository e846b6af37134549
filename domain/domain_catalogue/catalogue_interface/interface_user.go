package catalogue_interface

import (
	"context"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type UserRepository interface {
	domain.BaseRepository[catalogue_models.UserData]
	GetByEmail(ctx context.Context, email string) (*catalogue_models.UserData, error)
}

type UserUsecase interface {
	List(ctx context.Context) ([]*catalogue_models.UserData, error)
	Create(ctx context.Context, input *catalogue_models.UserInput) (*catalogue_models.UserData, error)
	UpdateRole(ctx context.Context, id string, input *catalogue_models.UserRoleInput) (*catalogue_models.UserData, error)
	Delete(ctx context.Context, id string) error
}

// AuthUsecase 把身份提供方的主体映射为带角色的 Principal
type AuthUsecase interface {
	Resolve(ctx context.Context, uid, email, displayName string) (*catalogue_models.Principal, error)
}
