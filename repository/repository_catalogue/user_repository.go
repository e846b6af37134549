package repository_catalogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
	"github.com/stagearchive/catalogue/mongo"
	"github.com/stagearchive/catalogue/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type userRepository struct {
	*repository.BaseMongoRepository[catalogue_models.UserData]
}

func NewUserRepository(db mongo.Database) catalogue_interface.UserRepository {
	return &userRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[catalogue_models.UserData](db, domain.CollectionUsers, "email"),
	}
}

// GetByEmail 邮箱统一小写存储；未找到返回 ErrNotFound
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*catalogue_models.UserData, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", domain.ErrValidation)
	}
	user, err := r.GetOneByFilter(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, email)
	}
	return user, nil
}
