package usecase_catalogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type AuthUsecase struct {
	users   catalogue_interface.UserRepository
	cache   *QueryCache
	timeout time.Duration
}

func NewAuthUsecase(users catalogue_interface.UserRepository, cache *QueryCache, timeout time.Duration) *AuthUsecase {
	return &AuthUsecase{users: users, cache: cache, timeout: timeout}
}

// Resolve 按邮箱查角色；users 中没有对应文档的主体视为未认证
func (uc *AuthUsecase) Resolve(ctx context.Context, uid, email, displayName string) (*catalogue_models.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: principal without email", domain.ErrUnauthorized)
	}

	user, err := CachedQuery(ctx, uc.cache, domain.CollectionUsers, "email:"+email, "", func(ctx context.Context) (*catalogue_models.UserData, error) {
		ctx, cancel := context.WithTimeout(ctx, uc.timeout)
		defer cancel()
		return uc.users.GetByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no user record for %s", domain.ErrUnauthorized, email)
		}
		return nil, err
	}

	return &catalogue_models.Principal{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		Role:        user.Role,
	}, nil
}
