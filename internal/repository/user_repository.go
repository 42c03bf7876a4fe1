package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"gorm.io/gorm"
)

// UserRepository is the profile/role store. Unlike the collection
// repositories it sits directly on relational rows; account records are the
// one place per-record writes matter.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByNIM(ctx context.Context, nim string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByNIM(ctx context.Context, nim string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "nim = ?", nim).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", nim, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
