package repository

import (
	"context"

	"gorm.io/gorm"

	"vyoma/domain"
)

type userSQLRepository struct {
	db *gorm.DB
}

func NewSQLUserRepository(db *gorm.DB) domain.UserRepository {
	return &userSQLRepository{db: db}
}

func (r *userSQLRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}

func (r *userSQLRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}

func (r *userSQLRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return translateDBError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userSQLRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return translateDBError(r.db.WithContext(ctx).Save(user).Error)
}
