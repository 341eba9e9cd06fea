package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

var _ domainUser.Repository = (*UserGormRepository)(nil)
