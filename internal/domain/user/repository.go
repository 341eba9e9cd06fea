package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-orders/internal/models"
)

const RoleOperator = "operator"

var ErrNotFound = errors.New("user not found")

type Repository interface {
	// FindByEmail matches the stored, lower-cased email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}
