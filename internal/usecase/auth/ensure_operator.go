package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

type EnsureOperator struct {
	users domainUser.Repository
}

func NewEnsureOperator(users domainUser.Repository) *EnsureOperator {
	return &EnsureOperator{users: users}
}

// Execute creates the operator account if no user has that email yet. An
// existing account is left untouched, password included.
func (uc *EnsureOperator) Execute(
	ctx context.Context,
	name string,
	email string,
	password string,
) (*models.User, bool, error) {

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, false, errors.New("operator email and password are required")
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domainUser.ErrNotFound) {
		return nil, false, fmt.Errorf("find operator: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         domainUser.RoleOperator,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("create operator: %w", err)
	}

	return u, true, nil
}
