package repository

import (
	"context"
	"errors"
	"sync"

	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

var errEmailTaken = errors.New("email already registered")

type UserMemoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	byEmail map[string]models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		nextID:  1,
		byEmail: make(map[string]models.User),
	}
}

func (r *UserMemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domainUser.ErrNotFound
	}
	return &u, nil
}

func (r *UserMemoryRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return errEmailTaken
	}

	u.ID = r.nextID
	r.nextID++
	r.byEmail[u.Email] = *u
	return nil
}

var _ domainUser.Repository = (*UserMemoryRepository)(nil)
