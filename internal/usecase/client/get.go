package client

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
)

const CodeClientNotFound = "client_not_found"

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*domain.Client, error) {
	return load(ctx, uc.repo, id)
}

func load(ctx context.Context, repo domain.Repository, id uint) (*domain.Client, error) {
	c, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(CodeClientNotFound)
		}
		return nil, err
	}
	return c, nil
}
