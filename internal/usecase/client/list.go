package client

import (
	"context"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type ListClientsInput struct {
	Query string
	Page  int
	Limit int
}

type ListClientsOutput struct {
	Clients []domain.Client
	Total   int64
	Page    int
	Limit   int
}

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	in ListClientsInput,
) (*ListClientsOutput, error) {

	page := in.Page
	if page <= 0 {
		page = 1
	}

	limit := in.Limit
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	clients, total, err := uc.repo.List(ctx, domain.ListFilter{
		Query:  in.Query,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListClientsOutput{
		Clients: clients,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
