package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteClient) Execute(
	ctx context.Context,
	actor Actor,
	id uint,
) error {

	c, err := load(ctx, uc.repo, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(CodeClientNotFound)
		}
		return fmt.Errorf("delete client: %w", err)
	}

	uc.audit.Dispatch(actor.event(audit.ActionClientDeleted, c.ID, nil))

	return nil
}
