package client

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
)

type CreateClientInput struct {
	Name  string
	Email string
	Phone string
}

type CreateClient struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	emails EmailDomainChecker
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

// WithEmailDomainChecker enables the DNS check on the email domain.
func (uc *CreateClient) WithEmailDomainChecker(ch EmailDomainChecker) *CreateClient {
	uc.emails = ch
	return uc
}

// Execute validates the new record and persists it. Validation failures are
// returned as domain.Violations.
func (uc *CreateClient) Execute(
	ctx context.Context,
	actor Actor,
	in CreateClientInput,
) (*domain.Client, error) {

	c := &domain.Client{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	normalize(c)

	if err := domain.ValidateForCreation(*c).Err(); err != nil {
		return nil, err
	}

	if err := checkEmailDomain(ctx, uc.emails, c.Email); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	uc.audit.Dispatch(actor.event(audit.ActionClientCreated, c.ID, nil))

	return c, nil
}
