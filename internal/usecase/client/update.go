package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
)

type UpdateClientInput struct {
	ID    uint
	Name  string
	Email string
	Phone string
}

type UpdateClient struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	emails EmailDomainChecker
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// WithEmailDomainChecker enables the DNS check on the email domain.
func (uc *UpdateClient) WithEmailDomainChecker(ch EmailDomainChecker) *UpdateClient {
	uc.emails = ch
	return uc
}

// Execute replaces name, email and phone of an existing client. The id is
// never changed.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	actor Actor,
	in UpdateClientInput,
) (*domain.Client, error) {

	current, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Name = in.Name
	next.Email = in.Email
	next.Phone = in.Phone
	normalize(&next)

	vs := append(
		domain.ValidateForIdentification(next),
		domain.ValidateForCreation(next)...,
	)
	if err := vs.Err(); err != nil {
		return nil, err
	}

	if next.Email != current.Email {
		if err := checkEmailDomain(ctx, uc.emails, next.Email); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, &next); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(CodeClientNotFound)
		}
		return nil, fmt.Errorf("update client: %w", err)
	}

	uc.audit.Dispatch(actor.event(
		audit.ActionClientUpdated,
		next.ID,
		map[string]any{"changed": changedFields(*current, next)},
	))

	return &next, nil
}

func changedFields(before, after domain.Client) []string {
	changed := []string{}
	if before.Name != after.Name {
		changed = append(changed, domain.FieldName)
	}
	if before.Email != after.Email {
		changed = append(changed, domain.FieldEmail)
	}
	if before.Phone != after.Phone {
		changed = append(changed, domain.FieldPhone)
	}
	return changed
}
