package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
)

// Actor identifies who triggered a write, for the audit trail.
type Actor struct {
	UserID    *uint
	Role      string
	RequestID string
}

func (a Actor) event(action string, entityID *uint, meta any) audit.Event {
	return audit.Event{
		UserID:    a.UserID,
		UserRole:  a.Role,
		Action:    action,
		Entity:    audit.EntityClient,
		EntityID:  entityID,
		RequestID: a.RequestID,
		Metadata:  meta,
	}
}

const CodeInvalidEmailDomain = "invalid_email_domain"

// EmailDomainChecker is an optional network check run after the record
// passes validation.
type EmailDomainChecker interface {
	IsDomainValid(ctx context.Context, email string) bool
}

func checkEmailDomain(ctx context.Context, ch EmailDomainChecker, email string) error {
	if ch == nil || ch.IsDomainValid(ctx, email) {
		return nil
	}
	return httperr.ErrBusiness(CodeInvalidEmailDomain)
}

func normalize(c *domain.Client) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
}
