package validators

import (
	"context"
	"net"
	"strings"
)

// Resolver is the subset of net.Resolver used for domain checks.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type EmailDomainChecker struct {
	resolver Resolver
}

func NewEmailDomainChecker(r Resolver) *EmailDomainChecker {
	if r == nil {
		r = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: r}
}

// IsDomainValid reports whether the domain part of email accepts mail (MX)
// or at least resolves to an address.
func (ch *EmailDomainChecker) IsDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := ch.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := ch.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
