package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

const CodeInvalidCredentials = "invalid_credentials"

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

type Login struct {
	users  domainUser.Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLogin(
	users domainUser.Repository,
	secret string,
	ttl time.Duration,
) *Login {
	return &Login{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Execute checks the password and issues a token whose sub claim is the
// user id. Unknown email and wrong password fail the same way.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginOutput, error) {

	u, err := uc.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			return nil, httperr.ErrBusiness(CodeInvalidCredentials)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}

	now := uc.now()
	expiresAt := now.Add(uc.ttl)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}).SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
