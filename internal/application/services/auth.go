package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"cloud-storage-api/internal/application/ports"
	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
)

type AuthService struct {
	tokens         ports.TokenAuthority
	userRepository user.Repository
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	tokens ports.TokenAuthority,
	userRepository user.Repository,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		tokens:         tokens,
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

// Login verifies credentials and returns the user's active token, reusing an
// existing one when present. Unknown logins and bad passwords are
// indistinguishable to the caller.
func (as *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	u, err := as.userRepository.FetchUserByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	value, err := as.tokens.EnsureActiveToken(ctx, u.ID)
	if err != nil {
		return "", err
	}

	as.mCounter.WithLabelValues("logins_total").Inc()

	return value, nil
}

// Logout deactivates the token; unknown values are a no-op.
func (as *AuthService) Logout(ctx context.Context, tokenValue string) error {
	return as.tokens.Invalidate(ctx, tokenValue)
}
