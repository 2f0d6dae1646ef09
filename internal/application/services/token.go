package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cloud-storage-api/internal/application/ports"
	domain "cloud-storage-api/internal/domain/token"
	"cloud-storage-api/internal/domain/user"
)

const tokenTTL = 24 * time.Hour

type TokenService struct {
	tokenRepository domain.Repository
	userRepository  user.Repository
	logger          *zap.Logger
	mCounter        *prometheus.CounterVec
}

func NewTokenService(
	tokenRepository domain.Repository,
	userRepository user.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.TokenAuthority {
	return &TokenService{
		tokenRepository: tokenRepository,
		userRepository:  userRepository,
		logger:          logger,
		mCounter:        mCounter,
	}
}

// Issue mints a fresh opaque token bound to userID without checking for other
// active tokens; callers wanting reuse go through EnsureActiveToken.
func (ts *TokenService) Issue(ctx context.Context, userID user.ID) (string, error) {
	t := &domain.Token{
		Value:     uuid.NewString(),
		Active:    true,
		UserID:    userID,
		ExpiresAt: time.Now().Add(tokenTTL),
	}

	if _, err := ts.tokenRepository.CreateToken(ctx, t); err != nil {
		return "", err
	}

	ts.mCounter.WithLabelValues("tokens_issued_total").Inc()

	return t.Value, nil
}

// EnsureActiveToken returns the user's first active token value, issuing a
// new one only when none exists.
func (ts *TokenService) EnsureActiveToken(ctx context.Context, userID user.ID) (string, error) {
	existing, err := ts.tokenRepository.FetchFirstActiveByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Value, nil
	}

	return ts.Issue(ctx, userID)
}

// Validate reports whether the value names an active token. Expiry is not
// compared against now here; expired rows live until the sweep removes them.
func (ts *TokenService) Validate(ctx context.Context, value string) (bool, error) {
	t, err := ts.tokenRepository.FetchTokenByValue(ctx, value)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}

	return t.Active, nil
}

// Invalidate flips the token inactive; a missing value is a silent no-op.
func (ts *TokenService) Invalidate(ctx context.Context, value string) error {
	return ts.tokenRepository.DeactivateToken(ctx, value)
}

func (ts *TokenService) ResolveUser(ctx context.Context, value string) (*user.User, error) {
	t, err := ts.tokenRepository.FetchTokenByValue(ctx, value)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	return ts.userRepository.FetchUserByID(ctx, t.UserID)
}

// SweepExpired deletes every token whose expiry is strictly in the past,
// regardless of the active flag.
func (ts *TokenService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := ts.tokenRepository.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	ts.mCounter.WithLabelValues("tokens_swept_total").Add(float64(n))
	ts.logger.Info("expired tokens swept", zap.Int64("removed", n))

	return n, nil
}

// SweepWorker fires every Sunday at midnight local time until ctx is done.
func (ts *TokenService) SweepWorker(ctx context.Context) {
	ts.logger.Info("starting token sweep worker")

	defer func() {
		ts.logger.Info("token sweep worker gracefully stopped")
	}()

	for {
		timer := time.NewTimer(time.Until(nextSweepTime(time.Now())))
		select {
		case <-timer.C:
			if _, err := ts.SweepExpired(ctx); err != nil {
				ts.logger.Error("token sweep error", zap.Error(err))
			}
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// nextSweepTime returns the next Sunday 00:00 strictly after now.
func nextSweepTime(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next = next.AddDate(0, 0, (7-int(now.Weekday()))%7)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
