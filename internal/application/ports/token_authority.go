package ports

import (
	"context"

	"cloud-storage-api/internal/domain/user"
)

// TokenAuthority owns the bearer-token lifecycle. Validate does not compare
// expiry against now; expired rows are removed by the scheduled sweep only.
type TokenAuthority interface {
	Issue(ctx context.Context, userID user.ID) (string, error)
	EnsureActiveToken(ctx context.Context, userID user.ID) (string, error)
	Validate(ctx context.Context, value string) (bool, error)
	Invalidate(ctx context.Context, value string) error
	ResolveUser(ctx context.Context, value string) (*user.User, error)
	SweepExpired(ctx context.Context) (int64, error)
	SweepWorker(ctx context.Context)
}
