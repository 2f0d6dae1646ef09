package token

import (
	"context"
	"time"

	"cloud-storage-api/internal/domain/user"
)

type Repository interface {
	CreateToken(ctx context.Context, req *Token) (*Token, error)
	FetchTokenByValue(ctx context.Context, value string) (*Token, error)
	FetchFirstActiveByUser(ctx context.Context, userID user.ID) (*Token, error)
	DeactivateToken(ctx context.Context, value string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
