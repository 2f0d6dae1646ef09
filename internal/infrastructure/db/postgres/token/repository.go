package token

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"cloud-storage-api/internal/domain/token"
	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.PgxPool
}

func NewRepository(db postgres.PgxPool) token.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateToken(ctx context.Context, req *token.Token) (*token.Token, error) {
	t := new(Token)

	err := r.db.QueryRow(
		ctx,
		InsertToken,
		req.Value, req.Active, uint64(req.UserID), req.ExpiresAt,
	).Scan(
		&t.ID,
		&t.Value,
		&t.Active,
		&t.UserID,
		&t.ExpiredAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(t), err
}

func (r *Repository) FetchTokenByValue(ctx context.Context, value string) (*token.Token, error) {
	t := new(Token)
	err := r.db.QueryRow(ctx, SelectTokenByValue, value).Scan(
		&t.ID,
		&t.Value,
		&t.Active,
		&t.UserID,
		&t.ExpiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), err
}

func (r *Repository) FetchFirstActiveByUser(ctx context.Context, userID user.ID) (*token.Token, error) {
	t := new(Token)
	err := r.db.QueryRow(ctx, SelectFirstActiveByUser, uint64(userID)).Scan(
		&t.ID,
		&t.Value,
		&t.Active,
		&t.UserID,
		&t.ExpiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(t), err
}

// DeactivateToken is idempotent: updating a missing value affects zero rows
// and is not an error.
func (r *Repository) DeactivateToken(ctx context.Context, value string) error {
	_, err := r.db.Exec(ctx, DeactivateByValue, value)
	return err
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteExpiredBefore, now)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
