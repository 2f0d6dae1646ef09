package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/infrastructure/db/postgres"
)

var ErrLoginAlreadyExists = errors.New("login already exists")

type Repository struct {
	db postgres.PgxPool
}

func NewRepository(db postgres.PgxPool) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uint64(id)).Scan(
		&u.ID,
		&u.Login,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByLogin(ctx context.Context, login string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByLogin, login).Scan(
		&u.ID,
		&u.Login,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Login, req.PasswordHash,
	).Scan(
		&u.ID,
		&u.Login,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrLoginAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) error {
	_, err := r.db.Exec(ctx, DeleteUserByID, uint64(id))
	return err
}
