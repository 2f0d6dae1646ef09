package ports

import (
	"context"

	"cloud-storage-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	CreateUser(ctx context.Context, login, password string) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
}
