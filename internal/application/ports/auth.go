package ports

import (
	"context"
)

type Auth interface {
	Login(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context, tokenValue string) error
}
