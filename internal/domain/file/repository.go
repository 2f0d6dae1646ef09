package file

import (
	"context"

	"cloud-storage-api/internal/domain/user"
)

type Repository interface {
	FetchFileByName(ctx context.Context, filename string) (*File, error)
	FetchFilesByOwner(ctx context.Context, ownerID user.ID, limit int) (Files, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
	UpdateFilename(ctx context.Context, id ID, newFilename string) error
	DeleteFile(ctx context.Context, id ID) error
}
