package ports

import (
	"context"

	"cloud-storage-api/internal/domain/file"
	"cloud-storage-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, ownerID user.ID, filename string, payload []byte) (*file.File, error)
	Download(ctx context.Context, filename string) ([]byte, error)
	Rename(ctx context.Context, callerID user.ID, oldFilename, newFilename string) error
	ListForOwner(ctx context.Context, ownerID user.ID, limit int) ([]file.Info, error)
	Delete(ctx context.Context, callerID user.ID, filename string) error
}
