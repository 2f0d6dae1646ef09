package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cloud-storage-api/internal/domain/file"
	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
	"cloud-storage-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.PgxPool
}

func NewRepository(db postgres.PgxPool) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileByName(ctx context.Context, filename string) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByName, filename).Scan(
		&f.ID,
		&f.Filename,
		&f.Size,
		&f.Checksum,
		&f.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFilesByOwner(ctx context.Context, ownerID user.ID, limit int) (file.Files, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, SelectFilesByOwnerLimited, uint64(ownerID), limit)
	} else {
		rows, err = r.db.Query(ctx, SelectFilesByOwner, uint64(ownerID))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fls Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.Filename,
			&f.Size,
			&f.Checksum,
			&f.UserID,
		); err != nil {
			return nil, err
		}

		fls = append(fls, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fls), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.Filename, req.Size, req.Checksum, uint64(req.OwnerID),
	).Scan(
		&f.ID,
		&f.Filename,
		&f.Size,
		&f.Checksum,
		&f.UserID,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) UpdateFilename(ctx context.Context, id file.ID, newFilename string) error {
	tag, err := r.db.Exec(ctx, UpdateFilenameByID, newFilename, uint64(id))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteFile(ctx context.Context, id file.ID) error {
	tag, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}

	return nil
}
