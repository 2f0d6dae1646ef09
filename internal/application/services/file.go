package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cloud-storage-api/internal/application/ports"
	domain "cloud-storage-api/internal/domain/file"
	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
	"cloud-storage-api/internal/infrastructure/mq"
)

// FileService keeps the byte store and the metadata store in agreement:
// every operation runs the byte-store write first and the metadata write
// last, so a crash in between leaves a state recoverable by the operator.
// The two writes are not jointly atomic; see DESIGN.md.
type FileService struct {
	blob           ports.BlobStore
	fileRepository domain.Repository
	admission      *Admission
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewFileService(
	blob ports.BlobStore,
	fileRepository domain.Repository,
	admission *Admission,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.FileService {
	return &FileService{
		blob:           blob,
		fileRepository: fileRepository,
		admission:      admission,
		mq:             rabbit,
		mCounter:       mCounter,
		logger:         logger,
	}
}

// Upload admits the payload, then writes bytes, computes the checksum and
// inserts the metadata record. The conflict check is against the byte store,
// not the metadata table, so orphaned bytes from an earlier partial failure
// still block reuse of the name.
func (fs *FileService) Upload(ctx context.Context, ownerID user.ID, filename string, payload []byte) (*domain.File, error) {
	if err := fs.admission.Admit(filename, int64(len(payload))); err != nil {
		return nil, err
	}

	exists, err := fs.blob.Exists(filename)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("file %q: %w", filename, errs.ErrConflict)
	}

	if err = fs.blob.Write(filename, payload); err != nil {
		return nil, err
	}

	sum, err := Checksum(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.CreateFile(ctx, &domain.File{
		Filename: filename,
		Size:     int64(len(payload)),
		Checksum: sum,
		OwnerID:  ownerID,
	})
	if err != nil {
		// Bytes are committed but the record is not: a recoverable orphan.
		fs.logger.Error("metadata insert failed after byte write, orphaned bytes remain",
			zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	fs.publish(mq.ActionFileUploaded, ownerID, filename, out.Size)
	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

// Download returns the full byte content. It is deliberately not
// ownership-scoped; see DESIGN.md.
func (fs *FileService) Download(ctx context.Context, filename string) ([]byte, error) {
	data, err := fs.blob.Read(filename)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Rename moves the byte object first and updates the metadata record last,
// so a crash mid-operation is recoverable by re-running with swapped names.
// A pre-existing object under newFilename is overwritten (last writer wins).
func (fs *FileService) Rename(ctx context.Context, callerID user.ID, oldFilename, newFilename string) error {
	f, err := fs.fileRepository.FetchFileByName(ctx, oldFilename)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("file %q not found in metadata: %w", oldFilename, errs.ErrNotFound)
	}

	if f.OwnerID != callerID {
		return fmt.Errorf("rename of %q: %w", oldFilename, errs.ErrForbidden)
	}

	if isBlank(oldFilename) || isBlank(newFilename) {
		return fmt.Errorf("filename must not be blank: %w", errs.ErrInvalidArgument)
	}

	exists, err := fs.blob.Exists(oldFilename)
	if err != nil {
		return err
	}
	if !exists {
		fs.logger.Error("integrity anomaly: metadata exists without bytes",
			zap.String("filename", oldFilename))
		return fmt.Errorf("bytes for %q missing: %w", oldFilename, errs.ErrNotFound)
	}

	if err = fs.blob.Rename(oldFilename, newFilename); err != nil {
		return err
	}

	if err = fs.fileRepository.UpdateFilename(ctx, f.ID, newFilename); err != nil {
		fs.logger.Error("metadata update failed after byte rename, record is stale",
			zap.String("old", oldFilename), zap.String("new", newFilename), zap.Error(err))
		return err
	}

	fs.publish(mq.ActionFileRenamed, callerID, newFilename, f.Size)
	fs.mCounter.WithLabelValues("files_renamed_total").Inc()

	return nil
}

// ListForOwner returns (filename, size) pairs for the owner's files in a
// stable store order. limit <= 0 means unlimited.
func (fs *FileService) ListForOwner(ctx context.Context, ownerID user.ID, limit int) ([]domain.Info, error) {
	files, err := fs.fileRepository.FetchFilesByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.Info, len(files))
	for idx, f := range files {
		infos[idx] = domain.Info{Filename: f.Filename, Size: f.Size}
	}

	return infos, nil
}

// Delete removes the byte object first, then the metadata record.
func (fs *FileService) Delete(ctx context.Context, callerID user.ID, filename string) error {
	f, err := fs.fileRepository.FetchFileByName(ctx, filename)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("file %q not found in metadata: %w", filename, errs.ErrNotFound)
	}

	if f.OwnerID != callerID {
		return fmt.Errorf("delete of %q: %w", filename, errs.ErrForbidden)
	}

	exists, err := fs.blob.Exists(filename)
	if err != nil {
		return err
	}
	if !exists {
		fs.logger.Error("integrity anomaly: metadata exists without bytes",
			zap.String("filename", filename))
		return fmt.Errorf("bytes for %q missing: %w", filename, errs.ErrNotFound)
	}

	if err = fs.blob.Remove(filename); err != nil {
		return fmt.Errorf("removing bytes for %q: %w", filename, err)
	}

	if err = fs.fileRepository.DeleteFile(ctx, f.ID); err != nil {
		fs.logger.Error("metadata delete failed after byte removal, record is stale",
			zap.String("filename", filename), zap.Error(err))
		return err
	}

	fs.publish(mq.ActionFileDeleted, callerID, filename, f.Size)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) publish(action string, userID user.ID, filename string, size int64) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		UserID:   uint64(userID),
		Filename: filename,
		Size:     size,
	}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
