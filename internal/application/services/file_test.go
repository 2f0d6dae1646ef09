package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainUser "cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
	"cloud-storage-api/internal/infrastructure/mq"
)

func newFileService(t *testing.T) (*fakeBlob, *fakeFileRepo, *fakeMQ, *FileService) {
	t.Helper()
	blob := newFakeBlob()
	repo := newFakeFileRepo()
	rabbit := newFakeMQ()
	admission := NewAdmission([]string{"jpeg", "pdf", "docx", "txt"}, 10<<20)
	fs := NewFileService(blob, repo, admission, rabbit, newTestCounter(), zap.NewNop()).(*FileService)
	return blob, repo, rabbit, fs
}

func TestFileService_UploadThenDownload(t *testing.T) {
	_, _, rabbit, fs := newFileService(t)
	ctx := context.Background()
	payload := []byte("the quick brown fox")

	uploaded, err := fs.Upload(ctx, domainUser.ID(1), "fox.txt", payload)
	require.NoError(t, err)
	require.NotNil(t, uploaded)
	assert.Equal(t, "fox.txt", uploaded.Filename)
	assert.Equal(t, int64(len(payload)), uploaded.Size)

	want, err := Checksum(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, want, uploaded.Checksum)

	got, err := fs.Download(ctx, "fox.txt")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	events := rabbit.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionFileUploaded, events[0].Action)
	assert.Equal(t, "fox.txt", events[0].Filename)
}

func TestFileService_UploadRejectsBadPayloads(t *testing.T) {
	_, repo, _, fs := newFileService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		payload  []byte
	}{
		{"empty payload", "a.txt", nil},
		{"blank filename", "  ", []byte("x")},
		{"disallowed extension", "a.exe", []byte("x")},
		{"path separator", "../a.txt", []byte("x")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.Upload(ctx, domainUser.ID(1), tt.filename, tt.payload)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}

	// nothing reached the metadata store
	files, err := repo.FetchFilesByOwner(ctx, domainUser.ID(1), 0)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileService_UploadConflictLeavesNoMetadata(t *testing.T) {
	blob, repo, _, fs := newFileService(t)
	ctx := context.Background()

	// orphaned bytes without a metadata record still block the name
	require.NoError(t, blob.Write("taken.txt", []byte("orphan")))

	_, err := fs.Upload(ctx, domainUser.ID(1), "taken.txt", []byte("fresh"))
	require.ErrorIs(t, err, errs.ErrConflict)

	f, err := repo.FetchFileByName(ctx, "taken.txt")
	require.NoError(t, err)
	assert.Nil(t, f)

	// the original bytes are untouched
	data, err := blob.Read("taken.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("orphan"), data)
}

func TestFileService_DownloadUnknown(t *testing.T) {
	_, _, _, fs := newFileService(t)

	_, err := fs.Download(context.Background(), "ghost.txt")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFileService_Rename(t *testing.T) {
	blob, repo, rabbit, fs := newFileService(t)
	ctx := context.Background()
	payload := []byte("contents")

	_, err := fs.Upload(ctx, domainUser.ID(1), "old.txt", payload)
	require.NoError(t, err)
	rabbit.drain()

	require.NoError(t, fs.Rename(ctx, domainUser.ID(1), "old.txt", "new.txt"))

	// old name is gone from both halves
	exists, err := blob.Exists("old.txt")
	require.NoError(t, err)
	assert.False(t, exists)
	f, err := repo.FetchFileByName(ctx, "old.txt")
	require.NoError(t, err)
	assert.Nil(t, f)

	// new name carries the same bytes and metadata
	data, err := fs.Download(ctx, "new.txt")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	f, err = repo.FetchFileByName(ctx, "new.txt")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, domainUser.ID(1), f.OwnerID)

	events := rabbit.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionFileRenamed, events[0].Action)
	assert.Equal(t, "new.txt", events[0].Filename)
}

func TestFileService_RenameForbiddenForNonOwner(t *testing.T) {
	blob, repo, _, fs := newFileService(t)
	ctx := context.Background()

	_, err := fs.Upload(ctx, domainUser.ID(1), "alice.txt", []byte("private"))
	require.NoError(t, err)

	err = fs.Rename(ctx, domainUser.ID(2), "alice.txt", "stolen.txt")
	require.ErrorIs(t, err, errs.ErrForbidden)

	// nothing moved
	exists, err := blob.Exists("alice.txt")
	require.NoError(t, err)
	assert.True(t, exists)
	f, err := repo.FetchFileByName(ctx, "alice.txt")
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestFileService_RenameUnknownFile(t *testing.T) {
	_, _, _, fs := newFileService(t)

	err := fs.Rename(context.Background(), domainUser.ID(1), "ghost.txt", "new.txt")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFileService_RenameMissingBytesIsNotFound(t *testing.T) {
	blob, _, _, fs := newFileService(t)
	ctx := context.Background()

	_, err := fs.Upload(ctx, domainUser.ID(1), "half.txt", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, blob.Remove("half.txt"))

	err = fs.Rename(ctx, domainUser.ID(1), "half.txt", "whole.txt")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFileService_Delete(t *testing.T) {
	blob, repo, rabbit, fs := newFileService(t)
	ctx := context.Background()

	_, err := fs.Upload(ctx, domainUser.ID(1), "gone.txt", []byte("x"))
	require.NoError(t, err)
	rabbit.drain()

	require.NoError(t, fs.Delete(ctx, domainUser.ID(1), "gone.txt"))

	exists, err := blob.Exists("gone.txt")
	require.NoError(t, err)
	assert.False(t, exists)
	f, err := repo.FetchFileByName(ctx, "gone.txt")
	require.NoError(t, err)
	assert.Nil(t, f)

	events := rabbit.drain()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionFileDeleted, events[0].Action)
}

func TestFileService_DeleteForbiddenForNonOwner(t *testing.T) {
	_, _, _, fs := newFileService(t)
	ctx := context.Background()

	_, err := fs.Upload(ctx, domainUser.ID(1), "alice.txt", []byte("private"))
	require.NoError(t, err)

	err = fs.Delete(ctx, domainUser.ID(2), "alice.txt")
	require.ErrorIs(t, err, errs.ErrForbidden)

	// still downloadable
	_, err = fs.Download(ctx, "alice.txt")
	require.NoError(t, err)
}

func TestFileService_DeleteUnknownFile(t *testing.T) {
	_, _, _, fs := newFileService(t)

	err := fs.Delete(context.Background(), domainUser.ID(1), "ghost.txt")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFileService_ListForOwner(t *testing.T) {
	_, _, _, fs := newFileService(t)
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := fs.Upload(ctx, domainUser.ID(1), name, []byte("x"))
		require.NoError(t, err)
	}
	_, err := fs.Upload(ctx, domainUser.ID(2), "other.txt", []byte("y"))
	require.NoError(t, err)

	infos, err := fs.ListForOwner(ctx, domainUser.ID(1), 0)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "a.txt", infos[0].Filename)
	assert.Equal(t, int64(1), infos[0].Size)

	// limit caps the page
	infos, err = fs.ListForOwner(ctx, domainUser.ID(1), 2)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	// other owners never leak in
	infos, err = fs.ListForOwner(ctx, domainUser.ID(2), 0)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "other.txt", infos[0].Filename)

	// an owner with nothing stored gets an empty page
	infos, err = fs.ListForOwner(ctx, domainUser.ID(3), 0)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestFileService_TwoOwnersFullScenario(t *testing.T) {
	_, _, _, fs := newFileService(t)
	ctx := context.Background()
	alice, bob := domainUser.ID(1), domainUser.ID(2)

	_, err := fs.Upload(ctx, alice, "shared-name.txt", []byte("alice's"))
	require.NoError(t, err)

	// the namespace is store-wide, so bob cannot reuse the name
	_, err = fs.Upload(ctx, bob, "shared-name.txt", []byte("bob's"))
	require.ErrorIs(t, err, errs.ErrConflict)

	// bob can read but not touch alice's file
	data, err := fs.Download(ctx, "shared-name.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice's"), data)
	require.ErrorIs(t, fs.Rename(ctx, bob, "shared-name.txt", "bobs.txt"), errs.ErrForbidden)
	require.ErrorIs(t, fs.Delete(ctx, bob, "shared-name.txt"), errs.ErrForbidden)

	// alice renames and deletes freely
	require.NoError(t, fs.Rename(ctx, alice, "shared-name.txt", "alices.txt"))
	require.NoError(t, fs.Delete(ctx, alice, "alices.txt"))

	// the name is free again
	_, err = fs.Upload(ctx, bob, "shared-name.txt", []byte("bob's"))
	require.NoError(t, err)
}
