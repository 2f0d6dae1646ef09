package file

import (
	"cloud-storage-api/internal/domain/user"
)

type (
	ID uint64

	// File is the metadata half of a stored file. Filename is unique across
	// the whole store, not per owner; OwnerID is immutable after creation.
	File struct {
		ID       ID
		Filename string
		Size     int64
		Checksum string
		OwnerID  user.ID
	}
	Files []*File

	// Info is the listing projection: checksum and owner are never exposed.
	Info struct {
		Filename string
		Size     int64
	}
)
