package ports

// BlobStore is the byte half of the storage engine: a flat directory of
// objects keyed by filename.
type BlobStore interface {
	Exists(filename string) (bool, error)
	Write(filename string, data []byte) error
	Read(filename string) ([]byte, error)
	Rename(oldFilename, newFilename string) error
	Remove(filename string) error
}
