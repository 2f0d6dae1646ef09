package file

type (
	File struct {
		ID       uint64
		Filename string
		Size     int64
		Checksum string
		UserID   uint64
	}
	Files []*File
)
