package file

type (
	RenameRequest struct {
		Filename string `json:"filename"`
	}

	FileInfo struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
	}
	FileInfos []FileInfo
)
