package file

import (
	domain "cloud-storage-api/internal/domain/file"
)

func ToResponseFileInfos(infos []domain.Info) FileInfos {
	fis := make(FileInfos, len(infos))
	for idx, in := range infos {
		fis[idx] = FileInfo{
			Filename: in.Filename,
			Size:     in.Size,
		}
	}

	return fis
}
