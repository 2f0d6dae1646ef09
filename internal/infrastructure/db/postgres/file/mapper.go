package file

import (
	domain "cloud-storage-api/internal/domain/file"
	"cloud-storage-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:       domain.ID(model.ID),
		Filename: model.Filename,
		Size:     model.Size,
		Checksum: model.Checksum,
		OwnerID:  user.ID(model.UserID),
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fls := make(domain.Files, len(*models))
	for idx, f := range *models {
		fls[idx] = fromDBModel(f)
	}

	return fls
}
