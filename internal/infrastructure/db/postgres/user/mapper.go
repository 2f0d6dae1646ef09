package user

import (
	domain "cloud-storage-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Login:        model.Login,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
	}

	return u
}
