package user

import (
	domain "cloud-storage-api/internal/domain/user"
)

type User struct {
	ID    uint64 `json:"id"`
	Login string `json:"login"`
}

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:    uint64(uDomain.ID),
		Login: uDomain.Login,
	}

	return u
}
