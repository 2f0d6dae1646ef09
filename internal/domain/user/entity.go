package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Login        string
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)
