package token

import (
	"time"

	"cloud-storage-api/internal/domain/user"
)

type (
	ID uint64

	// Token is an opaque bearer credential. Active is flipped false on
	// logout; ExpiresAt is enforced only by the periodic sweep.
	Token struct {
		ID        ID
		Value     string
		Active    bool
		UserID    user.ID
		ExpiresAt time.Time
	}
	Tokens []*Token
)
