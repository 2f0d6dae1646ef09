package token

import (
	"time"
)

type (
	Token struct {
		ID        uint64
		Value     string
		Active    bool
		UserID    uint64
		ExpiredAt time.Time
	}
	Tokens []*Token
)
