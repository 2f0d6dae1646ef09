package token

import (
	domain "cloud-storage-api/internal/domain/token"
	"cloud-storage-api/internal/domain/user"
)

func fromDBModel(model *Token) *domain.Token {
	var t = &domain.Token{
		ID:        domain.ID(model.ID),
		Value:     model.Value,
		Active:    model.Active,
		UserID:    user.ID(model.UserID),
		ExpiresAt: model.ExpiredAt,
	}

	return t
}
