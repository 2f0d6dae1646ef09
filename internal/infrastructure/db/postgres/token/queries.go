package token

const (
	SelectTokenByValue = `
		SELECT id, value, active, user_id, expired_at
		FROM tokens
		WHERE value = $1
	`
	SelectFirstActiveByUser = `
		SELECT id, value, active, user_id, expired_at
		FROM tokens
		WHERE user_id = $1 AND active
		ORDER BY id
		LIMIT 1
	`
	InsertToken = `
		INSERT INTO tokens (value, active, user_id, expired_at)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, value, active, user_id, expired_at
	`
	DeactivateByValue = `
		UPDATE tokens
		SET active = false
		WHERE value = $1
	`
	DeleteExpiredBefore = `
		DELETE FROM tokens
		WHERE expired_at < $1
	`
)
