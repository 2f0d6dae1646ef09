package user

const (
	SelectUserByID = `
		SELECT id, login, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	SelectUserByLogin = `
		SELECT id, login, password_hash, created_at
		FROM users
		WHERE login = $1
	`
	InsertUser = `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, login, password_hash, created_at
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
	`
)
