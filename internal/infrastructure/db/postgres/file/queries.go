package file

const (
	SelectFileByName = `
		SELECT id, filename, size, checksum, user_id
		FROM files
		WHERE filename = $1
	`
	SelectFilesByOwner = `
		SELECT id, filename, size, checksum, user_id
		FROM files
		WHERE user_id = $1
		ORDER BY id
	`
	SelectFilesByOwnerLimited = `
		SELECT id, filename, size, checksum, user_id
		FROM files
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2
	`
	InsertFile = `
		INSERT INTO files (filename, size, checksum, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, filename, size, checksum, user_id
	`
	UpdateFilenameByID = `
		UPDATE files
		SET filename = $1
		WHERE id = $2
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1
	`
)
