package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/interface/api/rest/dto/auth"
	userDto "cloud-storage-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultListLimit = 10
)

// ValidateLimit parses the list limit query parameter, defaulting to 10.
func ValidateLimit(limit string) (int, error) {
	if limit == "" {
		return defaultListLimit, nil
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		return 0, errors.New("invalid limit")
	}
	return l, nil
}

// ValidateFilename rejects blank names and names that cannot address a flat
// directory entry.
func ValidateFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return errors.New("filename must not be blank")
	}
	if strings.ContainsAny(filename, `/\`) {
		return errors.New("filename must not contain path separators")
	}
	return nil
}

func IsUserID(s string) (bool, user.ID) {
	id, err := strconv.ParseUint(s, 10, 64)
	return err == nil && id > 0, user.ID(id)
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	login := strings.TrimSpace(r.Login)
	password := r.Password

	if login == "" {
		errs["login"] = "login is required"
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCreateUser(r userDto.Request) map[string]string {
	errs := make(map[string]string)

	login := strings.ToLower(strings.TrimSpace(r.Login))
	password := r.Password

	// login is an email address
	if login == "" {
		errs["login"] = "login is required"
	} else if _, err := mail.ParseAddress(login); err != nil {
		errs["login"] = "invalid email format"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be between 8 and 72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
