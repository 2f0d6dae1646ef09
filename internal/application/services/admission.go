package services

import (
	"fmt"
	"strings"

	"cloud-storage-api/internal/errs"
)

// Admission validates an incoming upload before the storage engine runs.
// It never mutates anything; every rejection wraps errs.ErrInvalidArgument
// with a distinct reason.
type Admission struct {
	allowedExtensions map[string]struct{}
	maxFileSize       int64
}

func NewAdmission(allowedExtensions []string, maxFileSize int64) *Admission {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[ext] = struct{}{}
	}
	return &Admission{
		allowedExtensions: allowed,
		maxFileSize:       maxFileSize,
	}
}

func (a *Admission) Admit(filename string, size int64) error {
	if size == 0 {
		return fmt.Errorf("file is empty: %w", errs.ErrInvalidArgument)
	}
	if strings.TrimSpace(filename) == "" || strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("filename is missing or unusable: %w", errs.ErrInvalidArgument)
	}
	ext := ExtractExtension(filename)
	if _, ok := a.allowedExtensions[ext]; !ok {
		return fmt.Errorf("file extension %q is not allowed: %w", ext, errs.ErrInvalidArgument)
	}
	if size > a.maxFileSize {
		return fmt.Errorf("file size %d exceeds the %d byte limit: %w", size, a.maxFileSize, errs.ErrInvalidArgument)
	}

	return nil
}

// ExtractExtension returns the suffix after the final dot, case-sensitive.
// A leading dot or a trailing dot yields the empty string.
func ExtractExtension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx > 0 && idx < len(filename)-1 {
		return filename[idx+1:]
	}
	return ""
}
