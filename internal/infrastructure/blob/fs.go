// Package blob implements the byte half of the storage engine as a flat
// directory of objects keyed by filename, no subdirectories.
package blob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"cloud-storage-api/internal/errs"
)

type Store struct {
	logger *zap.Logger
	dir    string
}

func New(logger *zap.Logger, dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("upload directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("upload directory %q is not a directory", dir)
	}

	logger.Info("blob store ready", zap.String("dir", dir))

	return &Store{logger: logger, dir: dir}, nil
}

func (s *Store) Exists(filename string) (bool, error) {
	path, err := s.path(filename)
	if err != nil {
		return false, err
	}

	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Store) Write(filename string, data []byte) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func (s *Store) Read(filename string) ([]byte, error) {
	path, err := s.path(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %q: %w", filename, errs.ErrNotFound)
		}
		return nil, err
	}

	return data, nil
}

// Rename overwrites any pre-existing object under newFilename.
func (s *Store) Rename(oldFilename, newFilename string) error {
	oldPath, err := s.path(oldFilename)
	if err != nil {
		return err
	}
	newPath, err := s.path(newFilename)
	if err != nil {
		return err
	}

	if err = os.Rename(oldPath, newPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file %q: %w", oldFilename, errs.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *Store) Remove(filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file %q: %w", filename, errs.ErrNotFound)
		}
		return err
	}

	return nil
}

// path refuses names that would escape the flat directory.
func (s *Store) path(filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", fmt.Errorf("unusable filename %q: %w", filename, errs.ErrInvalidArgument)
	}
	return filepath.Join(s.dir, filename), nil
}
