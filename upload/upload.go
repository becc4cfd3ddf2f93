// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/christmas-map/auth"
)

// MaxSize is the largest accepted image, in bytes
const MaxSize = 5 * 1024 * 1024

// URLPrefix is where stored images are served from
const URLPrefix = "/uploads/"

var (
	ErrInvalidType = errors.New("Invalid file type. Allowed: jpg, png, webp, gif")
	ErrTooLarge    = errors.New("File too large. Maximum size is 5MB")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Store writes uploaded images to a directory under generated names
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// IsAllowedType reports whether contentType is an accepted image type
func IsAllowedType(contentType string) bool {
	return allowedTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// Save validates and stores an image, returning the path it is served at.
// size is the size the client declared; the copy is capped at MaxSize regardless.
func (s *Store) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	if !IsAllowedType(contentType) {
		return "", ErrInvalidType
	}
	if size > MaxSize {
		return "", ErrTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := auth.NewID() + extension(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, MaxSize+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && n > MaxSize {
		err = ErrTooLarge
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			slog.Warn("failed to remove partial upload", "path", path, "error", rmErr)
		}
		if errors.Is(err, ErrTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	slog.Info("image stored", "file", name, "size", humanize.IBytes(uint64(n)))
	return URLPrefix + name, nil
}

// extension keeps the client's file extension if it is a plain one, else .jpg
func extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return ".jpg"
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ".jpg"
		}
	}
	return ext
}
