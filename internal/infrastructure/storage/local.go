// Package storage persists uploaded resume files on local disk. Parsing
// their contents is the matcher engine's job; this layer only stores
// bytes and enforces the upload policy (size cap, extension allowlist).
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/config"
)

var (
	ErrFileTooLarge        = errors.New("file exceeds maximum upload size")
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrEmptyFilename       = errors.New("empty filename")
)

type LocalStore struct {
	dir      string
	maxBytes int64
	allowed  map[string]bool
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	maxBytes := cfg.MaxSizeMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}

	return &LocalStore{dir: dir, maxBytes: maxBytes, allowed: allowed}, nil
}

// Save validates and writes an upload, returning the stored path. The
// stored name is prefixed with a fresh UUID so two uploads of the same
// filename never collide.
func (s *LocalStore) Save(filename string, size int64, r io.Reader) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", ErrEmptyFilename
	}
	if size > s.maxBytes {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if len(s.allowed) > 0 && !s.allowed[ext] {
		return "", ErrExtensionNotAllowed
	}

	stored := filepath.Join(s.dir, uuid.NewString()+"_"+name)
	f, err := os.Create(stored)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// LimitReader guards against a lying Content-Length.
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		_ = os.Remove(stored)
		return "", err
	}
	if written > s.maxBytes {
		_ = os.Remove(stored)
		return "", ErrFileTooLarge
	}

	return stored, nil
}

func (s *LocalStore) Remove(storedPath string) error {
	if strings.TrimSpace(storedPath) == "" {
		return nil
	}
	if err := os.Remove(storedPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
