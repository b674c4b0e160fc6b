package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot stores each key as <Dir>/<key>.json.
type FileSlot struct {
	Dir string
}

func NewFileSlot(dir string) (*FileSlot, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file slot: missing dir")
	}
	return &FileSlot{Dir: filepath.Clean(dir)}, nil
}

func (s *FileSlot) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s *FileSlot) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("file slot: invalid key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

func (s *FileSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (s *FileSlot) Set(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	// Temp file + rename so readers never see a half-written blob.
	return atomicWriteFile(s.Dir, key+".json.*.tmp", path, value, 0o644)
}

func (s *FileSlot) Close() error { return nil }

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
