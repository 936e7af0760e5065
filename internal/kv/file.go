package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a Binding backed by a single JSON document on disk: an object
// mapping keys to raw JSON values. Writes go through a temp file and rename
// so a crash never leaves a half-written document behind.
type File struct {
	path string
}

// NewFile creates a file binding at path. The file is created lazily on the
// first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	entries := map[string]json.RawMessage{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("malformed store file %s: %w", f.path, err)
	}
	return entries, nil
}

// Get returns the value stored under key, or ok=false if absent.
func (f *File) Get(key string) ([]byte, bool, error) {
	entries, err := f.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (f *File) Set(key string, value []byte) error {
	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[key] = value

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".duitku-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
