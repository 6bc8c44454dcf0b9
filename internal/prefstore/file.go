package prefstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileFormatVersion = "1.0"

// FileStore keeps preferences in a JSON document on disk.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
	// discarded is the parse error of a document that was replaced by an
	// empty one on open.
	discarded error
}

type preferencesFile struct {
	Version     string            `json:"version"`
	Preferences map[string]string `json:"preferences"`
}

// NewFileStore creates the parent directory and loads any existing document.
// A document that is not valid JSON is treated as empty; the next Save
// replaces it. Discarded reports the parse error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("preferences path is empty")
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch err := s.load(); {
	case err == nil, os.IsNotExist(err):
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		s.discarded = err
	default:
		return nil, err
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	s.values = file.Preferences
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// Load returns the value stored under key.
func (s *FileStore) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Save stores value under key and rewrites the document atomically.
func (s *FileStore) Save(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.writeLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) writeLocked() error {
	data, err := json.MarshalIndent(preferencesFile{
		Version:     fileFormatVersion,
		Preferences: s.values,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Discarded returns the error that made the store ignore an unreadable
// document on open, or nil.
func (s *FileStore) Discarded() error {
	return s.discarded
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}
