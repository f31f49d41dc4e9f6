package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"go.uber.org/atomic"
)

// File is a Store keeping a value of type T in a TOML file. Bind controls to
// fields of Value(); Save writes the whole document.
type File[T any] struct {
	path     string
	defaults func() T

	mu    sync.RWMutex
	value *T
	dirty atomic.Bool
}

// NewFile creates a store for path. defaults builds the value used before the
// file exists and after ResetToDefaults.
func NewFile[T any](path string, defaults func() T) *File[T] {
	v := defaults()
	return &File[T]{
		path:     path,
		defaults: defaults,
		value:    &v,
	}
}

// Path returns the backing file path.
func (f *File[T]) Path() string {
	return f.path
}

// Value returns a pointer to the live document. The pointer stays valid
// across Load and ResetToDefaults, which overwrite it in place.
func (f *File[T]) Value() *T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Update runs fn with the document locked and marks the store dirty.
func (f *File[T]) Update(fn func(v *T)) {
	f.mu.Lock()
	fn(f.value)
	f.mu.Unlock()
	f.dirty.Store(true)
}

// IsDirty reports whether Update or ResetToDefaults ran since the last Load or Save.
func (f *File[T]) IsDirty() bool {
	return f.dirty.Load()
}

// Load reads the file over fresh defaults. A missing file leaves the defaults in place.
func (f *File[T]) Load() error {
	v := f.defaults()

	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("config: read %s: %w", f.path, err)
	default:
		if _, err := toml.Decode(string(data), &v); err != nil {
			return fmt.Errorf("config: decode %s: %w", f.path, err)
		}
	}

	f.mu.Lock()
	*f.value = v
	f.mu.Unlock()
	f.dirty.Store(false)
	return nil
}

// Save writes the document atomically by renaming a temporary file over the target.
func (f *File[T]) Save() error {
	var buf bytes.Buffer

	f.mu.RLock()
	err := toml.NewEncoder(&buf).Encode(f.value)
	f.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("config: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("config: replace %s: %w", f.path, err)
	}

	f.dirty.Store(false)
	return nil
}

// ResetToDefaults replaces the document with defaults without touching the file.
func (f *File[T]) ResetToDefaults() error {
	v := f.defaults()
	f.mu.Lock()
	*f.value = v
	f.mu.Unlock()
	f.dirty.Store(true)
	return nil
}
