package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrMissingCollection is returned when the collection file does not exist.
	ErrMissingCollection = errors.New("collection file does not exist")
	// ErrMalformedCollection is returned when the file is not a JSON array.
	ErrMalformedCollection = errors.New("collection file is not a valid JSON array")
)

// Collection is a JSON array of records kept in a single file.
//
// Every Append rewrites the whole file, so it is only meant for small data
// sets. Appends within one process are serialised; other processes writing
// the same file are not coordinated.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
}

// Open returns a collection backed by the file at path. The file is not
// touched until the first List or Append.
func Open[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Init creates the file at path holding an empty array. An existing file is
// left as is.
func Init(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create collection dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create collection %s: %w", path, err)
	}
	if _, err := f.WriteString("[]"); err != nil {
		f.Close()
		return fmt.Errorf("initialize collection %s: %w", path, err)
	}
	return f.Close()
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// List decodes every record in the file. Records are returned as stored,
// without any schema validation.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read()
}

// Append adds rec to the end of the collection and returns it.
func (c *Collection[T]) Append(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		var zero T
		return zero, err
	}
	records = append(records, rec)
	if err := c.write(records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCollection, c.path)
		}
		return nil, fmt.Errorf("read collection %s: %w", c.path, err)
	}
	records := make([]T, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedCollection, c.path, err)
	}
	return records, nil
}

// write replaces the file atomically: the array goes to a temporary file in
// the same directory which is then renamed over the original.
func (c *Collection[T]) write(records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file for %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write collection %s: %w", c.path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync collection %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", c.path, err)
	}
	return nil
}
