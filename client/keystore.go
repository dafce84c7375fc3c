package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Persisted session state is exactly two keys, written together and
// cleared together.
const (
	keyUser  = "authUser"
	keyToken = "token"
)

// ErrKeyNotFound is returned by a Keystore when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Keystore is the small persistence surface the session store needs.
type Keystore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKeystore stores each key as a file in a directory.
type FileKeystore struct {
	dir string
}

// NewFileKeystore creates the backing directory if needed.
func NewFileKeystore(dir string) (*FileKeystore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileKeystore{dir: dir}, nil
}

func (k *FileKeystore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(k.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

func (k *FileKeystore) Set(key string, value []byte) error {
	return os.WriteFile(filepath.Join(k.dir, key), value, 0o600)
}

func (k *FileKeystore) Delete(key string) error {
	err := os.Remove(filepath.Join(k.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
