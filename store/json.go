package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/osutil"
)

// JSONFile stores the history as a single JSON array.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile returns a store backed by the file at path. The file is not
// touched until the first Load or Flush.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the location of the data file.
func (f *JSONFile) Path() string {
	return f.path
}

func (f *JSONFile) Load() (models.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.History{}, nil
	}

	if err != nil {
		return models.History{}, err
	}

	return decodeHistory(data)
}

// decodeHistory parses the contents of a data file. Valid JSON that is not an
// array is treated as an empty history.
func decodeHistory(data []byte) (models.History, error) {
	data = bytes.TrimSpace(data)

	if !json.Valid(data) {
		return models.History{}, ErrMalformedData
	}

	if data[0] != '[' {
		return models.History{}, nil
	}

	var h models.History

	err := json.Unmarshal(data, &h)
	if err != nil {
		return models.History{}, ErrMalformedData.Wrap(err)
	}

	if h == nil {
		h = models.History{}
	}

	return h, nil
}

// Flush writes h to a temporary file in the same directory and renames it
// over the data file, so readers never observe a partial history.
func (f *JSONFile) Flush(h models.History) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h == nil {
		h = models.History{}
	}

	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return errFlush.Wrap(err)
	}

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return errFlush.Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errFlush.Wrap(err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.Write(b)
	if err == nil {
		err = tmp.Sync()
	}

	cerr := tmp.Close()
	if err == nil {
		err = cerr
	}

	if err != nil {
		return errFlush.Wrap(err)
	}

	err = os.Chmod(tmp.Name(), osutil.FilePermission)
	if err != nil {
		return errFlush.Wrap(err)
	}

	err = os.Rename(tmp.Name(), f.path)
	if err != nil {
		return errFlush.Wrap(err)
	}

	return nil
}

func (f *JSONFile) Close() error {
	return nil
}
