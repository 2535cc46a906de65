package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Persister loads and saves the whole document cache
type Persister interface {
	// Load returns the stored document, or nil with no error when nothing
	// has been stored yet
	Load(ctx context.Context) (Data, error)

	// Save replaces the stored document
	Save(ctx context.Context, data Data) error

	// Describe names the backend for logs and stats
	Describe() string
}

// FilePersister keeps the document in a single JSON file
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister for the given file path
func NewFilePersister(path string) (*FilePersister, error) {
	if path == "" {
		return nil, errors.InvalidArgument("cache file path cannot be empty")
	}
	return &FilePersister{path: path}, nil
}

// Load reads and decodes the file
func (p *FilePersister) Load(_ context.Context) (Data, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read cache file %s", p.path)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "cache file %s is corrupt", p.path)
	}
	return data, nil
}

// Save writes the document to a temporary file and renames it over the
// previous one, so a failed write never truncates the existing cache.
func (p *FilePersister) Save(_ context.Context, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache document")
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create cache directory %s", dir)
	}

	return writeFileAtomic(p.path, payload)
}

// Describe names the backend
func (p *FilePersister) Describe() string {
	return "file:" + p.path
}

// writeFileAtomic writes payload next to path and renames it into place
func writeFileAtomic(path string, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to move %s into place", path)
	}
	return nil
}
