package filestore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"colDB/internal/storage"
	"colDB/internal/storage/memstore"
)

// FileStore persists a whole database to a single file.
//
// Save writes a temp file next to the target and renames it into place, so
// a failed save never leaves a half-written database behind. Load decodes
// into a fresh store and only returns it once the whole file checked out.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// New creates a FileStore for the database file at path.
// A nil logger discards log output.
func New(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the database file path.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) ioError(op string, err error) error {
	return &storage.FileError{Path: f.path, Op: op, Kind: storage.ErrIO, Err: err}
}

// Save writes c to the database file, replacing it atomically.
// It returns the number of bytes written.
func (f *FileStore) Save(c storage.Catalog) (int64, error) {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return 0, f.ioError("open file for writing", err)
	}
	tmpPath := tmp.Name()

	// Remove the temp file on any failure below.
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Encode(tmp, c); err != nil {
		return 0, f.ioError("write file", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return 0, f.ioError("chmod file", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, f.ioError("sync file", err)
	}
	info, err := tmp.Stat()
	if err != nil {
		return 0, f.ioError("stat file", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, f.ioError("close file", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return 0, f.ioError("replace file", err)
	}
	committed = true

	f.logger.Info("database saved", "path", f.path, "tables", len(c.Tables()), "bytes", info.Size())
	return info.Size(), nil
}

// Load reads and decodes the database file into a new store.
func (f *FileStore) Load() (*memstore.Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, f.ioError("open file for reading", err)
	}

	s, err := Decode(data)
	if err != nil {
		f.logger.Warn("database file rejected", "path", f.path, "error", err)
		if errors.Is(err, storage.ErrCorruptFormat) {
			return nil, &storage.FileError{Path: f.path, Op: "decode", Kind: storage.ErrCorruptFormat, Err: err}
		}
		return nil, fmt.Errorf("filestore: decode %s: %w", f.path, err)
	}

	f.logger.Info("database loaded", "path", f.path, "tables", len(s.Tables()), "bytes", len(data))
	return s, nil
}
