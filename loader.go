package cashbook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadLedger reads the ledger file at path. A missing file is not an
// error: it yields an empty ledger, the state of a first run. Row-level
// parse failures are returned as warnings alongside the loaded records.
func LoadLedger(path string) (*Ledger, []RowWarning, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil, nil
	}
	if err != nil {
		return nil, nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	ledger, warnings, err := DecodeLedger(f)
	if err != nil {
		return nil, nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	return ledger, warnings, nil
}

// SaveLedger persists the whole ledger to path. The write goes to a
// temporary file in the same directory which is then renamed over the
// target, so a reader never observes a partially written file.
func SaveLedger(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	// The write must reach the disk before success is reported, so a
	// crash right after cannot lose it.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}
