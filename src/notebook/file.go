package notebook

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMode is the permission used for written notebooks when
// WriteOptions.Mode is zero.
const DefaultMode os.FileMode = 0o644

// WriteOptions controls encoding and file permissions for Write.
type WriteOptions struct {
	Encode EncodeOptions
	Mode   os.FileMode
}

// Write encodes doc and writes it to path, replacing any existing file.
// The file is written to a temp file in the same directory and renamed into
// place, so a failed write leaves the previous file untouched.
func Write(doc Document, path string, opts WriteOptions) error {
	data, err := Encode(doc, opts.Encode)
	if err != nil {
		return err
	}

	mode := opts.Mode
	if mode == 0 {
		mode = DefaultMode
	}
	if err := writeFile(path, data, mode); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

// Read reads and decodes the notebook at path.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	return Decode(data)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Removes the temp file on every failure path; a no-op after rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
