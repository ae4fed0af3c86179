package notebook

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// assertOnlyEntries fails if dir contains anything besides names.
func assertOnlyEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, e := range entries {
		if !want[e.Name()] {
			t.Errorf("unexpected entry %q left in %s", e.Name(), dir)
		}
	}
}

func TestWrite_CreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ipynb")

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := Write(sampleDocument(), path, WriteOptions{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	first := readFile(t, path)

	want, err := Encode(sampleDocument(), EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first, want) {
		t.Fatal("written bytes differ from Encode output")
	}

	if err := Write(sampleDocument(), path, WriteOptions{}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if !bytes.Equal(first, readFile(t, path)) {
		t.Fatal("rewriting the same document changed the file")
	}

	assertOnlyEntries(t, dir, "out.ipynb")
}

func TestWrite_Mode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ipynb")
	if err := Write(sampleDocument(), path, WriteOptions{Mode: 0o600}); err != nil {
		t.Fatalf("write: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := fi.Mode().Perm(); got != 0o600 {
		t.Fatalf("mode = %#o, want 0600", got)
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ipynb")

	err := Write(sampleDocument(), path, WriteOptions{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("no file should exist, stat err = %v", statErr)
	}
}

func TestWrite_ReadOnlyDirectoryKeepsPreviousFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.ipynb")
	previous := []byte("previous contents")
	if err := os.WriteFile(path, previous, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := Write(sampleDocument(), path, WriteOptions{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if !bytes.Equal(readFile(t, path), previous) {
		t.Fatal("previous file was modified")
	}
	assertOnlyEntries(t, dir, "out.ipynb")
}

func TestWrite_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.ipynb")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := Write(sampleDocument(), target, WriteOptions{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	assertOnlyEntries(t, dir, "out.ipynb")
}

func TestWrite_FailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ipynb")
	previous := []byte("previous contents")
	if err := os.WriteFile(path, previous, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Encoding fails before anything touches the directory.
	bad := Assemble(NewNarrative("# ok"), NewSnippet("x = '\xff'"))
	if err := Write(bad, path, WriteOptions{}); !errors.Is(err, ErrSerialization) {
		t.Fatalf("err = %v, want ErrSerialization", err)
	}
	if !bytes.Equal(readFile(t, path), previous) {
		t.Fatal("previous file was modified by a failed encode")
	}

	// The rename onto a directory fails after the temp file is written.
	target := filepath.Join(dir, "taken.ipynb")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := Write(sampleDocument(), target, WriteOptions{}); !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if !bytes.Equal(readFile(t, path), previous) {
		t.Fatal("sibling file was modified by a failed rename")
	}
	assertOnlyEntries(t, dir, "out.ipynb", "taken.ipynb")
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ipynb")
	if err := Write(sampleDocument(), path, WriteOptions{}); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Len() != 3 || doc.Block(1).Kind() != Snippet {
		t.Fatalf("unexpected document: %+v", doc.Blocks())
	}

	if _, err := Read(filepath.Join(t.TempDir(), "nope.ipynb")); !errors.Is(err, ErrIO) {
		t.Fatalf("missing file err = %v, want ErrIO", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.ipynb")
	if err := os.WriteFile(bad, []byte("{}"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Read(bad); !errors.Is(err, ErrSerialization) {
		t.Fatalf("invalid file err = %v, want ErrSerialization", err)
	}
}
