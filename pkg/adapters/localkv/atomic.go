package localkv

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks in-flight writes so the watcher can tell them apart
// from real keys.
const TempFilePrefix = "satchel-tmp-"

// writeFileAtomic replaces a key's backing file in one step. Every Save
// overwrites the whole value, so a reader must only ever see the previous
// collection or the new one, never a torn write; the temp file lives in the
// target directory so the final rename stays on one filesystem.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// Covers every early return before the rename.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp uses 0600; widen to the adapter's file mode before the
	// value becomes visible under its key.
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}
