// Package writer exposes sinks for container emission.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileWriter writes container bytes to a filesystem path atomically.
type FileWriter struct {
	Path string

	// Backup copies an existing file at Path to Path+".bak" before it is
	// replaced.
	Backup bool
}

// BackupSuffix is appended to Path when Backup is set.
const BackupSuffix = ".bak"

// Commit writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) Commit(buf []byte) error {
	if w.Backup {
		if err := copyFile(w.Path, w.Path+BackupSuffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("backup: %w", err)
		}
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".sfokit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
