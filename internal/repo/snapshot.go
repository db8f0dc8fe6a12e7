package repo

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/pkordes/contactbook/internal/domain"
)

// SnapshotWriter persists a copy of the whole address book to a new file.
type SnapshotWriter interface {
	// WriteSnapshot serializes people to path, creating the parent directory
	// if needed. It never overwrites an existing file.
	// Returns domain.ErrPermission if the filesystem denies access and
	// domain.ErrIO for every other failure.
	WriteSnapshot(ctx context.Context, people []domain.Person, path string) error
}

// fileSnapshotWriter is the filesystem implementation of SnapshotWriter.
// mu guards the check-then-create of the archive directory.
type fileSnapshotWriter struct {
	mu sync.Mutex
}

// NewSnapshotWriter constructs a SnapshotWriter that writes to the local
// filesystem.
func NewSnapshotWriter() SnapshotWriter {
	return &fileSnapshotWriter{}
}

// WriteSnapshot encodes people with the live store's codec and writes them
// to path with O_EXCL.
func (w *fileSnapshotWriter) WriteSnapshot(ctx context.Context, people []domain.Person, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.SnapshotWriter.WriteSnapshot: %w", err)
	}

	data, err := EncodeAddressBook(people)
	if err != nil {
		return fmt.Errorf("repo.SnapshotWriter.WriteSnapshot: %w: %w", domain.ErrIO, err)
	}

	if err := w.ensureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("repo.SnapshotWriter.WriteSnapshot: %w", err)
	}

	if err := writeNewFile(path, data, 0o644); err != nil {
		return fmt.Errorf("repo.SnapshotWriter.WriteSnapshot: %w", classifyFileError(err))
	}
	return nil
}

// ensureDir creates dir and any missing parents. Safe to call on every
// capture; an existing directory is left alone.
func (w *fileSnapshotWriter) ensureDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return classifyFileError(&fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR})
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return classifyFileError(err)
	}
	return nil
}
