package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkordes/contactbook/internal/repo"
)

// DefaultSnapshotDir is the archive directory, relative to the working
// directory, used when none is configured.
const DefaultSnapshotDir = "snapshots"

// SnapshotLayout names snapshot files: day without padding, month
// abbreviation, four-digit year, then HHMMSS, e.g. 3Jan2024_143502.
const SnapshotLayout = "2Jan2006_150405"

// SnapshotService archives the full store to a timestamped JSON file.
// Two captures within the same second map to the same file name; the
// second one fails rather than overwrite the first.
type SnapshotService struct {
	model  *Model
	writer repo.SnapshotWriter
	dir    string
}

// NewSnapshotService constructs a SnapshotService writing under dir.
// An empty dir means DefaultSnapshotDir.
func NewSnapshotService(model *Model, writer repo.SnapshotWriter, dir string) *SnapshotService {
	if dir == "" {
		dir = DefaultSnapshotDir
	}
	return &SnapshotService{model: model, writer: writer, dir: dir}
}

// SnapshotPath returns the destination for a snapshot taken at now.
func SnapshotPath(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format(SnapshotLayout)+".json")
}

// PathFor returns the file a capture at now writes to.
func (s *SnapshotService) PathFor(now time.Time) string {
	return SnapshotPath(s.dir, now)
}

// Capture writes every person in the store, ignoring the view filter, to
// SnapshotPath(dir, now) and returns that path.
// Returns domain.ErrPermission or domain.ErrIO from the writer.
func (s *SnapshotService) Capture(ctx context.Context, now time.Time) (string, error) {
	path := s.PathFor(now)
	if err := s.writer.WriteSnapshot(ctx, s.model.People(), path); err != nil {
		return "", fmt.Errorf("service.SnapshotService.Capture: %w", err)
	}
	return path, nil
}
