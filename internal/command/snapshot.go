package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Snapshot archives the full store to a timestamped file. At is the capture
// time; the zero value means the Env clock at execution.
type Snapshot struct {
	At time.Time
}

func (c Snapshot) Name() string { return "snapshot" }

func (c Snapshot) Execute(ctx context.Context, env *Env) (Result, error) {
	at := c.At
	if at.IsZero() {
		at = env.Now()
	}

	path, err := env.Snapshots.Capture(ctx, at)
	if err != nil {
		return Result{}, storageError(err, snapshotLocation(env, at, err))
	}
	return Result{Feedback: fmt.Sprintf(MessageSnapshotSaved, path), Path: path}, nil
}

// snapshotLocation is the path a failed capture was denied or failed on:
// the archive directory when creating it failed, otherwise the snapshot file.
func snapshotLocation(env *Env, at time.Time, err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path != "" {
		return pathErr.Path
	}
	return env.Snapshots.PathFor(at)
}
