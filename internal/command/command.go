// Package command is the user-facing layer of the contact book. Each command
// turns a request into service calls and reduces the outcome to a single
// human-readable message: a Result on success, an *Error on failure.
// The CLI and the HTTP handlers both run commands through an Executor.
package command

import (
	"context"
	"time"

	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/repo"
	"github.com/pkordes/contactbook/internal/service"
)

// Command is a single user request.
type Command interface {
	// Name is the command word, e.g. "tag".
	Name() string
	// Execute runs the command against env.
	// Failures are returned as *Error.
	Execute(ctx context.Context, env *Env) (Result, error)
}

// Result is what a successful command reports back.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string
	// Person is the record a tag or untag produced.
	Person *domain.Person
	// People is the filtered view after find or list.
	People []domain.Person
	// Path is where a snapshot was written.
	Path string
}

// Env holds the services commands operate on.
type Env struct {
	Model     *service.Model
	Tags      *service.TagService
	Finder    *service.FindService
	Snapshots *service.SnapshotService

	// StoreLocation names the live store in storage error messages,
	// e.g. the data file path.
	StoreLocation string

	// Now is the clock used by Snapshot when it carries no capture time.
	Now func() time.Time
}

// NewEnv wires the services over model.
func NewEnv(model *service.Model, writer repo.SnapshotWriter, snapshotDir, storeLocation string) *Env {
	return &Env{
		Model:         model,
		Tags:          service.NewTagService(model),
		Finder:        service.NewFindService(model),
		Snapshots:     service.NewSnapshotService(model, writer, snapshotDir),
		StoreLocation: storeLocation,
		Now:           time.Now,
	}
}
