package command

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Executor runs commands one at a time against a shared Env. The Model is not
// safe for concurrent use, so every front-end (CLI or HTTP) goes through an
// Executor. Each run is logged with a fresh command id.
type Executor struct {
	mu  sync.Mutex
	env *Env
	log *slog.Logger
}

// NewExecutor constructs an Executor over env. A nil logger discards logs.
func NewExecutor(env *Env, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Executor{env: env, log: log}
}

// Run executes cmd while holding the executor lock.
// Every failure is returned as *Error, so callers can show err.Error()
// directly to the user.
func (x *Executor) Run(ctx context.Context, cmd Command) (Result, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	log := x.log.With("command", cmd.Name(), "command_id", uuid.NewString())
	log.DebugContext(ctx, "command started")

	res, err := cmd.Execute(ctx, x.env)
	if err != nil {
		var cmdErr *Error
		if !errors.As(err, &cmdErr) {
			cmdErr = newError(err, MessageUnexpectedErrorFmt, rootCause(err))
		}
		log.WarnContext(ctx, "command failed", "message", cmdErr.Message, "error", err)
		return Result{}, cmdErr
	}

	log.InfoContext(ctx, "command finished", "feedback", res.Feedback)
	return res, nil
}
