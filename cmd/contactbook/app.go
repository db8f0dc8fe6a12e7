package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/pkordes/contactbook/internal/command"
	"github.com/pkordes/contactbook/internal/config"
	"github.com/pkordes/contactbook/internal/repo"
	"github.com/pkordes/contactbook/internal/service"
	"github.com/pkordes/contactbook/migrations"
)

// databaseLocation names the Postgres store in storage error messages.
const databaseLocation = "the database"

// app carries what every subcommand shares: configuration, the logger and,
// once opened, the store.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        config.Config
	log        *slog.Logger

	closers []func()
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg config.Config
		err error
	)
	if a.configFile != "" {
		cfg, err = config.LoadFile(a.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = newLogger(a.cfg, a.stderr)
	slog.SetDefault(a.log)
	return nil
}

// teardown releases whatever open acquired.
func (a *app) teardown() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// newLogger builds the process logger. Logs go to w (stderr) so stdout
// carries only command feedback.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// open builds the command stack over the configured store.
func (a *app) open(ctx context.Context) (*command.Executor, error) {
	store, location, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	model, err := service.NewModel(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("loading address book: %w", err)
	}
	// The file store seeds itself when the file is missing; an empty
	// database gets the same sample book.
	if a.cfg.DatabaseURL != "" {
		n, err := model.SeedIfEmpty(ctx, repo.SamplePeople())
		if err != nil {
			return nil, fmt.Errorf("seeding address book: %w", err)
		}
		if n > 0 {
			a.log.InfoContext(ctx, "seeded empty database", "count", n)
		}
	}
	env := command.NewEnv(model, repo.NewSnapshotWriter(), a.cfg.SnapshotDir, location)
	return command.NewExecutor(env, a.log), nil
}

// openStore returns the JSON file store, or the Postgres store when a
// database URL is configured. Postgres is migrated before use.
func (a *app) openStore(ctx context.Context) (repo.PersonRepo, string, error) {
	if a.cfg.DatabaseURL == "" {
		a.log.DebugContext(ctx, "using file store", "path", a.cfg.DataFile)
		return repo.NewJSONPersonRepo(a.cfg.DataFile, repo.SamplePeople()), a.cfg.DataFile, nil
	}

	pool, err := a.openPool(ctx)
	if err != nil {
		return nil, "", err
	}
	if _, err := a.migrate(ctx, pool); err != nil {
		return nil, "", err
	}
	return repo.NewPgPersonRepo(pool), databaseLocation, nil
}

// openPool connects to Postgres and verifies it is reachable.
// New does not open connections immediately; Ping does.
func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if a.cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	a.log.DebugContext(ctx, "database connection established")
	return pool, nil
}

// migrate applies pending migrations through a database/sql view of pool.
func (a *app) migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		a.log.InfoContext(ctx, "applied migrations", "count", n)
	}
	return n, nil
}
