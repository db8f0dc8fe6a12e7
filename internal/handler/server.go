// Package handler implements the HTTP front-end of the contact book.
// Every endpoint turns a request into a command.Command and runs it through a
// CommandRunner, so HTTP clients and the CLI share one set of semantics and
// one set of user-facing messages. Methods are split into files by resource
// (health.go, person.go, tag.go, snapshot.go) but all hang off Server.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/contactbook/api"
	"github.com/pkordes/contactbook/internal/command"
)

// CommandRunner executes commands one at a time.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without building the service layer.
type CommandRunner interface {
	Run(ctx context.Context, cmd command.Command) (command.Result, error)
}

var _ CommandRunner = (*command.Executor)(nil)

// Server serves the HTTP API over a CommandRunner.
type Server struct {
	cmds     CommandRunner
	log      *slog.Logger
	validate *validator.Validate
}

// NewServer constructs the Server. A nil logger discards output.
func NewServer(cmds CommandRunner, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cmds:     cmds,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes returns a chi router with every endpoint registered.
// Middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/persons", func(r chi.Router) {
		r.Get("/", s.ListPersons)
		r.Post("/{phone}/tags", s.TagPerson)
		r.Post("/{phone}/untag", s.UnTagPerson)
	})
	r.Post("/snapshots", s.CreateSnapshot)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, notFoundBody("no such endpoint"))
	})
	return r
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(api.OpenAPI)
}
