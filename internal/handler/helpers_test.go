package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/contactbook/internal/command"
	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/handler"
)

// ---- mock CommandRunner ----------------------------------------------------

// mockRunner is a test double for handler.CommandRunner. It records the last
// command it was asked to run.
type mockRunner struct {
	run  func(ctx context.Context, cmd command.Command) (command.Result, error)
	last command.Command
}

func (m *mockRunner) Run(ctx context.Context, cmd command.Command) (command.Result, error) {
	m.last = cmd
	return m.run(ctx, cmd)
}

// compile-time check: mockRunner must satisfy handler.CommandRunner.
var _ handler.CommandRunner = (*mockRunner)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server over runner into its router, the same way
// main wires it in production (minus middleware).
func newHTTPHandler(runner handler.CommandRunner) http.Handler {
	return handler.NewServer(runner, nil).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func tag(t *testing.T, name string) domain.Tag {
	t.Helper()
	tg, err := domain.NewTag(name)
	require.NoError(t, err)
	return tg
}

func project(t *testing.T, name string) domain.Tag {
	t.Helper()
	p, err := domain.NewProject(name)
	require.NoError(t, err)
	return p
}

func person(t *testing.T, name, phone string, tags ...domain.Tag) domain.Person {
	t.Helper()
	p, err := domain.NewPerson(domain.Name(name), domain.Phone(phone), "someone@example.com", domain.NewTagSet(tags...))
	require.NoError(t, err)
	return p
}
