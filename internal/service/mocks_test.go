package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/repo"
	"github.com/pkordes/contactbook/internal/service"
)

// ---- mock PersonRepo -------------------------------------------------------

// mockPersonRepo is a hand-written test double for repo.PersonRepo.
// Each method is a function field; nil fields fall back to success so tests
// only set what they assert on.
type mockPersonRepo struct {
	list    func(ctx context.Context) ([]domain.Person, error)
	create  func(ctx context.Context, p domain.Person) error
	replace func(ctx context.Context, old, updated domain.Person) error
}

func (m *mockPersonRepo) List(ctx context.Context) ([]domain.Person, error) {
	if m.list == nil {
		return []domain.Person{}, nil
	}
	return m.list(ctx)
}
func (m *mockPersonRepo) Create(ctx context.Context, p domain.Person) error {
	if m.create == nil {
		return nil
	}
	return m.create(ctx, p)
}
func (m *mockPersonRepo) Replace(ctx context.Context, old, updated domain.Person) error {
	if m.replace == nil {
		return nil
	}
	return m.replace(ctx, old, updated)
}

// compile-time check: mockPersonRepo must satisfy repo.PersonRepo.
var _ repo.PersonRepo = (*mockPersonRepo)(nil)

// ---- mock SnapshotWriter ---------------------------------------------------

type mockSnapshotWriter struct {
	write func(ctx context.Context, people []domain.Person, path string) error
}

func (m *mockSnapshotWriter) WriteSnapshot(ctx context.Context, people []domain.Person, path string) error {
	return m.write(ctx, people, path)
}

var _ repo.SnapshotWriter = (*mockSnapshotWriter)(nil)

// ---- helpers ---------------------------------------------------------------

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
	p, err := domain.NewPerson(domain.Name(name), domain.Phone(phone), "x@example.com", domain.NewTagSet(tags...))
	require.NoError(t, err)
	return p
}

// newModel builds a Model preloaded with people over r.
func newModel(t *testing.T, r *mockPersonRepo, people ...domain.Person) *service.Model {
	t.Helper()
	r.list = func(context.Context) ([]domain.Person, error) { return people, nil }
	m, err := service.NewModel(context.Background(), r)
	require.NoError(t, err)
	return m
}
