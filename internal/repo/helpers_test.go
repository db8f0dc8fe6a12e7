package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/contactbook/internal/domain"
)

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

func personFixture(t *testing.T, name, phone string, tags ...domain.Tag) domain.Person {
	t.Helper()
	p, err := domain.NewPerson(domain.Name(name), domain.Phone(phone), "someone@example.com", domain.NewTagSet(tags...))
	require.NoError(t, err)
	return p
}
