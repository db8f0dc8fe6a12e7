package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/repo"
)

func TestEncodeAddressBook_Format(t *testing.T) {
	people := []domain.Person{
		personFixture(t, "Alice", "94351253", tag(t, "friends"), project(t, "project-x")),
	}

	data, err := repo.EncodeAddressBook(people)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"persons": [{
			"name": "Alice",
			"phone": "94351253",
			"email": "someone@example.com",
			"tags": [{"name": "friends"}, {"name": "project-x", "kind": "project"}]
		}]
	}`, string(data))
}

func TestEncodeAddressBook_Empty(t *testing.T) {
	data, err := repo.EncodeAddressBook(nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"persons": []}`, string(data))
}

func TestDecodeAddressBook_PreservesOrderAndKind(t *testing.T) {
	const data = `{"persons": [
		{"name": "Alice", "phone": "1", "email": "", "tags": [{"name": "b"}, {"name": "a", "kind": "project"}]},
		{"name": "Benson", "phone": "2", "email": "", "tags": []}
	]}`

	got, err := repo.DecodeAddressBook([]byte(data))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b", "a"}, got[0].Tags.Names())
	assert.True(t, got[0].Tags.Tags()[1].IsProject())
	assert.Equal(t, domain.Name("Benson"), got[1].Name)
}

func TestDecodeAddressBook_InvalidTag(t *testing.T) {
	const data = `{"persons": [{"name": "Alice", "phone": "1", "tags": [{"name": "not valid!"}]}]}`

	_, err := repo.DecodeAddressBook([]byte(data))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecodeAddressBook_UnknownKind(t *testing.T) {
	const data = `{"persons": [{"name": "Alice", "phone": "1", "tags": [{"name": "x", "kind": "label"}]}]}`

	_, err := repo.DecodeAddressBook([]byte(data))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecodeAddressBook_DuplicatePhone(t *testing.T) {
	const data = `{"persons": [{"name": "A", "phone": "1"}, {"name": "B", "phone": "1"}]}`

	_, err := repo.DecodeAddressBook([]byte(data))

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDecodeAddressBook_Malformed(t *testing.T) {
	_, err := repo.DecodeAddressBook([]byte(`{"persons": [`))

	assert.Error(t, err)
}

func TestSamplePeople_Valid(t *testing.T) {
	people := repo.SamplePeople()

	require.NotEmpty(t, people)
	data, err := repo.EncodeAddressBook(people)
	require.NoError(t, err)
	_, err = repo.DecodeAddressBook(data)
	require.NoError(t, err, "sample data must satisfy every decode rule")
}
