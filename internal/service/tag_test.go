package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/service"
)

// ---- Tag -------------------------------------------------------------------

func TestTagService_Tag_AppendsProject(t *testing.T) {
	r := &mockPersonRepo{}
	m := newModel(t, r, person(t, "Benson", "98765432", tag(t, "friends")))
	svc := service.NewTagService(m)

	got, err := svc.Tag(context.Background(), "98765432", project(t, "project-x"))

	require.NoError(t, err)
	assert.Equal(t, []string{"friends", "project-x"}, got.Tags.Names())
	assert.True(t, got.Tags.Tags()[1].IsProject())
	assert.Equal(t, []string{"friends", "project-x"}, m.People()[0].Tags.Names())
}

func TestTagService_Tag_ReAddIsIdempotent(t *testing.T) {
	m := newModel(t, &mockPersonRepo{}, person(t, "Benson", "98765432", tag(t, "friends")))
	svc := service.NewTagService(m)

	got, err := svc.Tag(context.Background(), "98765432", tag(t, "FRIENDS"))

	require.NoError(t, err)
	assert.Equal(t, []string{"friends"}, got.Tags.Names())
}

func TestTagService_Tag_NotFound(t *testing.T) {
	r := &mockPersonRepo{
		replace: func(context.Context, domain.Person, domain.Person) error {
			t.Fatal("nothing may be written when the phone is unknown")
			return nil
		},
	}
	m := newModel(t, r, person(t, "Benson", "98765432"))

	_, err := service.NewTagService(m).Tag(context.Background(), "11111111", tag(t, "friends"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, m.People()[0].Tags.Len())
}

func TestTagService_Tag_ResetsFilter(t *testing.T) {
	m := newModel(t, &mockPersonRepo{}, person(t, "Alice", "1"), person(t, "Benson", "2"))
	m.UpdateFilter(domain.MatchKeywords([]string{"benson"}))

	_, err := service.NewTagService(m).Tag(context.Background(), "2", tag(t, "friends"))

	require.NoError(t, err)
	assert.Len(t, m.Filtered(), 2)
}

func TestTagService_Tag_RepoFailureKeepsFilterAndStore(t *testing.T) {
	r := &mockPersonRepo{
		replace: func(context.Context, domain.Person, domain.Person) error { return domain.ErrPermission },
	}
	m := newModel(t, r, person(t, "Alice", "1"), person(t, "Benson", "2"))
	m.UpdateFilter(domain.MatchKeywords([]string{"benson"}))

	_, err := service.NewTagService(m).Tag(context.Background(), "2", tag(t, "friends"))

	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Len(t, m.Filtered(), 1)
	assert.Zero(t, m.People()[1].Tags.Len())
}

// ---- UnTag -----------------------------------------------------------------

func TestTagService_UnTag_RemovesTagsAndProjects(t *testing.T) {
	m := newModel(t, &mockPersonRepo{},
		person(t, "Alice", "94351253", tag(t, "friends"), project(t, "project-x"), tag(t, "work")))
	svc := service.NewTagService(m)

	got, removed, err := svc.UnTag(context.Background(), "94351253",
		[]domain.Tag{tag(t, "Friends")}, []domain.Tag{project(t, "project-x")})

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"work"}, got.Tags.Names())
	assert.Equal(t, []string{"work"}, m.People()[0].Tags.Names())
}

func TestTagService_UnTag_NoMatchIsNoChange(t *testing.T) {
	r := &mockPersonRepo{
		replace: func(context.Context, domain.Person, domain.Person) error {
			t.Fatal("a no-op removal must not write")
			return nil
		},
	}
	m := newModel(t, r, person(t, "Carl", "91234567"))

	_, removed, err := service.NewTagService(m).UnTag(context.Background(), "91234567",
		[]domain.Tag{tag(t, "friends")}, nil)

	assert.ErrorIs(t, err, domain.ErrNoChange)
	assert.Zero(t, removed)
}

func TestTagService_UnTag_NoChangeReturnsUnchangedRecord(t *testing.T) {
	carl := person(t, "Carl Kurz", "91234567", tag(t, "work"))
	m := newModel(t, &mockPersonRepo{}, carl)

	got, _, err := service.NewTagService(m).UnTag(context.Background(), "91234567",
		[]domain.Tag{tag(t, "friends")}, nil)

	require.ErrorIs(t, err, domain.ErrNoChange)
	assert.True(t, got.Equal(carl), "the resolved record comes back untouched")
}

func TestTagService_UnTag_OtherErrorsReturnZeroPerson(t *testing.T) {
	m := newModel(t, &mockPersonRepo{
		replace: func(context.Context, domain.Person, domain.Person) error { return domain.ErrIO },
	}, person(t, "Carl Kurz", "91234567", tag(t, "work")))

	got, removed, err := service.NewTagService(m).UnTag(context.Background(), "91234567",
		[]domain.Tag{tag(t, "work")}, nil)

	require.ErrorIs(t, err, domain.ErrIO)
	assert.Zero(t, removed)
	assert.Equal(t, domain.Person{}, got)
}

func TestTagService_UnTag_NotFound(t *testing.T) {
	m := newModel(t, &mockPersonRepo{}, person(t, "Carl", "91234567"))

	_, _, err := service.NewTagService(m).UnTag(context.Background(), "1", []domain.Tag{tag(t, "friends")}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
