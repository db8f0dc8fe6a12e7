package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pkordes/contactbook/internal/domain"
)

// ---- NewTagSet -------------------------------------------------------------

func TestNewTagSet_DropsLaterDuplicates(t *testing.T) {
	set := domain.NewTagSet(mustTag(t, "friends"), mustTag(t, "work"), mustTag(t, "FRIENDS"))

	if diff := cmp.Diff([]string{"friends", "work"}, set.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestTagSet_TagsReturnsCopy(t *testing.T) {
	set := domain.NewTagSet(mustTag(t, "friends"))

	tags := set.Tags()
	tags[0] = mustTag(t, "mutated")

	assert.Equal(t, []string{"friends"}, set.Names())
}

// ---- MergeTag --------------------------------------------------------------

func TestMergeTag_AppendsAbsentTag(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"), mustTag(t, "colleagues"))

	got := domain.MergeTag(mustProject(t, "project-x"), current)

	if diff := cmp.Diff([]string{"friends", "colleagues", "project-x"}, got.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"friends", "colleagues"}, current.Names(), "input set must be untouched")
}

func TestMergeTag_IdempotentReAdd(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"), mustTag(t, "work"))

	got := domain.MergeTag(mustTag(t, "work"), current)

	assert.True(t, got.Equal(current))
	assert.Equal(t, 2, got.Len())
}

func TestMergeTag_CaseInsensitiveDoesNotGrow(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"))

	got := domain.MergeTag(mustTag(t, "FRIENDS"), current)

	assert.Equal(t, 1, got.Len())
	assert.Equal(t, []string{"friends"}, got.Names(), "existing casing wins")
}

func TestMergeTag_DoesNotAliasInput(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"))

	first := domain.MergeTag(mustTag(t, "a"), current)
	second := domain.MergeTag(mustTag(t, "b"), current)

	assert.Equal(t, []string{"friends", "a"}, first.Names())
	assert.Equal(t, []string{"friends", "b"}, second.Names())
}

func TestMergeTag_EmptySet(t *testing.T) {
	got := domain.MergeTag(mustTag(t, "friends"), domain.TagSet{})

	assert.Equal(t, []string{"friends"}, got.Names())
}

// ---- RemoveTags ------------------------------------------------------------

func TestRemoveTags_RemovesMatches(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"), mustProject(t, "project-x"), mustTag(t, "work"))

	got, removed := domain.RemoveTags(
		[]domain.Tag{mustTag(t, "FRIENDS")},
		[]domain.Tag{mustProject(t, "Project-X")},
		current,
	)

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"work"}, got.Names())
	assert.Equal(t, 3, current.Len(), "input set must be untouched")
}

func TestRemoveTags_AbsentIsNoChange(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "work"))

	got, removed := domain.RemoveTags([]domain.Tag{mustTag(t, "friends")}, nil, current)

	assert.Zero(t, removed)
	assert.True(t, got.Equal(current))
}

func TestRemoveTags_KindIgnored(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "friends"))

	got, removed := domain.RemoveTags(nil, []domain.Tag{mustProject(t, "friends")}, current)

	assert.Equal(t, 1, removed)
	assert.Zero(t, got.Len())
}

func TestRemoveTags_PreservesOrderOfSurvivors(t *testing.T) {
	current := domain.NewTagSet(mustTag(t, "a"), mustTag(t, "b"), mustTag(t, "c"), mustTag(t, "d"))

	got, _ := domain.RemoveTags([]domain.Tag{mustTag(t, "b")}, []domain.Tag{mustTag(t, "zzz")}, current)

	if diff := cmp.Diff([]string{"a", "c", "d"}, got.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
