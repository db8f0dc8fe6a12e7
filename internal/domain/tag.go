package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// TagConstraints is the user-facing description of a valid tag name.
const TagConstraints = "Tag names should be 1-20 characters long and contain only letters, digits, hyphens and underscores"

var tagNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,20}$`)

// TagKind discriminates plain tags from project tags. Both kinds share the
// same identity rules and live in the same TagSet.
type TagKind int

const (
	KindTag TagKind = iota
	KindProject
)

// String returns "tag" or "project".
func (k TagKind) String() string {
	if k == KindProject {
		return "project"
	}
	return "tag"
}

// Tag is a short case-insensitive label attached to a person.
// Construct it with NewTag or NewProject; the zero value is not a valid tag.
// Identity is the lower-cased name, so "Friends" and "friends" are equal.
type Tag struct {
	name string
	kind TagKind
}

// NewTag validates name and returns a plain tag.
// Returns ErrValidation if name violates TagConstraints.
func NewTag(name string) (Tag, error) {
	return newTag(name, KindTag)
}

// NewProject validates name and returns a project tag.
// Returns ErrValidation if name violates TagConstraints.
func NewProject(name string) (Tag, error) {
	return newTag(name, KindProject)
}

// NewTagOfKind is NewTag or NewProject selected by kind.
func NewTagOfKind(name string, kind TagKind) (Tag, error) {
	return newTag(name, kind)
}

func newTag(name string, kind TagKind) (Tag, error) {
	if !IsValidTagName(name) {
		return Tag{}, fmt.Errorf("%w: %s", ErrValidation, TagConstraints)
	}
	return Tag{name: name, kind: kind}, nil
}

// NewTags validates every name as a tag of kind, keeping order.
// Returns ErrValidation at the first invalid name.
func NewTags(names []string, kind TagKind) ([]Tag, error) {
	out := make([]Tag, 0, len(names))
	for _, name := range names {
		t, err := newTag(name, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// IsValidTagName reports whether name satisfies TagConstraints.
func IsValidTagName(name string) bool {
	return tagNamePattern.MatchString(name)
}

// Name returns the tag name with its original casing.
func (t Tag) Name() string { return t.name }

// Kind returns the tag's discriminant.
func (t Tag) Kind() TagKind { return t.kind }

// IsProject reports whether t was constructed as a project.
func (t Tag) IsProject() bool { return t.kind == KindProject }

// Key returns the identity of the tag: its lower-cased name.
func (t Tag) Key() string { return strings.ToLower(t.name) }

// Equal reports whether t and other identify the same tag.
// Comparison ignores case and kind.
func (t Tag) Equal(other Tag) bool {
	return strings.EqualFold(t.name, other.name)
}

// String renders the tag the way the CLI lists it, e.g. "[friends]".
func (t Tag) String() string {
	return "[" + t.name + "]"
}
