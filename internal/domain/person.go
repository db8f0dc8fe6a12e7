// Package domain contains the core data types for the contact book: tags,
// tag sets, person records and the predicates that filter them.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, command, handler).
package domain

import (
	"fmt"
	"strings"
)

// Name is a person's display name.
type Name string

// Phone is a person's phone number. Phone is the identity of a live record.
type Phone string

// Email is a person's email address.
type Email string

// Person is an immutable contact record.
// Edits never happen in place: WithTag and WithoutTags return a replacement
// record, and the store swaps the old record for the new one.
type Person struct {
	Name  Name
	Phone Phone
	Email Email
	Tags  TagSet
}

// NewPerson checks that the identifying fields are present and returns a
// Person. Field syntax beyond non-emptiness is not checked here.
func NewPerson(name Name, phone Phone, email Email, tags TagSet) (Person, error) {
	if strings.TrimSpace(string(name)) == "" {
		return Person{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(string(phone)) == "" {
		return Person{}, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	return Person{Name: name, Phone: phone, Email: email, Tags: tags}, nil
}

// WithTag returns a copy of p whose tag set also contains t.
func (p Person) WithTag(t Tag) Person {
	p.Tags = MergeTag(t, p.Tags)
	return p
}

// WithoutTags returns a copy of p with every matching tag or project removed,
// and the number of tags that were actually dropped.
func (p Person) WithoutTags(tags, projects []Tag) (Person, int) {
	var removed int
	p.Tags, removed = RemoveTags(tags, projects, p.Tags)
	return p, removed
}

// SameIdentity reports whether p and other describe the same live record.
func (p Person) SameIdentity(other Person) bool {
	return p.Phone == other.Phone
}

// Equal reports whether every field of p and other matches.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Tags.Equal(other.Tags)
}

// String renders a single summary line for the CLI.
func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Tags: ", p.Name, p.Phone, p.Email)
	for _, t := range p.Tags.Tags() {
		b.WriteString(t.String())
	}
	return b.String()
}
