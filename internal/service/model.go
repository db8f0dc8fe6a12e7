// Package service contains the business logic for the contact book.
// Model is the in-memory record store with its filtered view; the other
// services resolve records in it and apply copy-on-write edits.
// No storage code lives here: services depend on repo interfaces.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/contactbook/internal/domain"
	"github.com/pkordes/contactbook/internal/repo"
)

// Model holds every live person record, in order, plus the predicate that
// defines the filtered view. Every write goes to the repo first, so a failed
// write leaves both the repo and the in-memory state unchanged.
//
// Model is not safe for concurrent use; callers serialize access (see
// command.Executor).
type Model struct {
	repo   repo.PersonRepo
	people []domain.Person
	filter domain.PersonPredicate
}

// NewModel loads all persons from r and shows everyone.
func NewModel(ctx context.Context, r repo.PersonRepo) (*Model, error) {
	people, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.NewModel: %w", err)
	}
	return &Model{repo: r, people: people, filter: domain.ShowAll}, nil
}

// People returns the full store regardless of the current filter.
func (m *Model) People() []domain.Person {
	out := make([]domain.Person, len(m.people))
	copy(out, m.people)
	return out
}

// Filtered returns the persons that satisfy the current filter, in store order.
// Always returns a non-nil slice.
func (m *Model) Filtered() []domain.Person {
	out := []domain.Person{}
	for _, p := range m.people {
		if m.filter(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilter replaces the view predicate. A nil predicate shows everyone.
func (m *Model) UpdateFilter(pred domain.PersonPredicate) {
	if pred == nil {
		pred = domain.ShowAll
	}
	m.filter = pred
}

// FindByPhone returns the unique person in the filtered view with phone.
// Returns domain.ErrNotFound if there is none and domain.ErrDuplicate if the
// phone uniqueness invariant is broken.
func (m *Model) FindByPhone(phone domain.Phone) (domain.Person, error) {
	var (
		found domain.Person
		n     int
	)
	for _, p := range m.people {
		if p.Phone == phone && m.filter(p) {
			found = p
			n++
		}
	}
	switch n {
	case 0:
		return domain.Person{}, fmt.Errorf("service.Model.FindByPhone: %w", domain.ErrNotFound)
	case 1:
		return found, nil
	default:
		return domain.Person{}, fmt.Errorf("service.Model.FindByPhone: phone %s: %w", phone, domain.ErrDuplicate)
	}
}

// Add persists p and appends it to the store.
// Returns domain.ErrDuplicate if a live record already has p.Phone.
func (m *Model) Add(ctx context.Context, p domain.Person) error {
	if m.indexOf(p.Phone) >= 0 {
		return fmt.Errorf("service.Model.Add: phone %s: %w", p.Phone, domain.ErrDuplicate)
	}
	if err := m.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("service.Model.Add: %w", err)
	}

	next := make([]domain.Person, len(m.people), len(m.people)+1)
	copy(next, m.people)
	m.people = append(next, p)
	return nil
}

// SeedIfEmpty adds people when the store holds nobody and returns how many
// were added. A store with any record is left alone.
func (m *Model) SeedIfEmpty(ctx context.Context, people []domain.Person) (int, error) {
	if len(m.people) > 0 {
		return 0, nil
	}
	for i, p := range people {
		if err := m.Add(ctx, p); err != nil {
			return i, fmt.Errorf("service.Model.SeedIfEmpty: %w", err)
		}
	}
	return len(people), nil
}

// Replace substitutes the record with old's identity by updated.
// Returns domain.ErrNotFound if old is not in the store and
// domain.ErrDuplicate if updated would share a phone with another record.
func (m *Model) Replace(ctx context.Context, old, updated domain.Person) error {
	idx := m.indexOf(old.Phone)
	if idx < 0 {
		return fmt.Errorf("service.Model.Replace: %w", domain.ErrNotFound)
	}
	if other := m.indexOf(updated.Phone); other >= 0 && other != idx {
		return fmt.Errorf("service.Model.Replace: phone %s: %w", updated.Phone, domain.ErrDuplicate)
	}

	if err := m.repo.Replace(ctx, old, updated); err != nil {
		return fmt.Errorf("service.Model.Replace: %w", err)
	}

	// Swap in a fresh slice so slices handed out earlier keep the old record.
	next := make([]domain.Person, len(m.people))
	copy(next, m.people)
	next[idx] = updated
	m.people = next
	return nil
}

func (m *Model) indexOf(phone domain.Phone) int {
	for i, p := range m.people {
		if p.Phone == phone {
			return i
		}
	}
	return -1
}
