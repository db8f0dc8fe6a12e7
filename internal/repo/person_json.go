package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkordes/contactbook/internal/domain"
)

// jsonPersonRepo is the JSON-file implementation of PersonRepo.
// The whole address book is rewritten atomically on every change.
type jsonPersonRepo struct {
	mu   sync.Mutex
	path string
	seed []domain.Person
}

// NewJSONPersonRepo constructs a PersonRepo backed by the JSON file at path.
// Until the file exists, List returns seed and the first write persists seed
// together with the change.
func NewJSONPersonRepo(path string, seed []domain.Person) PersonRepo {
	return &jsonPersonRepo{path: path, seed: seed}
}

// List reads the data file, or returns the seed if the file does not exist.
func (r *jsonPersonRepo) List(ctx context.Context) ([]domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	people, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("repo.JSONPersonRepo.List: %w", err)
	}
	return people, nil
}

// Create appends p to the address book.
func (r *jsonPersonRepo) Create(ctx context.Context, p domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	people, err := r.load()
	if err != nil {
		return fmt.Errorf("repo.JSONPersonRepo.Create: %w", err)
	}
	for _, existing := range people {
		if existing.SameIdentity(p) {
			return fmt.Errorf("repo.JSONPersonRepo.Create: phone %s: %w", p.Phone, domain.ErrDuplicate)
		}
	}
	if err := r.save(append(people, p)); err != nil {
		return fmt.Errorf("repo.JSONPersonRepo.Create: %w", err)
	}
	return nil
}

// Replace swaps the record with old.Phone for updated, keeping its position.
func (r *jsonPersonRepo) Replace(ctx context.Context, old, updated domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	people, err := r.load()
	if err != nil {
		return fmt.Errorf("repo.JSONPersonRepo.Replace: %w", err)
	}

	idx := -1
	for i, existing := range people {
		if existing.SameIdentity(old) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("repo.JSONPersonRepo.Replace: %w", domain.ErrNotFound)
	}
	for i, existing := range people {
		if i != idx && existing.SameIdentity(updated) {
			return fmt.Errorf("repo.JSONPersonRepo.Replace: phone %s: %w", updated.Phone, domain.ErrDuplicate)
		}
	}

	people[idx] = updated
	if err := r.save(people); err != nil {
		return fmt.Errorf("repo.JSONPersonRepo.Replace: %w", err)
	}
	return nil
}

func (r *jsonPersonRepo) load() ([]domain.Person, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		out := make([]domain.Person, len(r.seed))
		copy(out, r.seed)
		return out, nil
	}
	if err != nil {
		return nil, classifyFileError(err)
	}
	return DecodeAddressBook(data)
}

func (r *jsonPersonRepo) save(people []domain.Person) error {
	data, err := EncodeAddressBook(people)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return classifyFileError(err)
		}
	}
	if err := atomicWriteFile(r.path, data, 0o644); err != nil {
		return classifyFileError(err)
	}
	return nil
}
