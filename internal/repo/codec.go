package repo

import (
	"encoding/json"
	"fmt"

	"github.com/pkordes/contactbook/internal/domain"
)

// addressBookJSON is the persisted form of the whole store. The live JSON
// data file and every snapshot file share this schema.
type addressBookJSON struct {
	Persons []personJSON `json:"persons"`
}

type personJSON struct {
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
	Tags  []tagJSON `json:"tags"`
}

// tagJSON stores a tag with its kind. Kind is omitted for plain tags so
// files written before projects existed still load.
type tagJSON struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// EncodeAddressBook serializes people, in order, to the address-book JSON
// format.
func EncodeAddressBook(people []domain.Person) ([]byte, error) {
	book := addressBookJSON{Persons: make([]personJSON, 0, len(people))}
	for _, p := range people {
		book.Persons = append(book.Persons, personToJSON(p))
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("repo.EncodeAddressBook: %w", err)
	}
	return data, nil
}

// DecodeAddressBook parses the address-book JSON format.
// Returns domain.ErrValidation for invalid tags or missing fields and
// domain.ErrDuplicate if two persons share a phone number.
func DecodeAddressBook(data []byte) ([]domain.Person, error) {
	var book addressBookJSON
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("repo.DecodeAddressBook: %w", err)
	}

	seen := make(map[domain.Phone]struct{}, len(book.Persons))
	people := make([]domain.Person, 0, len(book.Persons))
	for _, pj := range book.Persons {
		p, err := personFromJSON(pj)
		if err != nil {
			return nil, fmt.Errorf("repo.DecodeAddressBook: %w", err)
		}
		if _, dup := seen[p.Phone]; dup {
			return nil, fmt.Errorf("repo.DecodeAddressBook: phone %s: %w", p.Phone, domain.ErrDuplicate)
		}
		seen[p.Phone] = struct{}{}
		people = append(people, p)
	}
	return people, nil
}

func personToJSON(p domain.Person) personJSON {
	tags := make([]tagJSON, 0, p.Tags.Len())
	for _, t := range p.Tags.Tags() {
		tj := tagJSON{Name: t.Name()}
		if t.IsProject() {
			tj.Kind = domain.KindProject.String()
		}
		tags = append(tags, tj)
	}
	return personJSON{
		Name:  string(p.Name),
		Phone: string(p.Phone),
		Email: string(p.Email),
		Tags:  tags,
	}
}

func personFromJSON(pj personJSON) (domain.Person, error) {
	tags := make([]domain.Tag, 0, len(pj.Tags))
	for _, tj := range pj.Tags {
		kind, err := parseKind(tj.Kind)
		if err != nil {
			return domain.Person{}, err
		}
		t, err := domain.NewTagOfKind(tj.Name, kind)
		if err != nil {
			return domain.Person{}, err
		}
		tags = append(tags, t)
	}
	return domain.NewPerson(domain.Name(pj.Name), domain.Phone(pj.Phone), domain.Email(pj.Email), domain.NewTagSet(tags...))
}

// parseKind maps the persisted kind string back to a domain.TagKind.
// An empty string means a plain tag.
func parseKind(s string) (domain.TagKind, error) {
	switch s {
	case "", "tag":
		return domain.KindTag, nil
	case "project":
		return domain.KindProject, nil
	default:
		return 0, fmt.Errorf("%w: unknown tag kind %q", domain.ErrValidation, s)
	}
}
