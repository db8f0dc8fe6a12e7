package repo

import "github.com/pkordes/contactbook/internal/domain"

// SamplePeople returns the address book a fresh installation starts with
// when no data file exists yet.
func SamplePeople() []domain.Person {
	return []domain.Person{
		samplePerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "friends"),
		samplePerson("Bernice Yu", "99272758", "berniceyu@example.com", "colleagues", "friends"),
		samplePerson("Charlotte Oliveiro", "93210283", "charlotte@example.com", "neighbours"),
		samplePerson("David Li", "91031282", "lidavid@example.com", "family"),
		samplePerson("Irfan Ibrahim", "92492021", "irfan@example.com", "classmates"),
		samplePerson("Roy Balakrishnan", "92624417", "royb@example.com", "colleagues"),
	}
}

// samplePerson panics on invalid input; the arguments are constants above.
func samplePerson(name, phone, email string, tagNames ...string) domain.Person {
	tags := make([]domain.Tag, 0, len(tagNames))
	for _, n := range tagNames {
		t, err := domain.NewTag(n)
		if err != nil {
			panic("repo: invalid sample tag " + n)
		}
		tags = append(tags, t)
	}
	p, err := domain.NewPerson(domain.Name(name), domain.Phone(phone), domain.Email(email), domain.NewTagSet(tags...))
	if err != nil {
		panic("repo: invalid sample person " + name)
	}
	return p
}
