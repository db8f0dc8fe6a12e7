package domain

import (
	"strings"
	"unicode"
)

// PersonPredicate selects which persons appear in the store's filtered view.
type PersonPredicate func(Person) bool

// ShowAll is the predicate that lets every person through.
func ShowAll(Person) bool { return true }

// MatchKeywords builds the predicate used by find.
// If every keyword is made of digits the keywords are treated as phone
// numbers and a person matches when their phone equals any keyword.
// Otherwise a person matches when their name contains any keyword,
// ignoring case. Empty keyword lists match nobody.
func MatchKeywords(keywords []string) PersonPredicate {
	words := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			words = append(words, k)
		}
	}
	if len(words) == 0 {
		return func(Person) bool { return false }
	}

	if allDigits(words) {
		return func(p Person) bool {
			for _, w := range words {
				if string(p.Phone) == w {
					return true
				}
			}
			return false
		}
	}

	return func(p Person) bool {
		name := strings.ToLower(string(p.Name))
		for _, w := range words {
			if strings.Contains(name, strings.ToLower(w)) {
				return true
			}
		}
		return false
	}
}

func allDigits(words []string) bool {
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}
