package domain

// TagSet is an insertion-ordered set of tags. No two members are Equal.
// A TagSet is never modified after construction; MergeTag and RemoveTags
// return a new set backed by a new slice.
type TagSet struct {
	tags []Tag
}

// NewTagSet builds a set from tags in the given order.
// Later duplicates of an earlier tag are dropped; the first occurrence wins.
func NewTagSet(tags ...Tag) TagSet {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if indexOf(out, t) < 0 {
			out = append(out, t)
		}
	}
	return TagSet{tags: out}
}

// Tags returns a copy of the members in insertion order.
func (s TagSet) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Names returns the member names in insertion order.
func (s TagSet) Names() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = t.Name()
	}
	return out
}

// Len returns the number of members.
func (s TagSet) Len() int { return len(s.tags) }

// Contains reports whether a member is Equal to t.
func (s TagSet) Contains(t Tag) bool {
	return indexOf(s.tags, t) >= 0
}

// Equal reports whether both sets hold Equal members in the same order.
func (s TagSet) Equal(other TagSet) bool {
	if len(s.tags) != len(other.tags) {
		return false
	}
	for i := range s.tags {
		if !s.tags[i].Equal(other.tags[i]) {
			return false
		}
	}
	return true
}

// MergeTag returns a new set holding every member of current followed by tag.
// If current already contains tag the content is unchanged, but the returned
// set still does not share storage with current.
func MergeTag(tag Tag, current TagSet) TagSet {
	out := make([]Tag, len(current.tags), len(current.tags)+1)
	copy(out, current.tags)
	if indexOf(out, tag) < 0 {
		out = append(out, tag)
	}
	return TagSet{tags: out}
}

// RemoveTags returns current without any member Equal to an element of tags
// or projects, together with the number of members dropped.
// Removal requests with no match are ignored. Kind is not considered, so a
// project named "friends" removes a plain tag named "friends".
func RemoveTags(tags, projects []Tag, current TagSet) (TagSet, int) {
	drop := make(map[string]struct{}, len(tags)+len(projects))
	for _, t := range tags {
		drop[t.Key()] = struct{}{}
	}
	for _, p := range projects {
		drop[p.Key()] = struct{}{}
	}

	out := make([]Tag, 0, len(current.tags))
	for _, t := range current.tags {
		if _, ok := drop[t.Key()]; ok {
			continue
		}
		out = append(out, t)
	}
	return TagSet{tags: out}, len(current.tags) - len(out)
}

func indexOf(tags []Tag, t Tag) int {
	for i, existing := range tags {
		if existing.Equal(t) {
			return i
		}
	}
	return -1
}
