package discovery

import "sort"

// TagSet is a set of tag labels. Only membership matters.
type TagSet map[string]struct{}

// NewTagSet builds a set, skipping empty labels.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}

func (s TagSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}

func (s TagSet) Len() int { return len(s) }

// Intersects reports whether any of tags is in the set.
func (s TagSet) Intersects(tags []string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the members in lexical order; never nil.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s TagSet) Clone() TagSet {
	c := make(TagSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}
