package assignment

import "sort"

// Candidates is a set of user ids eligible for review.
type Candidates map[string]struct{}

func NewCandidates(ids ...string) Candidates {
	c := make(Candidates, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}

	return c
}

func (c Candidates) Has(id string) bool {
	_, ok := c[id]
	return ok
}

func (c Candidates) Len() int { return len(c) }

// Without returns a copy of c with ids removed. c is not modified.
func (c Candidates) Without(ids ...string) Candidates {
	out := make(Candidates, len(c))
	for id := range c {
		out[id] = struct{}{}
	}

	for _, id := range ids {
		delete(out, id)
	}

	return out
}

// Sorted returns the ids in ascending order, which is the order a Picker indexes into.
func (c Candidates) Sorted() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
