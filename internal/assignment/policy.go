package assignment

// InitialReviewers is how many reviewers a new pull request gets when the pool allows it.
const InitialReviewers = 2

// ChooseInitialReviewers drops the author from candidates and picks up to InitialReviewers of the rest.
// An empty pool yields an empty, non-nil slice.
func ChooseInitialReviewers(candidates Candidates, authorID string, p Picker) []string {
	pool := candidates.Without(authorID).Sorted()

	switch len(pool) {
	case 0:
		return []string{}
	case 1:
		return pool
	}

	return pickFrom(pool, InitialReviewers, p)
}

// ChooseReplacement picks one candidate. ok is false when candidates is empty.
func ChooseReplacement(candidates Candidates, p Picker) (id string, ok bool) {
	if candidates.Len() == 0 {
		return "", false
	}

	return pickFrom(candidates.Sorted(), 1, p)[0], true
}

func pickFrom(pool []string, k int, p Picker) []string {
	idx := p.Pick(len(pool), k)

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = pool[j]
	}

	return out
}
