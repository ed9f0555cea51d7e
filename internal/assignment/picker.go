package assignment

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Picker selects k distinct indexes from [0, n).
// Implementations must return min(k, n) indexes.
type Picker interface {
	Pick(n, k int) []int
}

// RandomPicker picks uniformly at random without replacement. Safe for concurrent use.
type RandomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPicker returns a picker seeded from crypto/rand.
func NewRandomPicker() *RandomPicker {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])

	return &RandomPicker{rnd: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededPicker returns a reproducible picker.
func NewSeededPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (p *RandomPicker) Pick(n, k int) []int {
	k = min(k, n)
	if k <= 0 {
		return []int{}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + p.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}
