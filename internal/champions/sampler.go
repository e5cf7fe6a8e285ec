package champions

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler draws champions without replacement. Safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler returns a sampler seeded from the clock.
func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler is used by tests that need a reproducible sequence.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Sample returns up to count distinct champions from the eligible pool in random order.
// count is clamped to the pool size; a negative count yields an empty list.
func (s *Sampler) Sample(count int, excludeUnkillables bool) []string {
	candidates := Eligible(excludeUnkillables)
	if count > len(candidates) {
		count = len(candidates)
	}
	if count <= 0 {
		return []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// partial Fisher-Yates: the first count slots end up as a uniform draw
	for i := 0; i < count; i++ {
		j := i + s.rnd.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:count:count]
}
