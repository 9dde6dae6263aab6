package rng

import (
	"math/rand/v2"
)

// golden is the odd multiplier used to spread consecutive counters across
// the 32-bit seed space.
const golden = 0x9E3779B1

// Source is the subset of a random generator the game layers consume.
type Source interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Stream is a deterministic generator derived from a (seed, counter) pair.
type Stream struct {
	r *rand.Rand
}

// Mix folds the counter into the seed and truncates to 32 bits.
func Mix(seed, counter int64) uint64 {
	return uint64((seed ^ (counter * golden)) & 0xFFFFFFFF)
}

// New returns the stream for the given seed and counter without touching
// any persisted state.
func New(seed, counter int64) *Stream {
	m := Mix(seed, counter)
	return &Stream{r: rand.New(rand.NewPCG(m, m^golden))}
}

// Next derives the stream for the current counter value and advances the
// counter so the following call yields a fresh stream.
func Next(seed int64, counter *int64) *Stream {
	s := New(seed, *counter)
	*counter++
	return s
}

func (s *Stream) Float64() float64 { return s.r.Float64() }

// IntN returns a value in [0, n). Non-positive n yields 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	s.r.Shuffle(n, swap)
}

// Between returns an integer in the closed range [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Chance reports whether a roll lands under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element. The slice must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Sample returns up to k distinct elements in draw order.
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// PickWeighted draws an index with probability proportional to its
// weight. Negative weights count as zero; the draw is a uniform point on
// [0, total] walked through the cumulative sums, falling back to the last
// entry.
func PickWeighted(src Source, weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	r := 0.0
	if total > 0 {
		r = Uniform(src, 0, float64(total))
	}
	acc := 0.0
	for i, w := range weights {
		if w > 0 {
			acc += float64(w)
		}
		if r <= acc && w > 0 {
			return i
		}
	}
	return len(weights) - 1
}
