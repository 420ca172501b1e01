package otp

import "iter"

// Window describes how many counter steps around the expected one a
// verifier also accepts. The zero value accepts only the exact counter.
type Window struct {
	// Previous is the number of earlier steps to accept.
	Previous uint
	// Future is the number of later steps to accept.
	Future uint
}

var (
	// DefaultWindow accepts only the exact counter.
	DefaultWindow = Window{}
	// NetworkDelayWindow accepts one step before and one step after,
	// the RFC-recommended tolerance for transmission delay.
	NetworkDelayWindow = Window{Previous: 1, Future: 1}
)

// Candidates yields the counters to try, in verification order: the
// initial counter first, then earlier counters descending (stopping
// before any negative counter), then later counters ascending. The
// sequence is stateless and can be re-enumerated.
func (w Window) Candidates(initial int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if !yield(initial) {
			return
		}
		for i := uint(1); i <= w.Previous; i++ {
			candidate := initial - int64(i)
			if candidate < 0 {
				break
			}
			if !yield(candidate) {
				return
			}
		}
		for i := uint(1); i <= w.Future; i++ {
			if !yield(initial + int64(i)) {
				return
			}
		}
	}
}
