package runs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a window length, a step or an offset
// range does not describe a valid query.
var ErrInvalidArgument = errors.New("invalid argument")

// A window is a fixed-size ring of the last n predicate outcomes along
// with the number of outcomes currently true.
type window struct {
	ring    []bool
	oldest  int
	filled  int
	matches int
}

func newWindow(n int) *window {
	return &window{ring: make([]bool, n)}
}

// push records the outcome for the next source element, discarding the
// oldest outcome once the ring is full. It reports whether the ring holds
// a complete window.
func (w *window) push(outcome bool) bool {
	if w.filled == len(w.ring) {
		if w.ring[w.oldest] {
			w.matches--
		}
	} else {
		w.filled++
	}
	w.ring[w.oldest] = outcome
	if outcome {
		w.matches++
	}
	w.oldest++
	if w.oldest == len(w.ring) {
		w.oldest = 0
	}
	return w.filled == len(w.ring)
}

// full reports whether every outcome in the ring is true.
func (w *window) full() bool {
	return w.matches == len(w.ring)
}

// Count returns the number of overlapping windows of length n in src whose
// elements all satisfy p. Windows advance one element at a time; a source
// holding fewer than n elements has no windows. The source is streamed
// exactly once and p is evaluated once per element, using space
// proportional to n regardless of the source length.
func Count[T any](n int, p Predicate[T], src Iterator[T]) (int, error) {
	return CountStep(n, 1, p, src)
}

// CountStep behaves like Count with windows advancing step elements at a
// time: only windows whose offset in src is a multiple of step are
// considered.
func CountStep[T any](n, step int, p Predicate[T], src Iterator[T]) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: window length %d", ErrInvalidArgument, n)
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: step %d", ErrInvalidArgument, step)
	}
	w := newWindow(n)
	count := 0
	for i := 0; ; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		if !w.push(p(v)) {
			continue
		}
		if (i-n+1)%step == 0 && w.full() {
			count++
		}
	}
	return count, nil
}

// CountSlice is a convenience function equivalent to Count over an
// iterator built from values.
func CountSlice[T any](n int, p Predicate[T], values []T) (int, error) {
	return Count(n, p, FromSlice(values))
}
