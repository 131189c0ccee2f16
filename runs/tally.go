package runs

import (
	"fmt"
)

// Tally applies p to each element of src and returns, for each window of
// length n advancing step elements at a time, the number of elements in
// the window that satisfy p. A source holding fewer than n elements yields
// an empty tally. The result grows with the number of windows; use Count
// or Summarize when only aggregates are needed.
func Tally[T any](n, step int, p Predicate[T], src Iterator[T]) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: window length %d", ErrInvalidArgument, n)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidArgument, step)
	}
	w := newWindow(n)
	var tally []int
	for i := 0; ; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		if !w.push(p(v)) {
			continue
		}
		if (i-n+1)%step == 0 {
			tally = append(tally, w.matches)
		}
	}
	return tally, nil
}
