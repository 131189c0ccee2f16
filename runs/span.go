package runs

import (
	"fmt"
	"math"
)

// span represents a closed interval of window offsets.
type span struct {
	start int
	end   int
}

// intersect returns the intersection with the closed span y. If no
// intersection is found, the second value returned by the method
// is false.
func (x span) intersect(y span) (span, bool) {
	if x.start <= y.start {
		if x.end >= y.end {
			return y, true
		}
		if x.end >= y.start {
			return span{start: y.start, end: x.end}, true
		}
	} else if x.start <= y.end {
		if x.end >= y.end {
			return span{start: x.start, end: y.end}, true
		}
		return x, true
	}
	return span{}, false
}

// CountRange behaves like Count restricted to windows whose offset in src
// lies in the closed interval [lo, hi]. The interval is intersected with
// the offsets a window can actually have; an interval that does not
// overlap them yields 0. The source is read only as far as needed. The
// function returns an error if lo > hi.
func CountRange[T any](n int, p Predicate[T], src Iterator[T], lo, hi int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: window length %d", ErrInvalidArgument, n)
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: offset range [%d, %d]", ErrInvalidArgument, lo, hi)
	}
	r, ok := (span{start: lo, end: hi}).intersect(span{start: 0, end: math.MaxInt})
	if !ok {
		return 0, nil
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
		offset := i - n + 1
		if offset > r.end {
			break
		}
		if offset >= r.start && w.full() {
			count++
		}
	}
	return count, nil
}
