package runs

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// A Summary holds the aggregate results of a single streaming pass over a
// source.
type Summary struct {
	Elements int `json:"elements"` // elements read from the source
	Matches  int `json:"matches"`  // elements satisfying the predicate
	Windows  int `json:"windows"`  // windows examined
	Runs     int `json:"runs"`     // windows whose elements all match
	Longest  int `json:"longest"`  // longest streak of consecutive matching elements
}

// Summarize streams src once and aggregates run statistics for windows of
// length n advancing one element at a time.
func Summarize[T any](n int, p Predicate[T], src Iterator[T]) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("%w: window length %d", ErrInvalidArgument, n)
	}
	var s Summary
	w := newWindow(n)
	streak := 0
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		s.Elements++
		outcome := p(v)
		if outcome {
			s.Matches++
			streak++
			if streak > s.Longest {
				s.Longest = streak
			}
		} else {
			streak = 0
		}
		if !w.push(outcome) {
			continue
		}
		s.Windows++
		if w.full() {
			s.Runs++
		}
	}
	return s, nil
}

// Serialize is a convenience method that returns the JSON encoding of the
// summary.
func (s Summary) Serialize() []byte {
	buf, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s)
	if err != nil {
		// The summary holds nothing but integers.
		panic(err)
	}
	return buf
}
