package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the package.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverflow        = errors.New("overflow")
)

// A Rule is a deterministic transition mapping the current carry state to
// the value to emit and the next carry state. A rule must be pure: it must
// not mutate the state it is given, or restart determinism is lost.
type Rule[S, T any] func(state S) (value T, next S)

// A Generator produces the elements of an unbounded ordered sequence. Next
// emits the next element and advances the iteration. Reset returns the
// iteration to its starting point; a reset generator replays the exact same
// sequence of values.
type Generator[T any] interface {
	Next() T
	Reset()
}

// An Unfolded is a Generator driven by a seed state and a transition rule.
// Its only retained state is the seed and the current carry, never the
// values already emitted.
type Unfolded[S, T any] struct {
	seed  S
	rule  Rule[S, T]
	state S
}

// Unfold creates and initializes a new Unfolded generator using seed as its
// initial carry state and rule as its transition.
func Unfold[S, T any](seed S, rule func(state S) (value T, next S)) *Unfolded[S, T] {
	return &Unfolded[S, T]{seed: seed, rule: rule, state: seed}
}

// Next emits the next element of the sequence and advances the carry state.
func (g *Unfolded[S, T]) Next() T {
	v, next := g.rule(g.state)
	g.state = next
	return v
}

// Reset returns the generator to its seed state.
func (g *Unfolded[S, T]) Reset() {
	g.state = g.seed
}

// At returns the element at index n of the sequence produced by g,
// restarting g first. It runs in constant extra space regardless of n and
// leaves g positioned after index n. The method returns an error if n is
// negative.
func At[T any](g Generator[T], n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, fmt.Errorf("%w: negative index %d", ErrInvalidArgument, n)
	}
	g.Reset()
	for i := 0; i < n; i++ {
		g.Next()
	}
	return g.Next(), nil
}

// Take returns the first n elements of the sequence produced by g,
// restarting g first. It returns an error if n is negative.
func Take[T any](g Generator[T], n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	g.Reset()
	values := make([]T, n)
	for i := range values {
		values[i] = g.Next()
	}
	return values, nil
}
