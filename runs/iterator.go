package runs

// An Iterator streams the elements of a sequence from left to right. Next
// returns the next element; the second return value is false when the
// sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// FromSlice returns an Iterator over the elements of values.
func FromSlice[T any](values []T) Iterator[T] {
	return &sliceIterator[T]{values: values}
}

type sliceIterator[T any] struct {
	values []T
	index  int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.index >= len(it.values) {
		var zero T
		return zero, false
	}
	v := it.values[it.index]
	it.index++
	return v, true
}

// Limit bounds an unbounded producer to its first n elements, adapting it
// to an Iterator. The generators of the sequence package satisfy the
// producer constraint.
func Limit[T any](g interface{ Next() T }, n int) Iterator[T] {
	return &limitIterator[T]{g: g, remaining: n}
}

type limitIterator[T any] struct {
	g         interface{ Next() T }
	remaining int
}

func (it *limitIterator[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	return it.g.Next(), true
}
