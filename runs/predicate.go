package runs

// A Predicate reports whether an element matches a condition. Predicates
// must be pure: same element, same answer.
type Predicate[T any] func(T) bool

// Equal returns a Predicate satisfied by the elements equal to x.
func Equal[T comparable](x T) Predicate[T] {
	return func(v T) bool { return v == x }
}

// InSet returns a Predicate satisfied by the members of set, turning a
// plain set into a membership test.
func InSet[T comparable](set map[T]bool) Predicate[T] {
	return func(v T) bool { return set[v] }
}
