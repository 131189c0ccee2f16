package sequence

import (
	"math/big"
	"sync"
)

// A Source describes how to create a fresh, independent iteration of a
// sequence.
type Source func() Generator[*big.Int]

// A Registry represents a collection of named sequence sources. A Registry
// can be used simultaneously from multiple goroutines.
type Registry struct {
	m  map[string]Source
	mu sync.RWMutex
}

// NewRegistry creates and initializes a new Registry preloaded with the
// "fibonacci", "lucas" and "pell" sequences.
func NewRegistry() *Registry {
	r := &Registry{m: make(map[string]Source)}
	r.Register("fibonacci", func() Generator[*big.Int] {
		return NewFib()
	})
	r.Register("lucas", func() Generator[*big.Int] {
		return Unfold(bigPair{a: big.NewInt(2), b: big.NewInt(1)}, stepSum)
	})
	r.Register("pell", func() Generator[*big.Int] {
		return Unfold(bigPair{a: big.NewInt(0), b: big.NewInt(1)}, stepPell)
	})
	return r
}

// Register adds a source to the registry using name as its identifier. If a
// source already exists for the identifier it is silently replaced with the
// new source.
func (r *Registry) Register(name string, src Source) {
	r.mu.Lock()
	r.m[name] = src
	r.mu.Unlock()
}

// New returns a fresh iteration of the sequence associated to name. The
// second return value is true if the name exists in the registry and false
// if not. Iterations returned by successive calls are fully independent.
func (r *Registry) New(name string) (Generator[*big.Int], bool) {
	r.mu.RLock()
	src, ok := r.m[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return src(), true
}

// Names returns the identifiers known in the registry.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.m))
	i := 0
	for k := range r.m {
		names[i] = k
		i++
	}
	return names
}

// bigPair is the carry state of the two-term recurrences shipped with the
// registry.
type bigPair struct {
	a, b *big.Int
}

// stepSum emits a and advances to (b, a+b).
func stepSum(s bigPair) (*big.Int, bigPair) {
	return new(big.Int).Set(s.a), bigPair{a: s.b, b: new(big.Int).Add(s.a, s.b)}
}

// stepPell emits a and advances to (b, a+2b).
func stepPell(s bigPair) (*big.Int, bigPair) {
	next := new(big.Int).Lsh(s.b, 1)
	next.Add(next, s.a)
	return new(big.Int).Set(s.a), bigPair{a: s.b, b: next}
}
