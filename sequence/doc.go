/*
Package sequence implements lazy generation of unbounded numeric sequences.
It defines the interface Generator, the generic type Unfolded for building
generators from a seed state and a transition rule, and ready-made Fibonacci
generators in arbitrary-precision and fixed-width flavors.

A generator carries only the minimal state needed to produce its next
element (for Fibonacci, the next two values). It never retains the elements
it has emitted, so consuming an arbitrarily long prefix while discarding it
runs in constant space. Resetting a generator and replaying it produces a
bit-identical sequence.

A Registry is essentially a wrapper around a map of named sequence sources
that provides convenience methods safe to use from multiple goroutines.
*/
package sequence
