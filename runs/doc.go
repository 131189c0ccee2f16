/*
Package runs implements streaming run analysis of sequences. A run is a
contiguous window whose elements all satisfy a predicate. The package
counts and aggregates fixed-length windows over any source that can be
streamed once, left to right, including the lazily generated sequences of
the sequence package.

Sources are consumed through the interface Iterator; a slice or a bounded
prefix of a generator can be adapted with FromSlice and Limit. All
functions run in a single pass, evaluate the predicate once per element,
and use space proportional to the window length, never to the source
length.
*/
package runs
