package sequence

import (
	"math/big"
	"math/bits"
)

// A Fib generates the Fibonacci numbers F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2)
// as arbitrary-precision integers. Its carry state is the next two values
// of the sequence; emitted values never alias the carry, callers are free
// to mutate them.
type Fib struct {
	a, b *big.Int
}

// NewFib creates and initializes a new Fib positioned at F(0).
func NewFib() *Fib {
	return &Fib{a: big.NewInt(0), b: big.NewInt(1)}
}

// Next emits the next Fibonacci number.
func (f *Fib) Next() *big.Int {
	v := new(big.Int).Set(f.a)
	f.a, f.b = f.b, new(big.Int).Add(f.a, f.b)
	return v
}

// Reset returns the generator to F(0).
func (f *Fib) Reset() {
	f.a, f.b = big.NewInt(0), big.NewInt(1)
}

// Fib64 iteration states.
const (
	fib64Running uint8 = iota
	fib64Last
	fib64Done
)

// A Fib64 generates Fibonacci numbers as fixed-width uint64 values. It is
// the explicitly opted-into alternative to Fib for callers that want
// machine integers: instead of growing without bound, Next reports
// ErrOverflow once the next number exceeds the uint64 range. F(93) is the
// last representable value.
type Fib64 struct {
	a, b  uint64
	state uint8
}

// NewFib64 creates and initializes a new Fib64 positioned at F(0).
func NewFib64() *Fib64 {
	return &Fib64{a: 0, b: 1}
}

// Next emits the next Fibonacci number. It returns ErrOverflow if the
// number is not representable as a uint64; once exhausted the generator
// keeps returning ErrOverflow until it is reset.
func (f *Fib64) Next() (uint64, error) {
	switch f.state {
	case fib64Done:
		return 0, ErrOverflow
	case fib64Last:
		f.state = fib64Done
		return f.a, nil
	}
	v := f.a
	sum, carry := bits.Add64(f.a, f.b, 0)
	if carry != 0 {
		// b is the last value that fits.
		f.a = f.b
		f.state = fib64Last
		return v, nil
	}
	f.a, f.b = f.b, sum
	return v, nil
}

// Reset returns the generator to F(0).
func (f *Fib64) Reset() {
	f.a, f.b, f.state = 0, 1, fib64Running
}
