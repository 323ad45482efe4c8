/*
Package prime computes the prime factorization of integers up to a fixed bound.

A Factorizer builds its list of trial divisors once, at construction, from the
primes not exceeding the ceiling of the square root of its bound. Every later
query divides by those primes in ascending order and treats whatever remains
above 1 as the last, large prime factor.
*/
package prime

import (
	"errors"
	"fmt"

	"primefactorizer/sieve"
)

// ErrNegativeBound is returned when a Factorizer is created with a bound below zero.
var ErrNegativeBound = errors.New("factorizer bound must not be negative")

// Factorizer factorizes integers in the range [2, Bound()].
// It is immutable after construction and safe for concurrent use.
type Factorizer struct {
	bound    int
	strategy sieve.Strategy
	primes   []int
}

// Term is a prime raised to the power it appears with in a factorization.
type Term struct {
	Prime int
	Power int
}

// NewFactorizer creates a Factorizer for integers up to and including bound,
// building its primes with the direct sieve.
func NewFactorizer(bound int) (*Factorizer, error) {
	return NewFactorizerWithStrategy(bound, sieve.Direct)
}

// NewFactorizerWithStrategy is NewFactorizer with an explicit sieve strategy.
func NewFactorizerWithStrategy(bound int, strategy sieve.Strategy) (*Factorizer, error) {
	if bound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBound, bound)
	}

	primes, err := sieve.BuildWith(bound, strategy)
	if err != nil {
		return nil, err
	}

	return &Factorizer{
		bound:    bound,
		strategy: strategy,
		primes:   primes,
	}, nil
}

// Bound returns the largest integer the Factorizer accepts.
func (f *Factorizer) Bound() int {
	return f.bound
}

// Strategy returns the sieve strategy the primes were built with.
func (f *Factorizer) Strategy() sieve.Strategy {
	return f.strategy
}

// Primes returns a copy of the trial divisors.
func (f *Factorizer) Primes() []int {
	primes := make([]int, len(f.primes))
	copy(primes, f.primes)
	return primes
}

// Contains reports whether n lies in [2, Bound()].
func (f *Factorizer) Contains(n int) bool {
	return n >= 2 && n <= f.bound
}

// Factorize returns the prime factors of n in ascending order, repeated by
// multiplicity. The boolean is false, and the slice nil, when n is outside
// [2, Bound()].
func (f *Factorizer) Factorize(n int) ([]int, bool) {
	if !f.Contains(n) {
		return nil, false
	}

	factors := make([]int, 0, 8)
	for _, p := range f.primes {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
		if n == 1 {
			break
		}
	}

	// what remains is a single prime above every divisor tried
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, true
}

// Terms returns the factorization of n grouped by prime, in ascending order.
// The boolean is false when n is outside [2, Bound()].
func (f *Factorizer) Terms(n int) ([]Term, bool) {
	factors, ok := f.Factorize(n)
	if !ok {
		return nil, false
	}

	terms := make([]Term, 0, len(factors))
	for _, p := range factors {
		if last := len(terms) - 1; last >= 0 && terms[last].Prime == p {
			terms[last].Power++
			continue
		}
		terms = append(terms, Term{Prime: p, Power: 1})
	}
	return terms, true
}

// IsPrime reports whether n is prime. The second result is false when n is
// outside [2, Bound()].
func (f *Factorizer) IsPrime(n int) (bool, bool) {
	factors, ok := f.Factorize(n)
	if !ok {
		return false, false
	}
	return len(factors) == 1, true
}

// Product multiplies the given factors. The product of no factors is 1.
func Product(factors []int) int {
	product := 1
	for _, factor := range factors {
		product *= factor
	}
	return product
}

// String formats a term as prime^power, or just the prime when the power is 1.
func (t Term) String() string {
	if t.Power == 1 {
		return fmt.Sprint(t.Prime)
	}
	return fmt.Sprintf("%d^%d", t.Prime, t.Power)
}
