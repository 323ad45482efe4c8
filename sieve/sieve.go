/*
Package sieve builds the list of small primes used as trial divisors by a
bounded factorizer.

For an upper bound b, the list holds every prime not exceeding the integer
ceiling of sqrt(b). Two strategies produce the list:

  - Direct: every live candidate eliminates each later live candidate it
    divides evenly. This is a quadratic pass over the candidates.
  - Stride: every live candidate i marks i*i, i*i+i, ... as composite, the
    classic Sieve of Eratosthenes.

Both strategies yield identical lists for every bound. Direct is the default.
*/
package sieve

import (
	"errors"
	"fmt"
	"math"
)

// Strategy selects how composite candidates are eliminated.
type Strategy int

const (
	// Direct scans all later candidates for each live candidate.
	Direct Strategy = iota
	// Stride steps through the multiples of each live candidate.
	Stride
)

// ErrUnknownStrategy is returned for an unrecognised strategy.
var ErrUnknownStrategy = errors.New("unknown sieve strategy")

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Stride:
		return "stride"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "direct":
		return Direct, nil
	case "stride":
		return Stride, nil
	default:
		return Direct, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Limit returns the integer ceiling of the square root of bound, or 0 when
// bound is not positive.
func Limit(bound int) int {
	if bound <= 0 {
		return 0
	}

	// squares are taken in uint64 so they cannot overflow near math.MaxInt
	b := uint64(bound)
	root := uint64(math.Sqrt(float64(bound)))
	for root*root < b {
		root++
	}
	for root > 1 && (root-1)*(root-1) >= b {
		root--
	}
	return int(root)
}

// Build returns the primes not exceeding Limit(bound) in ascending order,
// using the Direct strategy. The result is never nil.
func Build(bound int) []int {
	primes, _ := BuildWith(bound, Direct)
	return primes
}

// BuildWith is Build with an explicit strategy.
func BuildWith(bound int, strategy Strategy) ([]int, error) {
	candidates := NewCandidateSet(Limit(bound))

	switch strategy {
	case Direct:
		eliminateDirect(candidates)
	case Stride:
		eliminateStride(candidates)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	return candidates.Survivors(), nil
}

func eliminateDirect(candidates *CandidateSet) {
	limit := candidates.Limit()
	for i := first; i <= limit; i++ {
		if !candidates.live(i) {
			continue
		}
		for j := i + 1; j <= limit; j++ {
			if candidates.live(j) && j%i == 0 {
				candidates.eliminate(j)
			}
		}
	}
}

func eliminateStride(candidates *CandidateSet) {
	limit := candidates.Limit()
	for i := first; i*i <= limit; i++ {
		if !candidates.live(i) {
			continue
		}
		for j := i * i; j <= limit; j += i {
			candidates.eliminate(j)
		}
	}
}
