package sieve

import (
	"fmt"
	"math/bits"
)

// first is the smallest prime candidate.
const first = 2

// CandidateSet holds the consecutive integers 2..limit while they are being
// sieved. Each candidate owns one bit, packed 64 to a word; a set bit marks
// the candidate as eliminated. Candidates are never removed from the set.
type CandidateSet struct {
	words []uint64
	limit int
	size  int
}

// NewCandidateSet creates a CandidateSet in which every integer from 2 up to
// and including limit is live. A limit below 2 yields an empty set.
func NewCandidateSet(limit int) *CandidateSet {
	size := 0
	if limit >= first {
		size = limit - first + 1
	}
	return &CandidateSet{
		words: make([]uint64, (size+63)/64),
		limit: limit,
		size:  size,
	}
}

// Len returns the number of candidates in the set, live or eliminated.
func (cs *CandidateSet) Len() int {
	return cs.size
}

// Limit returns the largest candidate value.
func (cs *CandidateSet) Limit() int {
	return cs.limit
}

// Eliminate marks the candidate v as composite.
func (cs *CandidateSet) Eliminate(v int) error {
	if !cs.contains(v) {
		return fmt.Errorf("candidate %d outside [%d, %d]", v, first, cs.limit)
	}
	cs.eliminate(v)
	return nil
}

// Live reports whether the candidate v has not been eliminated.
func (cs *CandidateSet) Live(v int) (bool, error) {
	if !cs.contains(v) {
		return false, fmt.Errorf("candidate %d outside [%d, %d]", v, first, cs.limit)
	}
	return cs.live(v), nil
}

// LiveCount returns the number of candidates still live.
func (cs *CandidateSet) LiveCount() int {
	eliminated := 0
	for _, word := range cs.words {
		eliminated += bits.OnesCount64(word)
	}
	return cs.size - eliminated
}

// Survivors returns the live candidates in ascending order.
func (cs *CandidateSet) Survivors() []int {
	survivors := make([]int, 0, cs.LiveCount())
	for v := first; v <= cs.limit; v++ {
		if cs.live(v) {
			survivors = append(survivors, v)
		}
	}
	return survivors
}

func (cs *CandidateSet) contains(v int) bool {
	return v >= first && v <= cs.limit
}

// live and eliminate skip the range check; callers iterate within [2, limit].
func (cs *CandidateSet) live(v int) bool {
	index, offset := (v-first)/64, (v-first)%64
	return cs.words[index]&(1<<offset) == 0
}

func (cs *CandidateSet) eliminate(v int) {
	index, offset := (v-first)/64, (v-first)%64
	cs.words[index] |= 1 << offset
}
