package mathutil

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyTable is returned when a weighted table has no entries.
	ErrEmptyTable = errors.New("empty weighted table")
	// ErrNegativeWeight is returned when an entry carries a weight below zero.
	ErrNegativeWeight = errors.New("negative weight")
	// ErrZeroTotal is returned when every entry of a table has weight zero.
	ErrZeroTotal = errors.New("total weight is zero")
	// ErrWeightOverflow is returned when the weights of a table sum past math.MaxInt.
	ErrWeightOverflow = errors.New("total weight overflows int")
)

// Weighted pairs an item with its relative selection weight.
// Weights are frequencies, not probabilities, and need not sum to anything.
type Weighted[T any] struct {
	Item   T
	Weight int
}

// Source is the part of *rand.Rand used for sampling.
type Source interface {
	Intn(n int) int
}

// Sampler draws items from a weighted table with replacement.
// Cumulative weights are precomputed so each draw is a binary search.
type Sampler[T any] struct {
	items []T
	cum   []int
}

// NewSampler builds a sampler for table. The table is copied.
func NewSampler[T any](table []Weighted[T]) (*Sampler[T], error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	s := &Sampler[T]{
		items: make([]T, len(table)),
		cum:   make([]int, len(table)),
	}
	total := 0
	for i, e := range table {
		if e.Weight < 0 {
			return nil, fmt.Errorf("entry %d: %w (%d)", i, ErrNegativeWeight, e.Weight)
		}
		if e.Weight > math.MaxInt-total {
			return nil, fmt.Errorf("entry %d: %w", i, ErrWeightOverflow)
		}
		total += e.Weight
		s.items[i] = e.Item
		s.cum[i] = total
	}
	if total == 0 {
		return nil, ErrZeroTotal
	}
	return s, nil
}

// Sample returns one item with probability proportional to its weight.
// Zero-weight items are never returned.
func (s *Sampler[T]) Sample(rng Source) T {
	r := rng.Intn(s.Total())
	// smallest i with cum[i] > r
	i := sort.SearchInts(s.cum, r+1)
	return s.items[i]
}

// Total returns the sum of all weights.
func (s *Sampler[T]) Total() int {
	return s.cum[len(s.cum)-1]
}

// Len returns the number of entries, including zero-weight ones.
func (s *Sampler[T]) Len() int {
	return len(s.items)
}

// TotalWeight sums the weights of table without validating them.
func TotalWeight[T any](table []Weighted[T]) int {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	return total
}
