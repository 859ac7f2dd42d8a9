// Package seqview provides composable lazy view types over ordered,
// randomly-indexable sequences.
//
// Instead of materializing derived collections (a reversed copy, a sub-range
// copy, a Cartesian product as a list of combinations), each view computes
// element access, length, and iteration on demand by index arithmetic against
// one or more base sequences, which it does not own or copy.
//
// Views hold their base by reference and re-resolve all bounds against the
// current base length on every call, so a view's observable behavior tracks
// live mutation of its base. Mutating a base concurrently with view access
// yields unspecified (but memory-safe) results; the package itself is not
// thread-safe.
package seqview

import (
	"fmt"
	"iter"
	"math/big"
)

// Seq is the read-only interface of a finite, ordered collection
// addressable by integer index.
type Seq interface {
	// Len returns the number of elements.
	// The result can exceed the machine word range and is never negative.
	Len() *big.Int

	// At returns the element at index.
	// Negative indices count from the end of the sequence.
	// Indices outside [-Len, Len) return an error
	// wrapping ErrIndexOutOfRange.
	At(index *big.Int) (any, error)
}

// Reverser is implemented by sequences that can produce a reversed
// version of themselves more cheaply than the generic ReversedView
// wrapper. See Reverse.
type Reverser interface {
	Seq

	// Reversed returns a sequence with the same elements in reverse order.
	Reversed() Seq
}

// Slicer is implemented by sequences with their own sub-range
// construction that is better than wrapping them in a RangeView,
// like the descriptor fusion of RangeView itself. See Slice.
type Slicer interface {
	Seq

	// Slice returns a view of the sub-range selected by desc.
	Slice(desc Descriptor) (Seq, error)
}

// Iterable is implemented by sequences with their own forward and
// backward traversal. See All and Backward.
type Iterable interface {
	Seq

	// All returns a restartable iterator over the elements in order.
	All() iter.Seq[any]

	// Backward returns a restartable iterator over the elements
	// in reverse order.
	Backward() iter.Seq[any]
}

// Container is implemented by sequences with a membership test
// faster than a linear element scan. See Contains.
type Container interface {
	Seq

	Contains(value any) (bool, error)
}

// Finder is implemented by sequences with a first-position search
// faster than a linear element scan. See IndexOf.
type Finder interface {
	Seq

	IndexOf(value any) (index *big.Int, found bool, err error)
}

// Counter is implemented by sequences with an occurrence count
// faster than a linear element scan. See Count.
type Counter interface {
	Seq

	Count(value any) (*big.Int, error)
}

// Empty is the sequence with no elements.
//
// Sub-range composition returns Empty for ranges that are definitely
// empty no matter how the base sequence changes, because such ranges
// cannot be expressed by clipping a descriptor.
var Empty Seq = emptySeq{}

type emptySeq struct{}

func (emptySeq) Len() *big.Int { return new(big.Int) }

func (emptySeq) At(index *big.Int) (any, error) {
	return nil, fmt.Errorf("index %s out of bounds of empty sequence: %w", index, ErrIndexOutOfRange)
}

func (emptySeq) String() string { return "Empty" }

// indexInRange reports whether index is within [-length, length).
func indexInRange(index, length *big.Int) bool {
	if index.Sign() < 0 {
		return new(big.Int).Neg(index).Cmp(length) <= 0
	}
	return index.Cmp(length) < 0
}

// seqString renders a sequence for debug representations of views.
func seqString(s Seq) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", s)
}
