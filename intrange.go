package seqview

import (
	"fmt"
	"iter"
	"math/big"
)

var (
	_ Reverser  = new(IntRange)
	_ Iterable  = new(IntRange)
	_ Container = new(IntRange)
	_ Finder    = new(IntRange)
	_ Counter   = new(IntRange)
)

// IntRange is the lazy arithmetic progression of int64 values from
// start up to but excluding stop, in increments of step. It stores only
// its three bounds, so length, indexing, membership, search, and
// reversal are all O(1) arithmetic.
//
// Large IntRange factors make ProductView lengths exceed the machine
// word range cheaply, which is why all linear product indices are
// arbitrary-precision.
type IntRange struct {
	start, stop, step int64
}

// NewIntRange returns the progression start, start+step, ... up to but
// excluding stop. It returns ErrZeroStep if step is zero.
func NewIntRange(start, stop, step int64) (*IntRange, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	return &IntRange{start: start, stop: stop, step: step}, nil
}

// UpTo returns the progression 0, 1, ..., n-1.
func UpTo(n int64) *IntRange {
	return &IntRange{start: 0, stop: n, step: 1}
}

func (s *IntRange) length() int64 {
	if (s.step > 0 && s.start < s.stop) || (s.step < 0 && s.start > s.stop) {
		diff := s.stop - s.start
		if diff < 0 {
			diff = -diff
		}
		step := s.step
		if step < 0 {
			step = -step
		}
		return (diff-1)/step + 1
	}
	return 0
}

// Len returns the number of values in the progression.
func (s *IntRange) Len() *big.Int { return big.NewInt(s.length()) }

// At returns the int64 value at index,
// negative indices count from the end.
func (s *IntRange) At(index *big.Int) (any, error) {
	length := s.length()
	i, ok := int64(0), false
	if index.IsInt64() {
		i = index.Int64()
		if i < 0 {
			i += length
		}
		ok = i >= 0 && i < length
	}
	if !ok {
		return nil, fmt.Errorf("index %s out of bounds [-%d..%d): %w", index, length, length, ErrIndexOutOfRange)
	}
	return s.start + i*s.step, nil
}

// Reversed returns the same progression walked from the other end:
// an IntRange again, not a view wrapper.
func (s *IntRange) Reversed() Seq {
	n := s.length()
	if n == 0 {
		return &IntRange{start: s.start, stop: s.start, step: -s.step}
	}
	last := s.start + (n-1)*s.step
	return &IntRange{start: last, stop: s.start - s.step, step: -s.step}
}

func (s *IntRange) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i, n := int64(0), s.length(); i < n; i++ {
			if !yield(s.start + i*s.step) {
				return
			}
		}
	}
}

func (s *IntRange) Backward() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := s.length() - 1; i >= 0; i-- {
			if !yield(s.start + i*s.step) {
				return
			}
		}
	}
}

// Contains reports whether value is an int64 hit by the progression.
func (s *IntRange) Contains(value any) (bool, error) {
	_, found := s.indexOf(value)
	return found, nil
}

func (s *IntRange) IndexOf(value any) (index *big.Int, found bool, err error) {
	i, found := s.indexOf(value)
	if !found {
		return nil, false, nil
	}
	return big.NewInt(i), true, nil
}

func (s *IntRange) Count(value any) (*big.Int, error) {
	if _, found := s.indexOf(value); found {
		return big.NewInt(1), nil
	}
	return new(big.Int), nil
}

func (s *IntRange) indexOf(value any) (index int64, found bool) {
	v, ok := value.(int64)
	if !ok {
		return 0, false
	}
	offset := v - s.start
	if offset%s.step != 0 {
		return 0, false
	}
	index = offset / s.step
	if index < 0 || index >= s.length() {
		return 0, false
	}
	return index, true
}

// String implements the fmt.Stringer interface.
func (s *IntRange) String() string {
	return fmt.Sprintf("IntRange(%d, %d, %d)", s.start, s.stop, s.step)
}
