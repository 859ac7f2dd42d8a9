package seqview

import (
	"fmt"
	"iter"
	"math/big"
)

// Reverse returns a sequence with the same elements as s in reverse
// order.
//
// Sequences implementing Reverser produce their own, cheaper reversed
// representation: a RangeView fuses a backward descriptor, a
// ProductView returns a backward slice of itself, a ReversedView
// unwraps to its base. Every other sequence is wrapped in a generic
// ReversedView. No sequence is ever doubly wrapped, and
// Reverse(Reverse(s)) is s itself.
func Reverse(s Seq) Seq {
	if r, ok := s.(Reverser); ok {
		return r.Reversed()
	}
	return &ReversedView{base: s}
}

var (
	_ Slicer    = new(ReversedView)
	_ Reverser  = new(ReversedView)
	_ Iterable  = new(ReversedView)
	_ Container = new(ReversedView)
	_ Counter   = new(ReversedView)
)

// ReversedView presents the elements of a base sequence in reverse
// order by inverting indices, without copying. Construct it through
// Reverse, which lets sequences supply their own reversal instead.
type ReversedView struct {
	base Seq
}

// Base returns the sequence the view reverses.
func (v *ReversedView) Base() Seq { return v.base }

// Len returns the length of the base sequence,
// which is invariant under reversal.
func (v *ReversedView) Len() *big.Int { return v.base.Len() }

// At returns the element at index, counted from the back of the base.
// The mapping index -> -1-index sends [0, Len) onto [-Len, -1] and
// every out-of-range index to an out-of-range one, so bounds checking
// is left to the base.
func (v *ReversedView) At(index *big.Int) (any, error) {
	return v.base.At(reverseIndex(index))
}

// reverseIndex maps a position counted from one end of a sequence to
// the same position counted from the other end.
func reverseIndex(index *big.Int) *big.Int {
	r := new(big.Int).Neg(index)
	return r.Sub(r, bigOne)
}

// Slice returns a view of the sub-range of v selected by desc, by
// mapping desc through the reversal and slicing the base directly:
// stepping through the reversed view is stepping the opposite way
// through the base, and each bound reverses like an index. A nil bound
// stays nil, the negated step direction resolves it to the correct
// natural boundary.
func (v *ReversedView) Slice(desc Descriptor) (Seq, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	reversed := Descriptor{Step: big.NewInt(-1)}
	if desc.Step != nil {
		reversed.Step = new(big.Int).Neg(desc.Step)
	}
	if desc.Start != nil {
		reversed.Start = reverseIndex(desc.Start)
	}
	if desc.Stop != nil {
		reversed.Stop = reverseIndex(desc.Stop)
	}
	return Slice(v.base, reversed)
}

// Reversed undoes the reversal by returning the base sequence itself,
// never by allocating another wrapper.
func (v *ReversedView) Reversed() Seq { return v.base }

// Contains reports whether the base contains value,
// membership is invariant under reversal.
func (v *ReversedView) Contains(value any) (bool, error) {
	return Contains(v.base, value)
}

// Count returns the number of occurrences of value in the base,
// counts are invariant under reversal.
func (v *ReversedView) Count(value any) (*big.Int, error) {
	return Count(v.base, value)
}

// All returns a restartable iterator over the elements in reverse base
// order, delegating to the base's backward traversal.
func (v *ReversedView) All() iter.Seq[any] { return Backward(v.base) }

// Backward returns a restartable iterator over the elements in base
// order, delegating to the base's forward traversal.
func (v *ReversedView) Backward() iter.Seq[any] { return All(v.base) }

// String implements the fmt.Stringer interface.
func (v *ReversedView) String() string {
	return fmt.Sprintf("Reversed(%s)", seqString(v.base))
}
