package seqview

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	_ Slicer   = new(RangeView)
	_ Reverser = new(RangeView)
)

// RangeView presents a strided sub-range of a base sequence without
// copying it. It holds only the base reference and the symbolic range
// descriptor; length, element positions, and sub-ranges are computed by
// index arithmetic on demand.
//
// Slicing a RangeView never stacks a second view on top of the first:
// the two descriptors are fused into one equivalent descriptor against
// the original base, so element access stays a single index rewrite no
// matter how often a view is re-sliced, and an out-of-range access
// fails identically at any composition depth.
type RangeView struct {
	base Seq
	desc Descriptor
}

// NewRangeView returns a view of the sub-range of base selected by desc.
// It returns ErrZeroStep if desc has a zero step.
func NewRangeView(base Seq, desc Descriptor) (*RangeView, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &RangeView{base: base, desc: desc}, nil
}

// Base returns the sequence the view was constructed over.
func (v *RangeView) Base() Seq { return v.base }

// Descriptor returns the range descriptor of the view.
func (v *RangeView) Descriptor() Descriptor { return v.desc }

// Len returns the number of elements selected by the view's descriptor
// resolved against the current base length.
func (v *RangeView) Len() *big.Int {
	// Step was validated at construction, bounds can't fail.
	start, stop, step, _ := v.desc.bounds(v.base.Len())
	return rangeLength(start, stop, step)
}

// At returns the element at index, with negative indices counting from
// the end of the view. The index is rewritten into a single base index,
// indices outside [-Len, Len) return an error wrapping ErrIndexOutOfRange.
func (v *RangeView) At(index *big.Int) (any, error) {
	length := v.Len()
	if !indexInRange(index, length) {
		return nil, fmt.Errorf("index %s out of bounds [-%s..%s): %w", index, length, length, ErrIndexOutOfRange)
	}
	return v.base.At(v.composeIndex(index))
}

// composeIndex rewrites an in-bounds view index into an index of the
// base sequence. The sign of the result follows whichever of the
// descriptor's bounds was itself expressed relative to the end of the
// base, so that re-querying a mutated base still tracks the same
// relative position.
//
// Precondition: -v.Len() <= index < v.Len(). Out-of-bounds indices
// produce base indices that may be legal in the base but outside the
// view, which is why At checks bounds first.
func (v *RangeView) composeIndex(index *big.Int) *big.Int {
	baseLen := v.base.Len()
	start, stop, step, _ := v.desc.bounds(baseLen)

	j := new(big.Int)
	if index.Sign() >= 0 {
		// Nonnegative indices are offsets from the start position.
		j.Mul(index, step).Add(j, start)
		// Report a negative base index when the start was given
		// relative to the end, either explicitly or as the
		// implicit start of a backward walk.
		if (v.desc.Start != nil && v.desc.Start.Sign() < 0) ||
			(v.desc.Start == nil && step.Sign() < 0) {
			j.Sub(j, baseLen)
		}
		return j
	}
	// Negative indices are offsets from the "one past the last"
	// anchor: the value closest to stop, in step direction, that is
	// congruent to start modulo step.
	anchor := new(big.Int).Sub(start, stop)
	anchor = floorMod(anchor, step)
	anchor.Add(anchor, stop)
	j.Mul(index, step).Add(j, anchor)
	// Report a negative base index when the stop was given relative
	// to the end, either explicitly or as the implicit stop of a
	// forward walk.
	if (v.desc.Stop != nil && v.desc.Stop.Sign() < 0) ||
		(v.desc.Stop == nil && step.Sign() > 0) {
		j.Sub(j, baseLen)
	}
	return j
}

// composeDescriptor fuses inner applied to v into a single descriptor
// against v's base, such that slicing the base with the result is
// elementwise equal to slicing v with inner.
//
// Various combinations of negative bounds and step signs produce
// unintuitive corner cases here, every branch matters.
//
// It returns errEmptySubslice when inner starts or stops beyond the
// reachable end of v in its traversal direction: such ranges stay empty
// no matter how the base changes, and forcing start == stop cannot
// express that when stop is a natural-boundary sentinel.
func (v *RangeView) composeDescriptor(inner Descriptor) (Descriptor, error) {
	if err := inner.Validate(); err != nil {
		return Descriptor{}, err
	}

	// Default to the parameters of v, then let inner modify them.
	start, stop, step := v.desc.Start, v.desc.Stop, v.desc.Step

	// One step through v is step steps through the base, and inner
	// takes inner.Step of those at a time. Both may be nil, meaning 1.
	if inner.Step != nil {
		if step != nil {
			step = new(big.Int).Mul(step, inner.Step)
		} else {
			step = inner.Step
		}
	}
	// Start and stop composition reasons about the direction of
	// traversal through v alone, not the composed step.
	backward := inner.Step != nil && inner.Step.Sign() < 0

	var length *big.Int
	if inner.Start != nil || inner.Stop != nil {
		length = v.Len()
	}

	// Compose the start.
	clipStartToOldStop := false
	switch {
	case inner.Start != nil:
		switch {
		case indexInRange(inner.Start, length):
			start = v.composeIndex(inner.Start)
		case (!backward && inner.Start.Cmp(length) >= 0) ||
			(backward && negOutOfRange(inner.Start, length)):
			// Starts past the reachable end in the traversal
			// direction: definitely empty.
			return Descriptor{}, errEmptySubslice
		case backward:
			// Starts past the back walking backward:
			// clip to the end of v.
			clipStartToOldStop = true
		}
		// Otherwise inner starts too early walking forward:
		// v's own start already clips it.
	case backward:
		// No explicit start walking backward means starting
		// from the end of v.
		clipStartToOldStop = true
	}
	if clipStartToOldStop {
		start = v.composeIndex(bigMinusOne)
	}

	// Compose the stop.
	clipStopToOldStart := false
	switch {
	case inner.Stop != nil:
		switch {
		case indexInRange(inner.Stop, length):
			stop = v.composeIndex(inner.Stop)
		case (!backward && negOutOfRange(inner.Stop, length)) ||
			(backward && inner.Stop.Cmp(length) >= 0):
			// Stops before any element is reached:
			// definitely empty.
			return Descriptor{}, errEmptySubslice
		case backward:
			clipStopToOldStart = true
		}
		// Otherwise inner stops too late walking forward:
		// v's own stop already clips it.
	case backward:
		// Walking backward with no explicit stop runs through
		// the base until it leaves v past v's start.
		clipStopToOldStart = true
	}
	if clipStopToOldStart {
		if v.desc.Start == nil || v.desc.Start.Sign() == 0 {
			// Only the natural-boundary sentinel expresses
			// running backward off the front of the base:
			// a concrete -1 would mean the back, and a
			// concrete -baseLen-1 would not survive base
			// mutation.
			stop = nil
		} else {
			// v's old start must still be included, so stop
			// one base position past it in the composed
			// step direction. backward implies a non-nil step.
			stop = new(big.Int).Set(v.desc.Start)
			if step.Sign() > 0 {
				stop.Add(stop, bigOne)
			} else {
				stop.Sub(stop, bigOne)
			}
		}
	}

	return Descriptor{Start: start, Stop: stop, Step: step}, nil
}

// Slice returns a new view of the sub-range of v selected by desc.
// The result is a RangeView over v's own base with a fused descriptor,
// or Empty for a definitely empty sub-range.
func (v *RangeView) Slice(desc Descriptor) (Seq, error) {
	fused, err := v.composeDescriptor(desc)
	if err != nil {
		if errors.Is(err, errEmptySubslice) {
			return Empty, nil
		}
		return nil, err
	}
	return &RangeView{base: v.base, desc: fused}, nil
}

// Reversed returns the view's elements in reverse order by slicing with
// a full backward descriptor, reusing the fusion path instead of a
// separate reversal implementation.
func (v *RangeView) Reversed() Seq {
	// A ::-1 descriptor has no bounds and a non-zero step,
	// composition cannot fail.
	reversed, _ := v.Slice(Descriptor{Step: big.NewInt(-1)})
	return reversed
}

// String implements the fmt.Stringer interface, rendering the base
// followed by the effective range parameters, e.g. "abc"[1::2].
func (v *RangeView) String() string {
	return fmt.Sprintf("%s[%s]", seqString(v.base), v.desc)
}

// Slice returns a view of the sub-range of s selected by desc.
// Sequences implementing Slicer supply their own sub-range
// construction, every other sequence is wrapped in a RangeView.
func Slice(s Seq, desc Descriptor) (Seq, error) {
	if slicer, ok := s.(Slicer); ok {
		return slicer.Slice(desc)
	}
	return NewRangeView(s, desc)
}
