package seqview

import (
	"fmt"
	"math/big"
)

var (
	bigZero     = big.NewInt(0)
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
)

// Descriptor selects a strided sub-range of a sequence with the classic
// start:stop:step semantics:
//
//   - A nil field means the natural boundary in the traversal direction
//     implied by the sign of Step: the front of the sequence for a
//     positive step, the back for a negative one, and symmetrically
//     for Stop.
//   - Negative Start or Stop values count from the end of the sequence.
//   - Step defaults to 1 and must not be zero.
//
// The zero value selects the whole sequence.
//
// Descriptors are symbolic: views re-resolve them against the current
// length of their base sequence on every operation instead of baking
// them into absolute offsets at construction time, so a view keeps
// tracking positions like "3 from the end" when its base grows or
// shrinks.
type Descriptor struct {
	Start *big.Int
	Stop  *big.Int
	Step  *big.Int
}

// NewDescriptor returns a Descriptor with concrete start, stop, and step.
// Use a Descriptor literal to leave fields at their natural boundaries.
func NewDescriptor(start, stop, step int64) Descriptor {
	return Descriptor{
		Start: big.NewInt(start),
		Stop:  big.NewInt(stop),
		Step:  big.NewInt(step),
	}
}

// Validate returns ErrZeroStep if the descriptor's step is zero.
func (d Descriptor) Validate() error {
	if d.Step != nil && d.Step.Sign() == 0 {
		return ErrZeroStep
	}
	return nil
}

// step returns the effective step, defaulting to 1.
func (d Descriptor) step() *big.Int {
	if d.Step == nil {
		return bigOne
	}
	return d.Step
}

// String implements the fmt.Stringer interface,
// rendering the descriptor as "start:stop:step" with
// empty positions for natural boundaries.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%s:%s", formatBound(d.Start), formatBound(d.Stop), formatBound(d.Step))
}

func formatBound(b *big.Int) string {
	if b == nil {
		return ""
	}
	return b.String()
}

// bounds resolves the descriptor against a base sequence length into
// concrete start, stop, and step values, following the conventional
// range-slicing rules (CPython slice.indices): nil fields become the
// natural edge for the step direction, negative values have length
// added, and values still out of range are clipped to the nearest
// in-direction bound.
//
// For a positive step the results lie in [0, length], for a negative
// step in [-1, length-1], with -1 meaning one before the front.
//
// Every length or boundary computation in this package derives from
// this routine; duplicating the arithmetic elsewhere is the dominant
// source of off-by-one bugs.
func (d Descriptor) bounds(length *big.Int) (start, stop, step *big.Int, err error) {
	if err = d.Validate(); err != nil {
		return nil, nil, nil, err
	}
	step = d.step()
	backward := step.Sign() < 0

	var lower, upper *big.Int
	if backward {
		lower = bigMinusOne
		upper = new(big.Int).Sub(length, bigOne)
	} else {
		lower = bigZero
		upper = length
	}
	start = resolveBound(d.Start, length, lower, upper, backward, true)
	stop = resolveBound(d.Stop, length, lower, upper, backward, false)
	return start, stop, step, nil
}

func resolveBound(b, length, lower, upper *big.Int, backward, isStart bool) *big.Int {
	if b == nil {
		// The natural edge: a backward start and a forward stop
		// sit at the upper bound, the other two at the lower.
		if backward == isStart {
			return upper
		}
		return lower
	}
	r := new(big.Int).Set(b)
	if r.Sign() < 0 {
		r.Add(r, length)
		if r.Cmp(lower) < 0 {
			r.Set(lower)
		}
	} else if r.Cmp(upper) > 0 {
		r.Set(upper)
	}
	return r
}

// rangeLength returns the count of integers in the half-open interval
// [start, stop) stepped by step: zero if the interval is empty or runs
// backward relative to the step sign, (|stop-start|-1)/|step| + 1
// otherwise.
func rangeLength(start, stop, step *big.Int) *big.Int {
	if (step.Sign() > 0 && start.Cmp(stop) < 0) ||
		(step.Sign() < 0 && start.Cmp(stop) > 0) {
		n := new(big.Int).Sub(stop, start)
		n.Abs(n).Sub(n, bigOne)
		n.Div(n, new(big.Int).Abs(step))
		return n.Add(n, bigOne)
	}
	return new(big.Int)
}

// floorDivMod returns the floored quotient and remainder of a and b,
// with the remainder taking the sign of b. big.Int offers truncated
// (QuoRem) and Euclidean (DivMod) division, neither of which matches
// the modular index arithmetic used here.
func floorDivMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, bigOne)
		r.Add(r, b)
	}
	return q, r
}

// floorMod returns the floored remainder of a and b, see floorDivMod.
func floorMod(a, b *big.Int) *big.Int {
	_, r := floorDivMod(a, b)
	return r
}

// negOutOfRange reports whether b is below -length.
func negOutOfRange(b, length *big.Int) bool {
	return b.Cmp(new(big.Int).Neg(length)) < 0
}
