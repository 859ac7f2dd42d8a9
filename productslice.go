package seqview

import (
	"errors"
	"iter"
	"math/big"
	"slices"
)

var (
	_ Slicer   = new(ProductSlice)
	_ Reverser = new(ProductSlice)
	_ Iterable = new(ProductSlice)
)

// ProductSlice is a RangeView over a ProductView that traverses the
// product incrementally, odometer-style: advancing adds the step to the
// last factor's index and propagates carries or borrows leftward,
// refreshing only the element slots that changed. Most steps therefore
// cost O(1) instead of a full mixed-radix decomposition per element.
//
// Indexing, length, and sub-range fusion are inherited unchanged from
// RangeView, sub-slices stay ProductSlices so strided traversal keeps
// its incremental iteration at any composition depth.
type ProductSlice struct {
	RangeView
}

func (v *ProductSlice) product() *ProductView {
	return v.base.(*ProductView)
}

// Slice returns a new strided view of the underlying product with the
// descriptors fused, or Empty for a definitely empty sub-range.
func (v *ProductSlice) Slice(desc Descriptor) (Seq, error) {
	fused, err := v.composeDescriptor(desc)
	if err != nil {
		if errors.Is(err, errEmptySubslice) {
			return Empty, nil
		}
		return nil, err
	}
	return &ProductSlice{RangeView{base: v.base, desc: fused}}, nil
}

// Reversed returns the slice's combinations in reverse order.
func (v *ProductSlice) Reversed() Seq {
	reversed, _ := v.Slice(Descriptor{Step: big.NewInt(-1)})
	return reversed
}

// All returns a restartable iterator over the selected combinations.
//
// The traversal resolves the descriptor once, decomposes the start
// position into a per-factor index vector, and then advances the vector
// in place: the step is added to the last factor's index and while any
// factor's index falls outside [0, factorLen) it is divided into a
// carry applied to the factor to its left. Running off either end of
// the first factor terminates the traversal, as does reaching the
// resolved element count.
//
// An element access error, possible only when a factor is mutated
// concurrently, terminates the traversal early.
func (v *ProductSlice) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		product := v.product()
		factors := product.factors

		// The resolved element count is the authoritative stop
		// condition, satisfying the half-open interval law for
		// any combination of bounds.
		count := v.Len()
		if count.Sign() == 0 {
			return
		}
		if len(factors) == 0 {
			// The zero-factor product holds exactly the
			// empty tuple.
			yield([]any{})
			return
		}

		start, _, step, _ := v.desc.bounds(product.Len())

		indices := product.multiIndex(start)
		item, err := product.elemAt(indices)
		if err != nil || !yield(slices.Clone(item)) {
			return
		}

		for n := big.NewInt(1); n.Cmp(count) < 0; n.Add(n, bigOne) {
			pos := len(factors) - 1
			indices[pos] = new(big.Int).Add(indices[pos], step)
			// Propagate carries leftward, refreshing only
			// the element slots that changed.
			for pos > 0 && !inFactorRange(indices[pos], factors[pos]) {
				var carry *big.Int
				carry, indices[pos] = floorDivMod(indices[pos], factors[pos].Len())
				indices[pos-1] = new(big.Int).Add(indices[pos-1], carry)
				if item[pos], err = factors[pos].At(indices[pos]); err != nil {
					return
				}
				pos--
			}
			if pos == 0 && !inFactorRange(indices[0], factors[0]) {
				// Ran off either end of the product.
				return
			}
			// One more refresh for the last carry target.
			if item[pos], err = factors[pos].At(indices[pos]); err != nil {
				return
			}
			if !yield(slices.Clone(item)) {
				return
			}
		}
	}
}

// Backward returns a restartable iterator over the selected
// combinations in reverse order, by traversing the reversed slice.
func (v *ProductSlice) Backward() iter.Seq[any] {
	return All(v.Reversed())
}

// inFactorRange reports whether index is a valid nonnegative position
// of factor.
func inFactorRange(index *big.Int, factor Seq) bool {
	return index.Sign() >= 0 && index.Cmp(factor.Len()) < 0
}
