package seqview

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"strings"
)

var (
	_ Slicer    = new(ProductView)
	_ Reverser  = new(ProductView)
	_ Iterable  = new(ProductView)
	_ Container = new(ProductView)
	_ Finder    = new(ProductView)
	_ Counter   = new(ProductView)
)

// ProductView presents the Cartesian product of its factor sequences in
// lexicographic order, with the first factor varying slowest, without
// materializing any combination. Elements are []any tuples holding one
// value per factor.
//
// The length of the product is the arithmetic product of the factor
// lengths, which easily exceeds the machine word range, so all linear
// indices into a product are arbitrary-precision. The zero-factor
// product has exactly one element, the empty tuple.
//
// Character data must be passed pre-decomposed, e.g. via NewStringSeq,
// so that membership and search operate per character rather than per
// substring.
//
// Like all views, a ProductView only references its factors. Providing
// factors and then mutating them yields unspecified results.
type ProductView struct {
	factors []Seq
}

// NewProductView returns the Cartesian product of the passed factor
// sequences.
func NewProductView(factors ...Seq) *ProductView {
	return &ProductView{factors: slices.Clone(factors)}
}

// NewRepeatedProductView returns the product of the factor list
// repeated repeat times, i.e. the repeat-th Cartesian power of
// NewProductView(factors...).
func NewRepeatedProductView(repeat int, factors ...Seq) *ProductView {
	repeated := make([]Seq, 0, len(factors)*repeat)
	for range repeat {
		repeated = append(repeated, factors...)
	}
	return &ProductView{factors: repeated}
}

// Factors returns the factor sequences of the product.
func (v *ProductView) Factors() []Seq { return slices.Clone(v.factors) }

// Len returns the product of the factor lengths, 1 for no factors.
func (v *ProductView) Len() *big.Int {
	length := big.NewInt(1)
	for _, factor := range v.factors {
		length.Mul(length, factor.Len())
	}
	return length
}

// multiIndex decomposes a linear index into one index per factor by
// repeated divmod against the factor lengths, starting at the last
// factor, which varies fastest. The leftover quotient is dropped,
// wrapping the linear index modulo Len.
//
// Precondition: no factor is empty (callers bounds-check against Len
// first, which is zero whenever a factor is empty).
func (v *ProductView) multiIndex(index *big.Int) []*big.Int {
	indices := make([]*big.Int, len(v.factors))
	rest := new(big.Int).Set(index)
	for i := len(v.factors) - 1; i >= 0; i-- {
		rest, indices[i] = floorDivMod(rest, v.factors[i].Len())
	}
	return indices
}

// elemAt gathers one element from each factor at its decomposed index
// into a fresh tuple.
func (v *ProductView) elemAt(indices []*big.Int) ([]any, error) {
	tuple := make([]any, len(v.factors))
	for i, factor := range v.factors {
		elem, err := factor.At(indices[i])
		if err != nil {
			return nil, err
		}
		tuple[i] = elem
	}
	return tuple, nil
}

// At returns the combination at index as a []any tuple, with negative
// indices counting from the end of the product. Indices outside
// [-Len, Len) return an error wrapping ErrIndexOutOfRange.
func (v *ProductView) At(index *big.Int) (any, error) {
	length := v.Len()
	if !indexInRange(index, length) {
		return nil, fmt.Errorf("index %s out of bounds [-%s..%s): %w", index, length, length, ErrIndexOutOfRange)
	}
	i := new(big.Int).Set(index)
	if i.Sign() < 0 {
		i.Add(i, length)
	}
	tuple, err := v.elemAt(v.multiIndex(i))
	if err != nil {
		return nil, err
	}
	return tuple, nil
}

// Slice returns a strided view of the product that traverses
// combinations with an incremental odometer instead of decomposing
// every linear index from scratch.
func (v *ProductView) Slice(desc Descriptor) (Seq, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &ProductSlice{RangeView{base: v, desc: desc}}, nil
}

// Reversed returns the product in reverse order as a single backward
// slice layer. Distributing the reversal over the factors would
// allocate one wrapper per factor and pass every access through as
// many index mappings, one slice layer passes it through one.
func (v *ProductView) Reversed() Seq {
	reversed, _ := v.Slice(Descriptor{Step: big.NewInt(-1)})
	return reversed
}

// All returns a restartable iterator over all combinations in
// lexicographic order.
func (v *ProductView) All() iter.Seq[any] {
	full, _ := v.Slice(Descriptor{})
	return All(full)
}

// Backward returns a restartable iterator over all combinations in
// reverse lexicographic order.
func (v *ProductView) Backward() iter.Seq[any] {
	return All(v.Reversed())
}

// Contains reports whether item combines one element from each factor.
// item must be a []any tuple; any other operand shape is an
// invalid-argument error, mirroring what the factor sequences
// themselves would reject. A tuple of the wrong arity is simply not
// contained.
func (v *ProductView) Contains(item any) (bool, error) {
	tuple, ok := item.([]any)
	if !ok {
		return false, fmt.Errorf("product membership requires a []any tuple, got %T", item)
	}
	if len(tuple) != len(v.factors) {
		return false, nil
	}
	for i, factor := range v.factors {
		found, err := Contains(factor, tuple[i])
		if err != nil || !found {
			return false, err
		}
	}
	return true, nil
}

// IndexOf returns the first position of the tuple item in the product
// by combining the per-factor first positions with the same mixed-radix
// composition used for indexing. Shape mismatches report not found,
// never an error. The zero-factor product contains the empty tuple at
// position 0.
func (v *ProductView) IndexOf(item any) (index *big.Int, found bool, err error) {
	tuple, ok := item.([]any)
	if !ok {
		return nil, false, nil
	}
	if len(v.factors) == 0 {
		if len(tuple) == 0 {
			return new(big.Int), true, nil
		}
		return nil, false, nil
	}
	if len(tuple) != len(v.factors) {
		return nil, false, nil
	}
	index = new(big.Int)
	for i, factor := range v.factors {
		pos, found, err := IndexOf(factor, tuple[i])
		if err != nil || !found {
			return nil, false, err
		}
		index.Mul(index, factor.Len()).Add(index, pos)
	}
	return index, true, nil
}

// Count returns the number of ways item can be formed by taking one
// element from each factor, which is the product of the per-factor
// occurrence counts. It short-circuits to zero as soon as any component
// is missing, and shape mismatches count zero.
func (v *ProductView) Count(item any) (*big.Int, error) {
	tuple, ok := item.([]any)
	if !ok || len(tuple) != len(v.factors) {
		return new(big.Int), nil
	}
	ways := big.NewInt(1)
	for i, factor := range v.factors {
		n, err := Count(factor, tuple[i])
		if err != nil {
			return nil, err
		}
		ways.Mul(ways, n)
		if ways.Sign() == 0 {
			return ways, nil
		}
	}
	return ways, nil
}

// String implements the fmt.Stringer interface.
func (v *ProductView) String() string {
	var b strings.Builder
	b.WriteString("ProductView(")
	for i, factor := range v.factors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(seqString(factor))
	}
	b.WriteByte(')')
	return b.String()
}
