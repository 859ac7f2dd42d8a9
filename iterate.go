package seqview

import (
	"fmt"
	"iter"
	"math/big"
)

// All returns a restartable iterator over the elements of s in order.
// Sequences implementing Iterable supply their own traversal, every
// other sequence is walked by indexing 0..Len.
//
// Each call starts a fresh traversal. An element access error, possible
// only when an underlying base is mutated concurrently, terminates the
// traversal early.
func All(s Seq) iter.Seq[any] {
	if it, ok := s.(Iterable); ok {
		return it.All()
	}
	return func(yield func(any) bool) {
		length := s.Len()
		for i := new(big.Int); i.Cmp(length) < 0; i.Add(i, bigOne) {
			elem, err := s.At(i)
			if err != nil || !yield(elem) {
				return
			}
		}
	}
}

// Backward returns a restartable iterator over the elements of s in
// reverse order. Sequences implementing Iterable supply their own
// traversal, every other sequence is walked by indexing Len-1..0.
func Backward(s Seq) iter.Seq[any] {
	if it, ok := s.(Iterable); ok {
		return it.Backward()
	}
	return func(yield func(any) bool) {
		for i := new(big.Int).Sub(s.Len(), bigOne); i.Sign() >= 0; i.Sub(i, bigOne) {
			elem, err := s.At(i)
			if err != nil || !yield(elem) {
				return
			}
		}
	}
}

// Collect reads all elements of s into a slice.
func Collect(s Seq) ([]any, error) {
	length := s.Len()
	if !length.IsInt64() {
		return nil, fmt.Errorf("sequence length %s too large to collect", length)
	}
	elems := make([]any, 0, length.Int64())
	for elem := range All(s) {
		elems = append(elems, elem)
	}
	if int64(len(elems)) != length.Int64() {
		return nil, fmt.Errorf("sequence changed during collection: got %d of %d elements", len(elems), length.Int64())
	}
	return elems, nil
}
