package seqview

import (
	"math/big"
	"reflect"
)

// Elements are compared with reflect.DeepEqual throughout: view
// elements can be []any tuples, which == would reject.

// Contains reports whether s contains value. Sequences implementing
// Container supply their own membership test, every other sequence is
// scanned elementwise.
func Contains(s Seq, value any) (bool, error) {
	if c, ok := s.(Container); ok {
		return c.Contains(value)
	}
	_, found, err := scanIndex(s, value)
	return found, err
}

// IndexOf returns the position of the first element of s equal to
// value. Absence is reported through found == false, never as an error.
// Sequences implementing Finder supply their own search, every other
// sequence is scanned elementwise.
func IndexOf(s Seq, value any) (index *big.Int, found bool, err error) {
	if f, ok := s.(Finder); ok {
		return f.IndexOf(value)
	}
	return scanIndex(s, value)
}

// Count returns the number of elements of s equal to value. Sequences
// implementing Counter supply their own count, every other sequence is
// scanned elementwise.
func Count(s Seq, value any) (*big.Int, error) {
	if c, ok := s.(Counter); ok {
		return c.Count(value)
	}
	count := new(big.Int)
	length := s.Len()
	for i := new(big.Int); i.Cmp(length) < 0; i.Add(i, bigOne) {
		elem, err := s.At(i)
		if err != nil {
			return nil, err
		}
		if reflect.DeepEqual(elem, value) {
			count.Add(count, bigOne)
		}
	}
	return count, nil
}

// scanIndex finds the first index of value by indexing every element.
func scanIndex(s Seq, value any) (index *big.Int, found bool, err error) {
	length := s.Len()
	for i := new(big.Int); i.Cmp(length) < 0; i.Add(i, bigOne) {
		elem, err := s.At(i)
		if err != nil {
			return nil, false, err
		}
		if reflect.DeepEqual(elem, value) {
			return i, true, nil
		}
	}
	return nil, false, nil
}
