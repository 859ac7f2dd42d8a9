package seqview

import (
	"fmt"
	"iter"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	_ Iterable  = ValuesSeq(nil)
	_ Container = ValuesSeq(nil)
	_ Finder    = ValuesSeq(nil)
	_ Counter   = ValuesSeq(nil)
)

// ValuesSeq is a Seq backed by a slice of values of any type.
// It is the most straightforward base sequence for views to wrap.
//
// Views over a ValuesSeq share its backing array, so replacing an
// element is visible through every view of it.
type ValuesSeq []any

// Len returns the number of values.
func (s ValuesSeq) Len() *big.Int { return big.NewInt(int64(len(s))) }

// At returns the value at index,
// negative indices count from the end.
func (s ValuesSeq) At(index *big.Int) (any, error) {
	i, ok := sliceIndex(index, len(s))
	if !ok {
		return nil, fmt.Errorf("index %s out of bounds [-%d..%d): %w", index, len(s), len(s), ErrIndexOutOfRange)
	}
	return s[i], nil
}

func (s ValuesSeq) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s ValuesSeq) Backward() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func (s ValuesSeq) Contains(value any) (bool, error) {
	_, found, err := s.IndexOf(value)
	return found, err
}

func (s ValuesSeq) IndexOf(value any) (index *big.Int, found bool, err error) {
	for i, v := range s {
		if reflect.DeepEqual(v, value) {
			return big.NewInt(int64(i)), true, nil
		}
	}
	return nil, false, nil
}

func (s ValuesSeq) Count(value any) (*big.Int, error) {
	count := int64(0)
	for _, v := range s {
		if reflect.DeepEqual(v, value) {
			count++
		}
	}
	return big.NewInt(count), nil
}

// String implements the fmt.Stringer interface.
func (s ValuesSeq) String() string { return fmt.Sprintf("%v", []any(s)) }

var (
	_ Iterable  = new(StringSeq)
	_ Container = new(StringSeq)
	_ Finder    = new(StringSeq)
	_ Counter   = new(StringSeq)
)

// StringSeq is a string decomposed into a sequence of single-character
// strings.
//
// The decomposition happens once at construction, so that membership,
// search, and indexing always operate per character: a StringSeq never
// behaves like a whole-substring-searching sequence, which matters when
// it serves as the factor of a ProductView.
type StringSeq struct {
	chars []string
}

// NewStringSeq returns the characters of str as a sequence.
func NewStringSeq(str string) *StringSeq {
	chars := make([]string, 0, utf8.RuneCountInString(str))
	for _, r := range str {
		chars = append(chars, string(r))
	}
	return &StringSeq{chars: chars}
}

// Len returns the number of characters.
func (s *StringSeq) Len() *big.Int { return big.NewInt(int64(len(s.chars))) }

// At returns the character at index as a single-character string,
// negative indices count from the end.
func (s *StringSeq) At(index *big.Int) (any, error) {
	i, ok := sliceIndex(index, len(s.chars))
	if !ok {
		return nil, fmt.Errorf("index %s out of bounds [-%d..%d): %w", index, len(s.chars), len(s.chars), ErrIndexOutOfRange)
	}
	return s.chars[i], nil
}

func (s *StringSeq) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, c := range s.chars {
			if !yield(c) {
				return
			}
		}
	}
}

func (s *StringSeq) Backward() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := len(s.chars) - 1; i >= 0; i-- {
			if !yield(s.chars[i]) {
				return
			}
		}
	}
}

func (s *StringSeq) Contains(value any) (bool, error) {
	_, found, err := s.IndexOf(value)
	return found, err
}

func (s *StringSeq) IndexOf(value any) (index *big.Int, found bool, err error) {
	char, ok := value.(string)
	if !ok {
		return nil, false, nil
	}
	for i, c := range s.chars {
		if c == char {
			return big.NewInt(int64(i)), true, nil
		}
	}
	return nil, false, nil
}

func (s *StringSeq) Count(value any) (*big.Int, error) {
	char, ok := value.(string)
	if !ok {
		return new(big.Int), nil
	}
	count := int64(0)
	for _, c := range s.chars {
		if c == char {
			count++
		}
	}
	return big.NewInt(count), nil
}

// String implements the fmt.Stringer interface,
// rendering the quoted joined characters.
func (s *StringSeq) String() string {
	return strconv.Quote(strings.Join(s.chars, ""))
}

// sliceIndex normalizes a possibly negative index against a slice
// length, reporting false for indices outside [-length, length).
func sliceIndex(index *big.Int, length int) (int, bool) {
	if !index.IsInt64() {
		return 0, false
	}
	i := index.Int64()
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, false
	}
	return int(i), true
}
