package seqview

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bitTriples() []any {
	want := make([]any, 0, 8)
	for i := int64(0); i < 8; i++ {
		want = append(want, []any{i >> 2 & 1, i >> 1 & 1, i & 1})
	}
	return want
}

func TestProductViewLen(t *testing.T) {
	tests := []struct {
		name    string
		product *ProductView
		want    int64
	}{
		{name: "no factors", product: NewProductView(), want: 1},
		{name: "single element factors", product: NewProductView(ValuesSeq{1}, ValuesSeq{2}, ValuesSeq{3}, ValuesSeq{4}), want: 1},
		{name: "chars times bits", product: NewProductView(NewStringSeq("ABC"), ValuesSeq{0, 1}), want: 6},
		{name: "bits cubed", product: NewRepeatedProductView(3, UpTo(2)), want: 8},
		{name: "chars cubed", product: NewRepeatedProductView(3, NewStringSeq("ABC")), want: 27},
		{name: "empty factor", product: NewProductView(UpTo(0), UpTo(3)), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Zero(t, tt.product.Len().Cmp(big.NewInt(tt.want)))
		})
	}
}

func TestProductViewLenHuge(t *testing.T) {
	huge := NewRepeatedProductView(10, UpTo(1000000))
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(60), nil)
	require.Zero(t, huge.Len().Cmp(want), "Len() = %s, want 10^60", huge.Len())
}

func TestProductViewAt(t *testing.T) {
	t.Run("empty product holds the empty tuple", func(t *testing.T) {
		empty := NewProductView()
		elem, err := empty.At(big.NewInt(0))
		require.NoError(t, err)
		require.Equal(t, []any{}, elem)
	})

	t.Run("single combination", func(t *testing.T) {
		singles := NewProductView(ValuesSeq{1}, ValuesSeq{2}, ValuesSeq{3}, ValuesSeq{4})
		elem, err := singles.At(big.NewInt(0))
		require.NoError(t, err)
		require.Equal(t, []any{1, 2, 3, 4}, elem)
	})

	t.Run("mixed factors", func(t *testing.T) {
		chars := NewProductView(NewStringSeq("ABC"), ValuesSeq{0, 1})
		elem, err := chars.At(big.NewInt(2))
		require.NoError(t, err)
		require.Equal(t, []any{"B", 0}, elem)
	})

	t.Run("binary counter ordering", func(t *testing.T) {
		bits := NewRepeatedProductView(3, UpTo(2))
		elem, err := bits.At(big.NewInt(5))
		require.NoError(t, err)
		require.Equal(t, []any{int64(1), int64(0), int64(1)}, elem)

		// Negative indices count from the end.
		elem, err = bits.At(big.NewInt(-3))
		require.NoError(t, err)
		require.Equal(t, []any{int64(1), int64(0), int64(1)}, elem)
	})

	t.Run("last combination", func(t *testing.T) {
		chars := NewRepeatedProductView(3, NewStringSeq("ABC"))
		elem, err := chars.At(big.NewInt(26))
		require.NoError(t, err)
		require.Equal(t, []any{"C", "C", "C"}, elem)
	})

	t.Run("huge index decomposes exactly", func(t *testing.T) {
		huge := NewRepeatedProductView(10, UpTo(1000000))
		index, ok := new(big.Int).SetString("785979398597554673765267388740066098873495547967682668161773", 10)
		require.True(t, ok)
		elem, err := huge.At(index)
		require.NoError(t, err)
		require.Equal(t, []any{
			int64(785979), int64(398597), int64(554673), int64(765267), int64(388740),
			int64(66098), int64(873495), int64(547967), int64(682668), int64(161773),
		}, elem)
	})
}

func TestProductViewAtOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		product *ProductView
		index   int64
	}{
		{name: "past the empty product", product: NewProductView(), index: 1},
		{name: "before single combination", product: NewProductView(ValuesSeq{1}, ValuesSeq{2}), index: -2},
		{name: "past the back", product: NewProductView(NewStringSeq("ABC"), ValuesSeq{0, 1}), index: 6},
		{name: "empty factor", product: NewProductView(UpTo(0), UpTo(3)), index: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.product.At(big.NewInt(tt.index))
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func TestProductViewIteration(t *testing.T) {
	bits := NewRepeatedProductView(3, UpTo(2))
	checkSeqLaws(t, bits, bitTriples())

	empty := NewProductView()
	checkSeqLaws(t, empty, []any{[]any{}})

	none := NewProductView(UpTo(0), UpTo(3))
	checkSeqLaws(t, none, nil)
}

func TestProductSliceOdometer(t *testing.T) {
	bits := NewRepeatedProductView(3, UpTo(2))
	all := bitTriples()

	t.Run("full slice", func(t *testing.T) {
		s, err := bits.Slice(Descriptor{})
		require.NoError(t, err)
		require.IsType(t, new(ProductSlice), s)
		checkSeqLaws(t, s, all)
	})

	t.Run("strided", func(t *testing.T) {
		s, err := bits.Slice(testDesc(1, nil, 2))
		require.NoError(t, err)
		checkSeqLaws(t, s, []any{all[1], all[3], all[5], all[7]})
	})

	t.Run("backward strided", func(t *testing.T) {
		s, err := bits.Slice(testDesc(nil, nil, -3))
		require.NoError(t, err)
		checkSeqLaws(t, s, []any{all[7], all[4], all[1]})
	})

	t.Run("bounded", func(t *testing.T) {
		s, err := bits.Slice(testDesc(2, 6, nil))
		require.NoError(t, err)
		checkSeqLaws(t, s, all[2:6])
	})

	t.Run("start clipped to front", func(t *testing.T) {
		s, err := bits.Slice(testDesc(-99, 3, nil))
		require.NoError(t, err)
		checkSeqLaws(t, s, all[:3])
	})

	t.Run("starts past the back", func(t *testing.T) {
		s, err := bits.Slice(testDesc(99, nil, nil))
		require.NoError(t, err)
		checkSeqLaws(t, s, nil)
	})

	t.Run("slice of slice stays a product slice", func(t *testing.T) {
		s, err := bits.Slice(testDesc(1, nil, 1))
		require.NoError(t, err)
		sub, err := s.(*ProductSlice).Slice(testDesc(0, nil, 3))
		require.NoError(t, err)
		require.IsType(t, new(ProductSlice), sub)
		checkSeqLaws(t, sub, []any{all[1], all[4], all[7]})
	})

	t.Run("empty factor yields nothing", func(t *testing.T) {
		none := NewProductView(UpTo(0), UpTo(3))
		s, err := none.Slice(Descriptor{})
		require.NoError(t, err)
		checkSeqLaws(t, s, nil)
	})

	t.Run("zero factor slice yields the empty tuple", func(t *testing.T) {
		s, err := NewProductView().Slice(Descriptor{})
		require.NoError(t, err)
		checkSeqLaws(t, s, []any{[]any{}})
	})
}

func TestProductViewReversed(t *testing.T) {
	bits := NewRepeatedProductView(3, UpTo(2))
	reversed := bits.Reversed()
	require.IsType(t, new(ProductSlice), reversed)
	checkSeqLaws(t, reversed, reversedElems(bitTriples()))
}

func TestProductViewContains(t *testing.T) {
	product := NewProductView(ValuesSeq{0, 1}, NewStringSeq("AB"))

	found, err := product.Contains([]any{1, "A"})
	require.NoError(t, err)
	require.True(t, found)

	found, err = product.Contains([]any{0, "C"})
	require.NoError(t, err)
	require.False(t, found)

	// 1 is not a character of "AB".
	found, err = product.Contains([]any{1, 1})
	require.NoError(t, err)
	require.False(t, found)

	// Wrong arity is not contained, not an error.
	found, err = product.Contains([]any{1})
	require.NoError(t, err)
	require.False(t, found)

	// A non-tuple operand is an invalid argument.
	_, err = product.Contains(1)
	require.Error(t, err)

	// The empty product contains exactly the empty tuple.
	found, err = NewProductView().Contains([]any{})
	require.NoError(t, err)
	require.True(t, found)
}

func TestProductViewIndexOf(t *testing.T) {
	product := NewProductView(NewStringSeq("ABC"), ValuesSeq{0, 1})

	index, found, err := product.IndexOf([]any{"B", 0})
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, index.Cmp(big.NewInt(2)))

	// IndexOf agrees with At.
	elem, err := product.At(index)
	require.NoError(t, err)
	require.Equal(t, []any{"B", 0}, elem)

	_, found, err = product.IndexOf([]any{"D", 0})
	require.NoError(t, err)
	require.False(t, found)

	// Shape mismatches report not found.
	_, found, err = product.IndexOf([]any{"B"})
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = product.IndexOf("B")
	require.NoError(t, err)
	require.False(t, found)

	// The zero-factor product finds the empty tuple at position 0.
	index, found, err = NewProductView().IndexOf([]any{})
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, index.Sign())
}

func TestProductViewCount(t *testing.T) {
	product := NewProductView(NewStringSeq("AAB"), NewStringSeq("AB"))

	count, err := product.Count([]any{"A", "A"})
	require.NoError(t, err)
	require.Zero(t, count.Cmp(big.NewInt(2)))

	count, err = product.Count([]any{"C", "A"})
	require.NoError(t, err)
	require.Zero(t, count.Sign())

	// Shape mismatches count zero.
	count, err = product.Count([]any{"A"})
	require.NoError(t, err)
	require.Zero(t, count.Sign())
	count, err = product.Count("A")
	require.NoError(t, err)
	require.Zero(t, count.Sign())

	count, err = NewProductView().Count([]any{})
	require.NoError(t, err)
	require.Zero(t, count.Cmp(big.NewInt(1)))
}

func TestProductViewString(t *testing.T) {
	product := NewProductView(NewStringSeq("AB"), ValuesSeq{0, 1})
	require.Equal(t, `ProductView("AB", [0 1])`, product.String())
}
