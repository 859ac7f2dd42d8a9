package seqview

import "errors"

// ErrZeroStep is returned for range descriptors with a zero step,
// at view construction or during sub-range composition.
var ErrZeroStep = errors.New("step must not be zero")

// ErrIndexOutOfRange is wrapped by errors returned from single-index
// accesses outside [-Len, Len).
var ErrIndexOutOfRange = errors.New("index out of range")

// errEmptySubslice signals internally that a composed sub-range selects
// no elements and cannot be represented by clipping its descriptor.
// Callers translate it into the Empty sequence, it never escapes
// to users of the package.
var errEmptySubslice = errors.New("empty subslice")
