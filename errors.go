package dynarray

import "errors"

// ErrOverflow reports that a requested byte size or capacity growth would
// exceed the signed size range. The failing operation mutates nothing.
var ErrOverflow = errors.New("size multiplication overflows")

// ErrAllocation reports that the heap cannot satisfy a vector allocation
// or resize request. The failing operation mutates nothing.
var ErrAllocation = errors.New("allocation failed")
