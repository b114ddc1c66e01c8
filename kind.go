package dynarray

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind is a semantic tag identifying the element type held by a vector.
// Each kind has a fixed per-element byte size.
type Kind int

const (
	KindByte Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

// Scalar is the set of Go types that map onto a vector element kind.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

var kindSizes = [...]int{
	KindByte:       1,
	KindInt16:      2,
	KindInt32:      4,
	KindInt64:      8,
	KindFloat32:    4,
	KindFloat64:    8,
	KindComplex64:  8,
	KindComplex128: 16,
}

var kindNames = [...]string{
	KindByte:       "byte",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindComplex64:  "complex64",
	KindComplex128: "complex128",
}

// Size returns the per-element byte size of the kind.
func (k Kind) Size() int {
	if k < 0 || int(k) >= len(kindSizes) {
		panic(fmt.Sprintf("dynarray: invalid kind %d", int(k)))
	}
	return kindSizes[k]
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf returns the element kind corresponding to the Go type T.
// Named scalar types resolve by their width.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return KindByte
	case int16, uint16:
		return KindInt16
	case int32, uint32:
		return KindInt32
	case int64, uint64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	}
	switch unsafe.Sizeof(zero) {
	case 1:
		return KindByte
	case 2:
		return KindInt16
	case 4:
		return KindInt32
	case 8:
		return KindInt64
	case 16:
		return KindComplex128
	}
	panic(fmt.Sprintf("dynarray: no kind for element width %d", unsafe.Sizeof(zero)))
}
