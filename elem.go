package dynarray

import (
	"fmt"
	"unsafe"
)

// NewDynVectorOf creates a growable vector whose element kind is derived
// from the Go type T.
func NewDynVectorOf[T Scalar](h *Heap, capacity int) (*DynArray, error) {
	return NewDynVector(h, KindOf[T](), capacity)
}

// Push appends v to the array. The width of T must match the array's
// element byte size.
func Push[T any](a *DynArray, v T) error {
	a.checkElemWidth(int(unsafe.Sizeof(v)))
	elt := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	return a.PushBack(elt)
}

// PushN appends vs in order, stopping at the first failed push.
func PushN[T any](a *DynArray, vs ...T) error {
	for _, v := range vs {
		if err := Push(a, v); err != nil {
			return err
		}
	}
	return nil
}

// At returns a pointer to element i, typed as T. The pointer dies on the
// next resize of the array.
func At[T any](a *DynArray, i int) *T {
	var zero T
	a.checkElemWidth(int(unsafe.Sizeof(zero)))
	b := a.At(i)
	return (*T)(unsafe.Pointer(&b[0]))
}

// Slice returns the array's valid region as a []T of length Len().
// The slice views the backing vector directly and dies on the next
// resize. Returns nil for an empty array.
func Slice[T any](a *DynArray) []T {
	var zero T
	a.checkElemWidth(int(unsafe.Sizeof(zero)))
	if a.count == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.count)
}

// checkElemWidth panics if n does not match the array's element size.
func (a *DynArray) checkElemWidth(n int) {
	if n != a.eltSize {
		panic(fmt.Sprintf("dynarray: element width %d does not match array element size %d", n, a.eltSize))
	}
}
