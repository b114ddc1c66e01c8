// Package dynarray implements growable, typed buffers over a managed heap.
// A DynArray is anchored by a two-slot container so its control struct and
// backing vector share one lifetime under the heap's root registry.
package dynarray

import "fmt"

// DefaultCapacity is used when a constructor is given a capacity <= 0.
const DefaultCapacity = 8

// DefaultGrowthFactor is the capacity multiplier applied when a push
// exceeds the current capacity.
const DefaultGrowthFactor = 2

// ClassDynArray is the class identity every array's anchor container is
// tagged with. Fixed at process start, never mutated.
const ClassDynArray = "dynarray"

// Anchor slot layout. The two children are never reordered.
const (
	slotControl = 0
	slotBacking = 1
)

// DynArray is a growable typed buffer. The struct is the array's control
// record: it tracks the logical element count, the allocated capacity and
// a raw view into the backing vector's storage. It lives in slot 0 of its
// anchor container, with the backing vector in slot 1.
//
// DynArray is not goroutine-safe. Use SafeDynArray for concurrent access.
type DynArray struct {
	h            *Heap
	anchor       *Container
	kind         Kind
	eltSize      int
	count        int
	capacity     int
	growthFactor int

	// data views the backing vector's storage. Every resize replaces it;
	// views obtained before a resize must not be reused.
	data []byte
}

// NewDynVector creates a growable vector of the given element kind with
// room for capacity elements. If capacity <= 0, DefaultCapacity is used.
//
// The returned pointer stays valid as long as the heap is alive. The raw
// views it hands out (Bytes, At, Slice) die on every resize and must be
// re-fetched afterwards.
func NewDynVector(h *Heap, kind Kind, capacity int) (*DynArray, error) {
	return newDyn(h, kind, kind.Size(), capacity)
}

// NewDynArray creates an untyped byte-oriented array whose elements are
// opaque records of eltByteSize bytes each. The total byte capacity is
// capacity * eltByteSize; if that product exceeds the signed size range
// the call fails with ErrOverflow and constructs nothing.
func NewDynArray(h *Heap, eltByteSize, capacity int) (*DynArray, error) {
	if eltByteSize <= 0 {
		panic("dynarray: non-positive element size")
	}
	return newDyn(h, KindByte, eltByteSize, capacity)
}

func newDyn(h *Heap, kind Kind, eltSize, capacity int) (*DynArray, error) {
	h.panicIfReleased()
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	// Byte-oriented arrays back capacity records of eltSize bytes with a
	// byte vector of the total size. Both the record total and the final
	// byte size are checked before anything is allocated, so a failed
	// construction builds nothing.
	vecLen := capacity
	if eltSize != kind.Size() {
		n, ok := mulSize(capacity, eltSize)
		if !ok {
			return nil, fmt.Errorf("dynarray: %d elements of %d bytes: %w", capacity, eltSize, ErrOverflow)
		}
		vecLen = n
	}
	if _, ok := mulSize(vecLen, kind.Size()); !ok {
		return nil, fmt.Errorf("dynarray: %d elements of %d bytes: %w", vecLen, kind.Size(), ErrOverflow)
	}

	anchor := h.NewContainer(2)
	anchor.SetClass(ClassDynArray)

	// Keep the anchor rooted while its children are installed. Released
	// on every exit path, so a failed construction leaves no root behind.
	release := h.ScopedRoot(anchor)
	defer release()

	v, err := h.NewVector(kind, vecLen)
	if err != nil {
		return nil, err
	}

	a := &DynArray{
		h:            h,
		anchor:       anchor,
		kind:         kind,
		eltSize:      eltSize,
		capacity:     capacity,
		growthFactor: DefaultGrowthFactor,
		data:         v.Bytes(),
	}
	anchor.SetSlot(slotControl, a)
	anchor.SetSlot(slotBacking, v)
	h.Preserve(anchor)
	return a, nil
}

// PushBack appends one element. If elt is non-nil its eltByteSize bytes
// are copied into the new slot; if elt is nil the slot is zero-filled.
// The slot never keeps stale content either way.
//
// When the push exceeds the current capacity the array grows by its
// growth factor first. Growth can fail with ErrOverflow or ErrAllocation,
// in which case the array is left exactly as it was.
func (a *DynArray) PushBack(elt []byte) error {
	if elt != nil && len(elt) != a.eltSize {
		panic(fmt.Sprintf("dynarray: element of %d bytes pushed onto array of %d-byte elements", len(elt), a.eltSize))
	}

	count := a.count + 1
	if count > a.capacity {
		newCap, ok := mulSize(a.capacity, a.growthFactor)
		if !ok {
			return fmt.Errorf("dynarray: growing capacity %d by factor %d: %w", a.capacity, a.growthFactor, ErrOverflow)
		}
		// A truncating Resize(0) leaves zero capacity, which doubling
		// alone can never escape.
		if newCap < count {
			newCap = count
		}
		if err := a.Resize(newCap); err != nil {
			return err
		}
	}
	a.count = count

	slot := a.data[(count-1)*a.eltSize : count*a.eltSize]
	if elt == nil {
		clear(slot)
		return nil
	}
	copy(slot, elt)
	return nil
}

// Resize sets the capacity to n elements, growing or shrinking the
// backing vector through the single shared path. Shrinking below the
// current count truncates: the trailing elements are silently dropped,
// so the call is safe with any non-negative target. Data below the new
// capacity is preserved byte for byte.
//
// On failure the array is untouched: count, capacity and the data view
// all keep their previous values.
func (a *DynArray) Resize(n int) error {
	if n < 0 {
		panic("dynarray: negative capacity")
	}
	total, ok := mulSize(a.eltSize, n)
	if !ok {
		return fmt.Errorf("dynarray: %d elements of %d bytes: %w", n, a.eltSize, ErrOverflow)
	}

	v, err := a.h.ResizeVector(a.backing(), total)
	if err != nil {
		return err
	}
	a.anchor.SetSlot(slotBacking, v)
	a.data = v.Bytes()
	a.count = min(a.count, n)
	a.capacity = n
	return nil
}

// Reserve grows the capacity to at least n elements. It never shrinks
// and never changes the count.
func (a *DynArray) Reserve(n int) error {
	if n <= a.capacity {
		return nil
	}
	return a.Resize(n)
}

// Len returns the number of logically valid elements.
func (a *DynArray) Len() int {
	return a.count
}

// Cap returns the allocated capacity in elements.
func (a *DynArray) Cap() int {
	return a.capacity
}

// Kind returns the element kind of the backing vector.
func (a *DynArray) Kind() Kind {
	return a.kind
}

// ElemSize returns the fixed per-element byte size.
func (a *DynArray) ElemSize() int {
	return a.eltSize
}

// GrowthFactor returns the capacity multiplier applied on overflow.
func (a *DynArray) GrowthFactor() int {
	return a.growthFactor
}

// Anchor returns the container that owns the control struct (slot 0) and
// the backing vector (slot 1). Introspection tools can recognize arrays
// by its ClassDynArray tag.
func (a *DynArray) Anchor() *Container {
	return a.anchor
}

// Bytes returns the raw bytes of the valid region, count * eltByteSize
// long. The view dies on the next resize.
func (a *DynArray) Bytes() []byte {
	return a.data[:a.count*a.eltSize]
}

// At returns the raw bytes of element i. The view dies on the next resize.
func (a *DynArray) At(i int) []byte {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("dynarray: index %d out of range [0:%d]", i, a.count))
	}
	return a.data[i*a.eltSize : (i+1)*a.eltSize : (i+1)*a.eltSize]
}

// Back returns the raw bytes of the last element, the slot written by the
// most recent push. Panics on an empty array.
func (a *DynArray) Back() []byte {
	if a.count == 0 {
		panic("dynarray: Back on empty array")
	}
	return a.At(a.count - 1)
}

// PopBack removes the last element and returns its bytes. The returned
// view is valid until the next mutation of the array. Capacity is
// unchanged: the array never shrinks on underflow.
func (a *DynArray) PopBack() []byte {
	b := a.Back()
	a.count--
	return b
}

// backing returns the live backing-vector handle from the anchor.
func (a *DynArray) backing() *Vector {
	return a.anchor.Slot(slotBacking).(*Vector)
}
