package dynarray

import "fmt"

// Heap is the managed-memory substrate that dynamic arrays allocate from.
// It hands out typed vectors and slotted containers, tracks permanent and
// scoped roots, and enforces an optional byte limit. Not goroutine-safe;
// callers are expected to enter it from one logical thread at a time.
type Heap struct {
	limit      int
	bytesInUse int
	vectors    int
	containers int
	roots      map[*Container]struct{}
	protect    []*Container
	released   bool
}

// Vector is a handle to a typed block of managed memory. A resize may
// relocate the block, in which case the old handle is dead and must be
// discarded in favor of the handle returned by ResizeVector.
type Vector struct {
	kind Kind
	buf  []byte
	dead bool
}

// Container is a fixed-slot managed cell holding arbitrary children,
// optionally tagged with a class identity for introspection.
type Container struct {
	slots []any
	class string
}

// NewHeap creates a heap with the given byte limit.
// If limit <= 0 the heap is unbounded.
func NewHeap(limit int) *Heap {
	if limit < 0 {
		limit = 0
	}
	return &Heap{
		limit: limit,
		roots: make(map[*Container]struct{}),
	}
}

// NewVector allocates a zeroed vector of n elements of the given kind.
// Fails with ErrOverflow if n elements do not fit in the signed size
// range, or ErrAllocation if the heap limit would be exceeded.
func (h *Heap) NewVector(kind Kind, n int) (*Vector, error) {
	h.panicIfReleased()
	if n < 0 {
		panic("dynarray: negative vector length")
	}
	total, ok := mulSize(n, kind.Size())
	if !ok {
		return nil, fmt.Errorf("dynarray: %d elements of %d bytes: %w", n, kind.Size(), ErrOverflow)
	}
	if h.limit > 0 && h.bytesInUse+total > h.limit {
		return nil, fmt.Errorf("dynarray: vector of %d bytes exceeds heap limit %d: %w", total, h.limit, ErrAllocation)
	}
	h.bytesInUse += total
	h.vectors++
	return &Vector{kind: kind, buf: make([]byte, total)}, nil
}

// ResizeVector reallocates v to newTotal bytes, copying the common prefix.
// The returned handle replaces v; v is dead afterwards and any use of it
// panics. On failure v is untouched and remains valid.
func (h *Heap) ResizeVector(v *Vector, newTotal int) (*Vector, error) {
	h.panicIfReleased()
	if v.dead {
		panic("dynarray: use of relocated vector handle")
	}
	if newTotal < 0 {
		panic("dynarray: negative vector size")
	}
	delta := newTotal - len(v.buf)
	if h.limit > 0 && delta > 0 && h.bytesInUse+delta > h.limit {
		return nil, fmt.Errorf("dynarray: vector of %d bytes exceeds heap limit %d: %w", newTotal, h.limit, ErrAllocation)
	}
	buf := make([]byte, newTotal)
	copy(buf, v.buf)
	h.bytesInUse += delta
	v.dead = true
	v.buf = nil
	return &Vector{kind: v.kind, buf: buf}, nil
}

// Bytes returns the raw storage of the vector. The slice is valid only
// until the next resize of this vector.
func (v *Vector) Bytes() []byte {
	if v.dead {
		panic("dynarray: use of relocated vector handle")
	}
	return v.buf
}

// Kind returns the element kind the vector was allocated with.
func (v *Vector) Kind() Kind {
	return v.kind
}

// Size returns the total byte size of the vector's storage.
func (v *Vector) Size() int {
	if v.dead {
		panic("dynarray: use of relocated vector handle")
	}
	return len(v.buf)
}

// NewContainer allocates a container with n empty slots.
func (h *Heap) NewContainer(n int) *Container {
	h.panicIfReleased()
	if n < 0 {
		panic("dynarray: negative slot count")
	}
	h.containers++
	return &Container{slots: make([]any, n)}
}

// Slot returns the child stored at index i.
func (c *Container) Slot(i int) any {
	if i < 0 || i >= len(c.slots) {
		panic(fmt.Sprintf("dynarray: slot %d out of range [0:%d]", i, len(c.slots)))
	}
	return c.slots[i]
}

// SetSlot stores v as the child at index i.
func (c *Container) SetSlot(i int, v any) {
	if i < 0 || i >= len(c.slots) {
		panic(fmt.Sprintf("dynarray: slot %d out of range [0:%d]", i, len(c.slots)))
	}
	c.slots[i] = v
}

// SetClass tags the container with a class identity.
func (c *Container) SetClass(name string) {
	c.class = name
}

// Class returns the container's class tag, or "" if untagged.
func (c *Container) Class() string {
	return c.class
}

// Preserve registers c as a permanent root. Rooted containers and
// everything reachable through their slots stay alive until the heap
// itself is released.
func (h *Heap) Preserve(c *Container) {
	h.panicIfReleased()
	h.roots[c] = struct{}{}
}

// ScopedRoot registers c as a temporary root and returns the function
// that releases it. Releases must nest: releasing out of order panics.
// Typical usage:
//
//	release := h.ScopedRoot(c)
//	defer release()
func (h *Heap) ScopedRoot(c *Container) (release func()) {
	h.panicIfReleased()
	h.protect = append(h.protect, c)
	return func() {
		n := len(h.protect)
		if n == 0 || h.protect[n-1] != c {
			panic("dynarray: unbalanced scoped root release")
		}
		h.protect = h.protect[:n-1]
	}
}

// Release drops all roots and accounting and makes the heap unusable.
// Any subsequent operation will panic.
func (h *Heap) Release() {
	h.released = true
	h.roots = nil
	h.protect = nil
	h.bytesInUse = 0
	h.vectors = 0
	h.containers = 0
}

// panicIfReleased panics if the heap has been released.
func (h *Heap) panicIfReleased() {
	if h.released {
		panic("dynarray: use after Release()")
	}
}
