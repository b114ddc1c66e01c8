package dynarray

import "sync"

// SafeDynArray is a mutex-protected wrapper around DynArray for
// concurrent access. All operations are thread-safe but come with the
// overhead of mutex locking. Raw views returned by At, Back and Bytes
// are only safe to read while no other goroutine mutates the array.
type SafeDynArray struct {
	mu sync.Mutex
	a  *DynArray
}

// NewSafeDynVector creates a thread-safe growable vector of the given
// element kind. If capacity <= 0, DefaultCapacity is used.
func NewSafeDynVector(h *Heap, kind Kind, capacity int) (*SafeDynArray, error) {
	a, err := NewDynVector(h, kind, capacity)
	if err != nil {
		return nil, err
	}
	return &SafeDynArray{a: a}, nil
}

// NewSafeDynArray creates a thread-safe byte-oriented array of opaque
// eltByteSize-byte records.
func NewSafeDynArray(h *Heap, eltByteSize, capacity int) (*SafeDynArray, error) {
	a, err := NewDynArray(h, eltByteSize, capacity)
	if err != nil {
		return nil, err
	}
	return &SafeDynArray{a: a}, nil
}

// PushBack thread-safely appends one element, copying elt or
// zero-filling the slot when elt is nil.
func (s *SafeDynArray) PushBack(elt []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PushBack(elt)
}

// Resize thread-safely sets the capacity, truncating the count if needed.
func (s *SafeDynArray) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Resize(n)
}

// Reserve thread-safely grows the capacity to at least n elements.
func (s *SafeDynArray) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reserve(n)
}

// PopBack thread-safely removes the last element and returns its bytes.
func (s *SafeDynArray) PopBack() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PopBack()
}

// Len thread-safely returns the number of valid elements.
func (s *SafeDynArray) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Cap thread-safely returns the allocated capacity.
func (s *SafeDynArray) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Cap()
}

// ElemSize returns the fixed per-element byte size.
func (s *SafeDynArray) ElemSize() int {
	return s.a.ElemSize()
}

// Kind returns the element kind of the backing vector.
func (s *SafeDynArray) Kind() Kind {
	return s.a.Kind()
}

// At thread-safely returns the raw bytes of element i.
func (s *SafeDynArray) At(i int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.At(i)
}

// Back thread-safely returns the raw bytes of the last element.
func (s *SafeDynArray) Back() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Back()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeDynArray) Metrics() DynArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Utilization thread-safely returns the ratio of count to capacity.
func (s *SafeDynArray) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Generic accessors for SafeDynArray

// SafePush thread-safely appends v to the array.
func SafePush[T any](s *SafeDynArray, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Push(s.a, v)
}

// SafePushN thread-safely appends vs in order.
func SafePushN[T any](s *SafeDynArray, vs ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PushN(s.a, vs...)
}

// SafeAt thread-safely returns a typed pointer to element i.
func SafeAt[T any](s *SafeDynArray, i int) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return At[T](s.a, i)
}

// SafeSlice thread-safely returns the valid region as a []T.
// The slice views the backing vector; treat it as read-only and do not
// hold it across further mutations.
func SafeSlice[T any](s *SafeDynArray) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Slice[T](s.a)
}
