// Package dynarray implements growable, typed buffers (dynamic arrays)
// over a managed heap for Go.
//
// # Overview
//
// A DynArray is a capacity-doubling buffer of fixed-size elements backed
// by a heap-managed vector. Its control struct and backing vector live in
// the two slots of one anchor container, so both share a single lifetime
// under the heap's root registry. This is particularly useful for:
//
//   - Accumulating records of a fixed wire or in-memory layout
//   - Append-heavy workloads with amortized O(1) growth
//   - Keeping native-style raw views while the heap owns the storage
//   - Pre-sizing and truncation through one explicit resize path
//
// # Basic Usage
//
//	h := dynarray.NewHeap(0) // Unbounded heap
//	defer h.Release()        // Clean up when done
//
//	// Create a typed vector
//	a, err := dynarray.NewDynVector(h, dynarray.KindInt32, 4)
//
//	// Append typed values
//	dynarray.Push(a, int32(42))
//	dynarray.PushN(a, int32(1), int32(2), int32(3))
//
//	// Read back
//	v := dynarray.At[int32](a, 0)
//	all := dynarray.Slice[int32](a)
//
//	// Pre-size or truncate
//	a.Reserve(1024)
//	a.Resize(2)
//
// # Raw Views
//
// PushBack, At, Back and Bytes work on raw element bytes. A nil element
// passed to PushBack zero-fills the new slot instead of copying. Every
// view into the backing vector is invalidated by every resize, including
// the automatic growth performed by a push: re-fetch views after any
// operation that can grow the array.
//
// # Byte-Oriented Arrays
//
// NewDynArray builds an untyped array of opaque fixed-size records:
//
//	rec, err := dynarray.NewDynArray(h, 24, 64) // 64 records of 24 bytes
//	rec.PushBack(buf)                           // copy one record
//	rec.PushBack(nil)                           // zero-filled record
//
// # Thread Safety
//
// Heap and DynArray are not thread-safe; the expected caller enters the
// library from one logical thread at a time. For concurrent access, use
// SafeDynArray:
//
//	s, err := dynarray.NewSafeDynVector(h, dynarray.KindInt64, 0)
//	dynarray.SafePush(s, int64(7))
//
// # Failure Semantics
//
// The only failure modes are ErrOverflow (a byte-size or growth
// multiplication would exceed the signed size range) and ErrAllocation
// (the heap cannot satisfy a vector request). Both are reported before
// any field of the array is mutated: callers observe either full success
// or an unchanged array. Capacity never shrinks except through Resize,
// whose truncating clamp makes it safe with any non-negative target.
//
// # Metrics and Monitoring
//
// Arrays and heaps expose snapshot metrics:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Live vectors: %d\n", h.Metrics().LiveVectors)
package dynarray
