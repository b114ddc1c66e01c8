package dynarray

// BytesInUse returns the number of bytes covered by valid elements.
func (a *DynArray) BytesInUse() int {
	return a.count * a.eltSize
}

// Utilization returns the ratio of count to capacity (0.0 to 1.0).
// Returns 0.0 for a zero-capacity array.
func (a *DynArray) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.count) / float64(a.capacity)
}

// Metrics returns a snapshot of array statistics.
func (a *DynArray) Metrics() DynArrayMetrics {
	return DynArrayMetrics{
		Len:          a.count,
		Cap:          a.capacity,
		ElemSize:     a.eltSize,
		GrowthFactor: a.growthFactor,
		Utilization:  a.Utilization(),
	}
}

// DynArrayMetrics contains statistical information about one array.
type DynArrayMetrics struct {
	Len          int     // Valid elements
	Cap          int     // Allocated element slots
	ElemSize     int     // Fixed per-element byte size
	GrowthFactor int     // Capacity multiplier on overflow
	Utilization  float64 // Ratio of Len to Cap (0.0-1.0)
}

// Heap metrics

// BytesInUse returns the total bytes of all live vectors.
func (h *Heap) BytesInUse() int {
	if h.released {
		return 0
	}
	return h.bytesInUse
}

// LiveVectors returns the number of vectors allocated and not yet
// superseded by a relocating resize.
func (h *Heap) LiveVectors() int {
	if h.released {
		return 0
	}
	return h.vectors
}

// LiveContainers returns the number of containers allocated.
func (h *Heap) LiveContainers() int {
	if h.released {
		return 0
	}
	return h.containers
}

// PermanentRoots returns the number of containers registered with Preserve.
func (h *Heap) PermanentRoots() int {
	if h.released {
		return 0
	}
	return len(h.roots)
}

// Limit returns the heap's byte limit, or 0 if unbounded.
func (h *Heap) Limit() int {
	return h.limit
}

// Metrics returns a snapshot of heap statistics.
func (h *Heap) Metrics() HeapMetrics {
	return HeapMetrics{
		BytesInUse:     h.BytesInUse(),
		LiveVectors:    h.LiveVectors(),
		LiveContainers: h.LiveContainers(),
		PermanentRoots: h.PermanentRoots(),
		Limit:          h.Limit(),
	}
}

// HeapMetrics contains statistical information about a heap.
type HeapMetrics struct {
	BytesInUse     int // Total bytes of live vectors
	LiveVectors    int // Vectors allocated and not superseded
	LiveContainers int // Containers allocated
	PermanentRoots int // Containers registered as permanent roots
	Limit          int // Byte limit, 0 if unbounded
}
