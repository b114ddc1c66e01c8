package dynarray_bench

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/dynarray"
)

// BenchmarkElementSizes measures raw push throughput across record widths.
func BenchmarkElementSizes(b *testing.B) {
	sizes := []int{1, 4, 8, 24, 64, 256}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			h := dynarray.NewHeap(0)
			defer h.Release()
			a, err := dynarray.NewDynArray(h, size, 64)
			if err != nil {
				b.Fatal(err)
			}
			record := make([]byte, size)

			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := a.PushBack(record); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkZeroFillPush measures the zero-fill append path.
func BenchmarkZeroFillPush(b *testing.B) {
	h := dynarray.NewHeap(0)
	defer h.Release()
	a, err := dynarray.NewDynArray(h, 32, 64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.PushBack(nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGrowthFromMinimalCapacity measures worst-case doubling chains
// starting from capacity 1.
func BenchmarkGrowthFromMinimalCapacity(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := dynarray.NewHeap(0)
		a, err := dynarray.NewDynVectorOf[int64](h, 1)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 1<<14; j++ {
			if err := dynarray.Push(a, int64(j)); err != nil {
				b.Fatal(err)
			}
		}
		h.Release()
	}
}

// BenchmarkSliceScan measures typed read throughput over the valid region.
func BenchmarkSliceScan(b *testing.B) {
	h := dynarray.NewHeap(0)
	defer h.Release()
	a, err := dynarray.NewDynVectorOf[float64](h, 1<<16)
	if err != nil {
		b.Fatal(err)
	}
	for j := 0; j < 1<<16; j++ {
		if err := dynarray.Push(a, float64(j)); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum float64
		for _, v := range dynarray.Slice[float64](a) {
			sum += v
		}
		_ = sum
	}
}
