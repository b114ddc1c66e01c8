package dynarray

import "testing"

// BenchmarkPushTyped measures amortized typed append cost.
func BenchmarkPushTyped(b *testing.B) {
	h := NewHeap(0)
	defer h.Release()
	a, err := NewDynVectorOf[int64](h, 64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Push(a, int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPushBackRecords measures raw record appends in byte mode.
func BenchmarkPushBackRecords(b *testing.B) {
	h := NewHeap(0)
	defer h.Release()
	a, err := NewDynArray(h, 24, 64)
	if err != nil {
		b.Fatal(err)
	}
	record := make([]byte, 24)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.PushBack(record); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPushWithReserve compares pre-sized appends against pure
// doubling growth.
func BenchmarkPushWithReserve(b *testing.B) {
	b.Run("grow", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			h := NewHeap(0)
			a, _ := NewDynVectorOf[int32](h, 4)
			for j := 0; j < 4096; j++ {
				Push(a, int32(j))
			}
			h.Release()
		}
	})

	b.Run("reserve", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			h := NewHeap(0)
			a, _ := NewDynVectorOf[int32](h, 4)
			a.Reserve(4096)
			for j := 0; j < 4096; j++ {
				Push(a, int32(j))
			}
			h.Release()
		}
	})
}

// BenchmarkAccumulateAndTruncate simulates a batch pipeline: accumulate a
// window of samples, drain it with a truncating resize, repeat.
func BenchmarkAccumulateAndTruncate(b *testing.B) {
	h := NewHeap(0)
	defer h.Release()
	a, err := NewDynVectorOf[float64](h, 256)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 256; j++ {
			Push(a, float64(j))
		}
		var sum float64
		for _, v := range Slice[float64](a) {
			sum += v
		}
		a.Resize(0)
		_ = sum
	}
}
