package dynarray

import "testing"

func TestNewDynVectorOf(t *testing.T) {
	h := NewHeap(0)
	a, err := NewDynVectorOf[float32](h, 8)
	if err != nil {
		t.Fatalf("NewDynVectorOf error: %v", err)
	}
	if a.Kind() != KindFloat32 {
		t.Errorf("Kind = %v, want %v", a.Kind(), KindFloat32)
	}
	if a.ElemSize() != 4 {
		t.Errorf("ElemSize = %d, want 4", a.ElemSize())
	}
}

func TestPushAtRoundTrip(t *testing.T) {
	h := NewHeap(0)
	a, err := NewDynVectorOf[int64](h, 2)
	if err != nil {
		t.Fatalf("NewDynVectorOf error: %v", err)
	}

	values := []int64{-1, 0, 42, 1 << 40}
	for _, v := range values {
		if err := Push(a, v); err != nil {
			t.Fatalf("Push(%d) error: %v", v, err)
		}
	}
	for i, want := range values {
		if got := *At[int64](a, i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSliceView(t *testing.T) {
	h := NewHeap(0)
	a, err := NewDynVectorOf[float64](h, 4)
	if err != nil {
		t.Fatalf("NewDynVectorOf error: %v", err)
	}

	if Slice[float64](a) != nil {
		t.Error("Slice of empty array should be nil")
	}

	if err := PushN(a, 1.0, 2.0, 3.0); err != nil {
		t.Fatalf("PushN error: %v", err)
	}
	s := Slice[float64](a)
	if len(s) != 3 {
		t.Fatalf("Slice length = %d, want 3", len(s))
	}
	if s[0] != 1.0 || s[1] != 2.0 || s[2] != 3.0 {
		t.Errorf("Slice = %v", s)
	}

	// The slice views the backing vector: writes are visible both ways
	s[1] = 20.0
	if got := *At[float64](a, 1); got != 20.0 {
		t.Errorf("write through Slice not visible: %v", got)
	}
}

func TestSliceRefetchAfterGrowth(t *testing.T) {
	h := NewHeap(0)
	a, err := NewDynVectorOf[int32](h, 2)
	if err != nil {
		t.Fatalf("NewDynVectorOf error: %v", err)
	}
	if err := PushN(a, int32(1), int32(2)); err != nil {
		t.Fatalf("PushN error: %v", err)
	}

	// The third push relocates the backing vector; a re-fetched view
	// sees all three elements.
	if err := Push(a, int32(3)); err != nil {
		t.Fatalf("Push error: %v", err)
	}
	s := Slice[int32](a)
	if len(s) != 3 || s[0] != 1 || s[1] != 2 || s[2] != 3 {
		t.Errorf("re-fetched slice = %v", s)
	}
}

func TestElemWidthMismatchPanics(t *testing.T) {
	h := NewHeap(0)
	a, err := NewDynVectorOf[int32](h, 4)
	if err != nil {
		t.Fatalf("NewDynVectorOf error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("pushing a mismatched width should panic")
		}
	}()
	Push(a, int64(1))
}

func TestPushStructRecords(t *testing.T) {
	type point struct {
		X, Y int32
	}

	h := NewHeap(0)
	a, err := NewDynArray(h, 8, 2) // sizeof(point)
	if err != nil {
		t.Fatalf("NewDynArray error: %v", err)
	}

	if err := Push(a, point{X: 3, Y: 4}); err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if err := Push(a, point{X: -1, Y: 7}); err != nil {
		t.Fatalf("Push error: %v", err)
	}

	if got := *At[point](a, 0); got != (point{3, 4}) {
		t.Errorf("At(0) = %+v, want {3 4}", got)
	}
	if got := *At[point](a, 1); got != (point{-1, 7}) {
		t.Errorf("At(1) = %+v, want {-1 7}", got)
	}
}
