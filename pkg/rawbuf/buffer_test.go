package rawbuf

import "testing"

func TestNewZeroCount(t *testing.T) {
	b := New[int](0)

	if b.Data() != nil {
		t.Error("Data() should be nil for a zero-count buffer")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestNewAllocates(t *testing.T) {
	b := New[int](4)

	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if b.Data() == nil {
		t.Fatal("Data() should not be nil for a non-zero buffer")
	}
	for i := 0; i < 4; i++ {
		if got := *b.Ref(i); got != 0 {
			t.Errorf("element %d = %d, want zero value", i, got)
		}
	}
}

func TestNewNegativeCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(-1) should panic")
		}
	}()
	New[int](-1)
}

func TestRefWritesThrough(t *testing.T) {
	b := New[string](2)

	*b.Ref(0) = "a"
	*b.Ref(1) = "b"

	if b.Data()[0] != "a" || b.Data()[1] != "b" {
		t.Errorf("Data() = %v, want [a b]", b.Data())
	}
}

func TestSwapExchangesOwnership(t *testing.T) {
	a := New[int](2)
	*a.Ref(0) = 1
	*a.Ref(1) = 2
	b := New[int](5)

	a.Swap(b)

	if a.Len() != 5 {
		t.Errorf("a.Len() = %d after swap, want 5", a.Len())
	}
	if b.Len() != 2 {
		t.Errorf("b.Len() = %d after swap, want 2", b.Len())
	}
	if *b.Ref(0) != 1 || *b.Ref(1) != 2 {
		t.Errorf("b contents = %v after swap, want [1 2]", b.Data())
	}
}

func TestSwapWithEmpty(t *testing.T) {
	a := New[int](3)
	b := New[int](0)

	a.Swap(b)

	if a.Len() != 0 {
		t.Errorf("a.Len() = %d after swap with empty, want 0", a.Len())
	}
	if a.Data() != nil {
		t.Error("a.Data() should be nil after swapping with an empty buffer")
	}
	if b.Len() != 3 {
		t.Errorf("b.Len() = %d after swap, want 3", b.Len())
	}
}
