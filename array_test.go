package safeseq

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArrayAtWithinBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "safeseq")
	defer teardown()

	items := []string{"a", "b", "c", "d"}
	arr, err := From(len(items), items...)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	for i, want := range items {
		got, err := arr.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if got != want {
			t.Fatalf("At(%d)=%q want=%q", i, got, want)
		}
	}
	if _, err := arr.At(len(items)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for At(N), got %v", err)
	}
	if _, err := arr.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for At(-1), got %v", err)
	}
}

func TestArrayFromShortInputFillsDefaults(t *testing.T) {
	arr, err := From(5, 1, 2)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	if arr.Len() != 5 {
		t.Fatalf("Len()=%d want=5", arr.Len())
	}
	for i, want := range []int{1, 2, 0, 0, 0} {
		if got, _ := arr.At(i); got != want {
			t.Fatalf("At(%d)=%d want=%d", i, got, want)
		}
	}
	if _, err := From(2, 1, 2, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for oversized input, got %v", err)
	}
	if _, err := New[int](-1); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for negative capacity, got %v", err)
	}
}

func TestArrayFrontBack(t *testing.T) {
	arr, _ := From(3, 10, 20, 30)
	if f, err := arr.Front(); err != nil || f != 10 {
		t.Fatalf("Front()=%d,%v want=10", f, err)
	}
	if b, err := arr.Back(); err != nil || b != 30 {
		t.Fatalf("Back()=%d,%v want=30", b, err)
	}
	empty, _ := New[int](0)
	if _, err := empty.Front(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer for Front(), got %v", err)
	}
	if _, err := empty.Back(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("expected ErrEmptyContainer for Back(), got %v", err)
	}
}

func TestArraySetAndRef(t *testing.T) {
	arr, _ := New[int](3)
	if err := arr.Set(1, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	p, err := arr.Ref(1)
	if err != nil {
		t.Fatalf("Ref failed: %v", err)
	}
	*p++
	if v, _ := arr.At(1); v != 43 {
		t.Fatalf("At(1)=%d want=43", v)
	}
	if err := arr.Set(3, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestArrayAtSize(t *testing.T) {
	arr, _ := From(2, "x", "y")
	idx, _ := arr.Size().Sub(arr.Size())
	if v, err := arr.AtSize(idx); err != nil || v != "x" {
		t.Fatalf("AtSize(0)=%q,%v want=x", v, err)
	}
	if _, err := arr.AtSize(arr.Size()); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestArrayCloneIsIndependent(t *testing.T) {
	arr, _ := From(2, 1, 2)
	it := arr.Begin()
	cl, err := arr.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	_ = cl.Set(0, 99)
	if v, _ := arr.At(0); v != 1 {
		t.Fatalf("original changed by clone: %d", v)
	}
	if v, _ := it.Item(); v != 1 {
		t.Fatalf("iterator follows clone: %d", v)
	}
}

func TestArrayAllRangesOverItems(t *testing.T) {
	arr, _ := From(4, "a", "b", "c")
	var got []string
	var pos []int
	for i, s := range arr.All() {
		pos = append(pos, i)
		got = append(got, s)
	}
	if len(got) != 4 || got[0] != "a" || got[2] != "c" || got[3] != "" {
		t.Fatalf("unexpected items %q", got)
	}
	if pos[3] != 3 {
		t.Fatalf("unexpected positions %v", pos)
	}
	for range arr.All() {
		break
	}
}

func TestNilArray(t *testing.T) {
	var arr *Array[int]
	if arr.Len() != 0 {
		t.Fatalf("nil array has length %d", arr.Len())
	}
	if _, err := arr.At(0); !errors.Is(err, ErrNullDereference) {
		t.Fatalf("expected ErrNullDereference, got %v", err)
	}
	if err := arr.Begin().SetToNext(); !errors.Is(err, ErrNullDereference) {
		t.Fatalf("expected ErrNullDereference, got %v", err)
	}
	if _, err := arr.Front(); !errors.Is(err, ErrNullDereference) {
		t.Fatalf("expected ErrNullDereference for Front(), got %v", err)
	}
	if _, err := arr.Back(); !errors.Is(err, ErrNullDereference) {
		t.Fatalf("expected ErrNullDereference for Back(), got %v", err)
	}
}
