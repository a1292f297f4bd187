package cptr

import "testing"

func TestOffsetAndDeref(t *testing.T) {
	arr := []int32{10, 20, 30, 40}
	p := Of(arr).Offset(1)
	if got := p.Deref(); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	q := p.Offset(2)
	if got := q.Deref(); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if diff := p.OffsetTo(q); diff != 2 {
		t.Fatalf("expected offset_to 2, got %d", diff)
	}
}

func TestAddrAliasesTheOriginal(t *testing.T) {
	var x int32 = 5
	p := Addr(&x)
	p.Set(9)
	if x != 9 {
		t.Fatalf("expected Set through Ptr to alias x, got x=%d", x)
	}
}

func TestSetAtWritesThroughOffset(t *testing.T) {
	arr := []int32{1, 2, 3}
	p := Of(arr)
	p.SetAt(1, 99)
	if arr[1] != 99 {
		t.Fatalf("expected SetAt(1, 99) to write through to arr[1], got %d", arr[1])
	}
}

func TestNilPointer(t *testing.T) {
	var p Ptr[int32]
	if !p.IsNil() {
		t.Fatalf("expected zero Ptr to be nil")
	}
}

func TestEq(t *testing.T) {
	arr := []int32{1, 2, 3}
	p := Of(arr).Offset(1)
	q := Of(arr).Offset(1)
	if !p.Eq(q) {
		t.Fatalf("expected two pointers to the same index of the same object to be equal")
	}
	if p.Eq(q.Offset(1)) {
		t.Fatalf("expected pointers to different indices to be unequal")
	}
	other := []int32{1, 2, 3}
	if p.Eq(Of(other).Offset(1)) {
		t.Fatalf("expected pointers into different objects to be unequal even at the same index")
	}
}

func TestLess(t *testing.T) {
	arr := []int32{1, 2, 3}
	p := Of(arr)
	q := p.Offset(2)
	if !p.Less(q) {
		t.Fatalf("expected the earlier element's pointer to be Less than the later one")
	}
	if q.Less(p) {
		t.Fatalf("expected the later element's pointer not to be Less than the earlier one")
	}
	if p.Less(p) {
		t.Fatalf("expected a pointer not to be Less than itself")
	}
}
