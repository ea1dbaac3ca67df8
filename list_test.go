package timewheel

import "testing"

func TestListInitIsEmpty(t *testing.T) {
	var h Timeout
	initList(&h)
	if !isEmptyList(&h) {
		t.Fatalf("freshly initialised list should be empty")
	}
}

func TestListPushPopFIFO(t *testing.T) {
	var h Timeout
	initList(&h)

	a, b, c := &Timeout{}, &Timeout{}, &Timeout{}
	pushBack(&h, a)
	pushBack(&h, b)
	pushBack(&h, c)

	for _, want := range []*Timeout{a, b, c} {
		got := popFront(&h)
		if got != want {
			t.Fatalf("popFront() = %p, want %p", got, want)
		}
	}
	if !isEmptyList(&h) {
		t.Fatalf("list should be empty after draining everything pushed")
	}
	if popFront(&h) != nil {
		t.Fatalf("popFront() on empty list should return nil")
	}
}

func TestListIsLinked(t *testing.T) {
	var h Timeout
	initList(&h)

	n := &Timeout{}
	if isLinked(n) {
		t.Fatalf("fresh node should not be linked")
	}
	pushBack(&h, n)
	if !isLinked(n) {
		t.Fatalf("node should be linked after pushBack")
	}
	unlinkNode(n)
	if isLinked(n) {
		t.Fatalf("node should not be linked after unlinkNode")
	}
}

func TestListUnlinkMiddle(t *testing.T) {
	var h Timeout
	initList(&h)

	a, b, c := &Timeout{}, &Timeout{}, &Timeout{}
	pushBack(&h, a)
	pushBack(&h, b)
	pushBack(&h, c)

	unlinkNode(b)

	got := []*Timeout{popFront(&h), popFront(&h)}
	want := []*Timeout{a, c}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after unlinking middle element, order = %v, want %v", got, want)
		}
	}
	if !isEmptyList(&h) {
		t.Fatalf("list should be empty")
	}
}

func TestSpliceAppendMovesAllAndResetsSrc(t *testing.T) {
	var dst, src Timeout
	initList(&dst)
	initList(&src)

	a, b := &Timeout{}, &Timeout{}
	pushBack(&dst, a)
	pushBack(&src, b)

	spliceAppend(&dst, &src)

	if !isEmptyList(&src) {
		t.Fatalf("src should be empty after spliceAppend")
	}
	got := []*Timeout{popFront(&dst), popFront(&dst)}
	want := []*Timeout{a, b}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spliceAppend order = %v, want %v", got, want)
		}
	}
}

func TestSpliceAppendEmptySrcIsNoOp(t *testing.T) {
	var dst, src Timeout
	initList(&dst)
	initList(&src)

	a := &Timeout{}
	pushBack(&dst, a)

	spliceAppend(&dst, &src)

	if popFront(&dst) != a {
		t.Fatalf("dst should be unaffected by splicing an empty source")
	}
}
