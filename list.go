package timewheel

// Intrusive doubly-linked circular lists with a sentinel head. A
// *Timeout doubles as both list element and list head: bins, the
// expired queue and the processing queue are each represented by a
// zero-value *Timeout used only for its next/prev pointers, never
// handed back to a caller. This mirrors original_source's
// hitime_node_t embedded as the first member of timeout_t, without
// resorting to container_of/unsafe.Pointer tricks: spec.md §9
// suggests exactly this as the safe alternative for memory-safe
// languages.
//
// All operations are O(1). A node's linked state is next != nil.

func initList(h *Timeout) {
	h.next = h
	h.prev = h
}

func isEmptyList(h *Timeout) bool {
	return h.next == h
}

func isLinked(t *Timeout) bool {
	return t.next != nil
}

func pushBack(h, t *Timeout) {
	last := h.prev
	t.prev = last
	t.next = h
	last.next = t
	h.prev = t
}

// popFront removes and returns the first element of the list, or nil
// if the list is empty.
func popFront(h *Timeout) *Timeout {
	if isEmptyList(h) {
		return nil
	}
	t := h.next
	unlinkNode(t)
	return t
}

// unlinkNode detaches t from whatever list it currently belongs to.
// t must be linked.
func unlinkNode(t *Timeout) {
	t.prev.next = t.next
	t.next.prev = t.prev
	t.next = nil
	t.prev = nil
}

// spliceAppend moves every element of src onto the tail of dst and
// reinitialises src to empty.
func spliceAppend(dst, src *Timeout) {
	if isEmptyList(src) {
		return
	}
	first := src.next
	last := src.prev

	dstLast := dst.prev
	dstLast.next = first
	first.prev = dstLast

	last.next = dst
	dst.prev = last

	initList(src)
}
