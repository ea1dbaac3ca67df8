package wheeltest

import "container/heap"

// Oracle is a trivial heap-ordered reference queue of (expiry, id)
// pairs. Property tests insert the same timeouts into both a Wheel and
// an Oracle, then check that the *set* of ids the Oracle reports as
// due by some now matches the set the wheel reports — spec.md §5
// only promises FIFO-within-a-bin order, not a global sort, so the
// cross-check is over sets, not sequences.
//
// Grounded on pqueue.go's priorityQueue: a container/heap min-heap,
// generalised from *cacheEntry to a (expiry, id) pair.
type Oracle struct {
	entries oracleHeap
}

type oracleEntry struct {
	expiry uint64
	id     int
}

type oracleHeap []oracleEntry

func (h oracleHeap) Len() int            { return len(h) }
func (h oracleHeap) Less(i, j int) bool  { return h[i].expiry < h[j].expiry }
func (h oracleHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *oracleHeap) Push(x any)         { *h = append(*h, x.(oracleEntry)) }
func (h *oracleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewOracle returns an empty Oracle.
func NewOracle() *Oracle {
	o := &Oracle{}
	heap.Init(&o.entries)
	return o
}

// Insert records that id expires at expiry.
func (o *Oracle) Insert(id int, expiry uint64) {
	heap.Push(&o.entries, oracleEntry{expiry: expiry, id: id})
}

// DueBy pops and returns every id with expiry <= now, without caring
// about order.
func (o *Oracle) DueBy(now uint64) []int {
	var due []int
	for len(o.entries) > 0 && o.entries[0].expiry <= now {
		due = append(due, heap.Pop(&o.entries).(oracleEntry).id)
	}
	return due
}

// Len reports how many entries remain.
func (o *Oracle) Len() int {
	return o.entries.Len()
}
