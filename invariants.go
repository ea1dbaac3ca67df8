package timewheel

import "fmt"

// checkInvariants walks every bin and verifies invariant (1) of
// spec.md §3: every timeout linked in bins[i] satisfies
// expiry > last and i == order(expiry XOR last). It is O(N) and used
// only by this package's own tests, gated the way original_source's
// hitime_extra.c debug consistency walk is (spec.md §7: "the engine
// may detect some of these with debug assertions but is not required
// to").
func (w *Wheel) checkInvariants() error {
	for i := range w.bins {
		h := &w.bins[i]
		for n := h.next; n != h; n = n.next {
			if n.Expiry() <= w.last {
				return fmt.Errorf("bins[%d]: timeout with expiry %d <= last %d", i, n.Expiry(), w.last)
			}
			want := order(n.Expiry() ^ w.last)
			if want != i {
				return fmt.Errorf("bins[%d]: timeout with expiry %d should be in bin %d", i, n.Expiry(), want)
			}
			if int(n.bin) != i {
				return fmt.Errorf("bins[%d]: timeout's bin field says %d", i, n.bin)
			}
		}
	}
	for n := w.expired.next; n != &w.expired; n = n.next {
		if n.Expiry() > w.last {
			return fmt.Errorf("expired queue: timeout with expiry %d > last %d", n.Expiry(), w.last)
		}
	}
	return nil
}
