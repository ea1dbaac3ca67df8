// Package timewheel implements a hierarchical timing wheel for
// tracking a large population of pending timeouts and reporting which
// have elapsed as a caller-supplied "now" advances.
//
// ============================================================================
// How the wheel works
// ============================================================================
//
// A Wheel has 64 bins, one per bit of the expiry word, plus an
// expired queue and a scratch processing queue used only inside
// Advance:
//
//	bins[0]  bins[1]  bins[2]  ...  bins[63]
//	  |         |        |              |
//	  v         v        v              v
//	[t1,t2]   [t3]      [ ]    ...    [t4]
//
// A timeout started with expiry e, while the wheel's reference time is
// last, lands in bins[i] where i = order(e XOR last) — the index of
// the highest bit on which e and last currently differ. That single
// number answers "how far away, in powers of two, is this timeout" and
// is recomputed every time last moves past it.
//
// Advancing last from t0 to t1 only ever needs to touch:
//   - bin 0 (always expires: its entries are exactly last XOR 1)
//   - the bins whose order is below order(t1 - t0) (definitely expired)
//   - the bins whose order is between order(t1-t0) and order(t1 XOR t0)
//     (re-bin: they may or may not have expired, and if not, their
//     distance from the new last has shrunk, so they migrate to a
//     lower bin)
//
// Bins above order(t1 XOR t0) are provably untouched: their entries'
// expiry diverges from last on a bit more significant than any bit on
// which t1 differs from t0, so they cannot have expired yet.
//
// This gives O(1) Start/Stop/Touch and amortised O(log distance)
// re-binning per entry over its lifetime, without ever needing a
// sorted structure.
//
// ============================================================================
// Scope
// ============================================================================
//
// The Wheel itself never reads a clock, allocates Timeout records, or
// locks anything — those are the caller's concerns. Scheduler is a
// convenience wrapper that supplies all three for the common case of
// "drive this wheel from a goroutine on a ticker and hand expired
// timeouts to an Observer".
package timewheel
