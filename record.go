package timewheel

import "sync/atomic"

// Timeout is a single scheduled expiry. It is caller-allocated and
// caller-freed; a Wheel only ever threads its next/prev pointers
// through one of its internal lists. A Timeout must not be mutated
// directly while linked in a Wheel — use Touch, or Stop then Set.
type Timeout struct {
	next, prev *Timeout

	expiry  uint64
	payload any

	// bin records which bins[] index this timeout currently occupies,
	// or -1 when it is in expired/processing/detached. Only BinOf and
	// the test-only checkInvariants read it; routing decisions never
	// consult it.
	bin int32
}

// NewTimeout returns a freshly detached, zero-valued timeout record.
func NewTimeout() *Timeout {
	return &Timeout{bin: -1}
}

// Set assigns expiry and payload. The timeout must not be linked in a
// Wheel when this is called; use Touch to change the expiry of a
// timeout that is already started.
func (t *Timeout) Set(expiry uint64, payload any) {
	atomic.StoreUint64(&t.expiry, expiry)
	t.payload = payload
}

// Expiry returns the timeout's current expiry value.
func (t *Timeout) Expiry() uint64 {
	return atomic.LoadUint64(&t.expiry)
}

// Payload returns the opaque value set via Set or StartRange.
func (t *Timeout) Payload() any {
	return t.payload
}

// Reset clears expiry and payload and leaves the timeout detached.
// The caller must have already removed it from any Wheel (via Stop)
// before calling Reset; Reset does not unlink.
func (t *Timeout) Reset() {
	atomic.StoreUint64(&t.expiry, 0)
	t.payload = nil
	t.bin = -1
}

func (t *Timeout) linked() bool {
	return isLinked(t)
}

func (t *Timeout) setExpiry(expiry uint64) {
	atomic.StoreUint64(&t.expiry, expiry)
}
