package timewheel

// StartRange enlists t so that it fires at the latest timestamp within
// [min, max] whose low bits below order(max^min) are all zero, then
// starts it exactly as Start would. Minimising the expiry's low bits
// minimises how many times the entry gets re-binned as last advances
// towards it.
//
// spec.md §9 flags this operation's semantics as ambiguous in the
// reference source; this follows original_source's resolution
// (hitime_start_range): align down from max, not up from min.
//
// t must be detached. min > max is a caller error and returns
// ErrInvalidRange without modifying t.
func (w *Wheel) StartRange(t *Timeout, min, max uint64, payload any) error {
	if min > max {
		return ErrInvalidRange
	}

	aligned := max
	if bits := max ^ min; bits != 0 {
		mask := ^((uint64(1) << order(bits)) - 1)
		aligned = max & mask
	}

	t.Set(aligned, payload)
	w.Start(t)
	return nil
}
