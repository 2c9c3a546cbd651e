package availability

// FilterOptions narrows an already-built slot view the way the browse
// screen does client-side: by court type, by indoor/outdoor location and
// optionally to courts that still have at least one available slot.
// Empty string fields mean no filtering on that attribute.
type FilterOptions struct {
	Type          string // court type (DOUBLE, SINGLE, KIDS)
	Location      string // INDOOR or OUTDOOR
	OnlyAvailable bool   // keep only courts with >= 1 available slot
}

// Filter returns the subset of courts matching opts, preserving the input
// order.  The slot sequences themselves are never modified; availability
// filtering drops whole courts, not individual slots.
func Filter(courts []CourtWithSlots, opts FilterOptions) []CourtWithSlots {
	out := make([]CourtWithSlots, 0, len(courts))
	for _, cs := range courts {
		if opts.Type != "" && cs.Court.Type != opts.Type {
			continue
		}
		if opts.Location != "" && cs.Court.Location != opts.Location {
			continue
		}
		if opts.OnlyAvailable && !hasAvailable(cs.Slots) {
			continue
		}
		out = append(out, cs)
	}
	return out
}

func hasAvailable(slots []Slot) bool {
	for _, s := range slots {
		if s.Status == StatusAvailable {
			return true
		}
	}
	return false
}
