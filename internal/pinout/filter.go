package pinout

// VisiblePins returns the ids of the pins shown for the given filter toggles.
// No active toggles shows every pin; otherwise a pin is visible when its
// category set intersects the active set. Membership is exact, never a
// substring match.
func (c *Catalog) VisiblePins(active CategorySet) PinSet {
	visible := make(PinSet, len(c.pins))
	for _, p := range c.pins {
		if len(active) == 0 || active.Intersects(p.Categories) {
			visible[p.ID] = struct{}{}
		}
	}
	return visible
}

// NewPinSetFrom collects the ids of pins into a set.
func NewPinSetFrom(pins []Pin) PinSet {
	s := make(PinSet, len(pins))
	for _, p := range pins {
		s[p.ID] = struct{}{}
	}
	return s
}

// IDs returns the ids of pins in their given order.
func IDs(pins []Pin) []string {
	ids := make([]string, len(pins))
	for i, p := range pins {
		ids[i] = p.ID
	}
	return ids
}
