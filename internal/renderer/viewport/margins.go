package viewport

// MarginConfig holds the scroll trigger distances, in screen rows.
type MarginConfig struct {
	Top    int // scroll up when the cursor row is at or above this
	Bottom int // scroll down when the cursor row is within this of the bottom
}

// DefaultMargins returns the standard scroll margins.
func DefaultMargins() MarginConfig {
	return MarginConfig{
		Top:    5,
		Bottom: 6,
	}
}

// NoMargins returns margins that never trigger a scroll.
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// SetMargins replaces the scroll margins. Negative values become 0.
func (v *Viewport) SetMargins(m MarginConfig) {
	v.margins = MarginConfig{
		Top:    max(m.Top, 0),
		Bottom: max(m.Bottom, 0),
	}
}

// Margins returns the current scroll margins.
func (v *Viewport) Margins() MarginConfig {
	return v.margins
}
