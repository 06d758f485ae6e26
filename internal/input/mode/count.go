package mode

import "strconv"

// MaxCount caps the pending count.
const MaxCount = 9999

// Count is an optional repeat factor typed before a motion.
// The zero value is an absent count.
type Count struct {
	value int
	set   bool
}

// Push appends digit d to the count, saturating at MaxCount.
func (c *Count) Push(d int) {
	c.value = min(c.value*10+d, MaxCount)
	c.set = true
}

// IsSet reports whether any digit has been typed.
func (c *Count) IsSet() bool {
	return c.set
}

// Value returns the count, or 0 when absent.
func (c *Count) Value() int {
	return c.value
}

// Take returns the count and resets it. An absent count yields 1.
func (c *Count) Take() int {
	n := c.value
	if !c.set {
		n = 1
	}
	c.Reset()
	return n
}

// Reset clears the count.
func (c *Count) Reset() {
	*c = Count{}
}

// String returns the typed digits, or "" when absent.
func (c *Count) String() string {
	if !c.set {
		return ""
	}
	return strconv.Itoa(c.value)
}
