package vim

import "math"

// CountState is the repeat-count accumulator built from digit keys
// typed before an operator or motion. A zero value means "no explicit
// count" and is treated as 1 by Get.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates a count is being accumulated. It distinguishes
	// "no count" from an explicit count while '0' doubles as a motion.
	Active bool
}

// Reset clears the accumulator.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit folds a digit key into the count. It returns false
// when the rune is not a digit or when '0' arrives with no count
// active ('0' is the line-start motion in that position).
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	// Cap rather than overflow on absurd counts.
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count: 1 when none was typed.
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// IsCountStart returns true for digits that can begin a count.
// '0' cannot: at the start of a command it is the line-start motion.
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit returns true for digits valid inside a count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
