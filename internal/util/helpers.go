package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap steps value by delta and wraps around [min, max].
func Wrap(value, delta, min, max int) int {
	span := max - min + 1
	if span <= 0 {
		return min
	}
	off := (value - min + delta) % span
	if off < 0 {
		off += span
	}
	return min + off
}
