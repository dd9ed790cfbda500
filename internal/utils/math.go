// internal/utils/math.go
package utils

// StepDown уменьшает v на step, но не ниже floor.
func StepDown(v, step, floor int) int {
	v -= step
	if v < floor {
		return floor
	}
	return v
}

// StepUp увеличивает v на step, но не выше ceil.
func StepUp(v, step, ceil float64) float64 {
	v += step
	if v > ceil {
		return ceil
	}
	return v
}

// GrowPercent returns floor(v * percent / 100) for non-negative v.
// Integer arithmetic keeps floor(50*1.3) == 65 exact.
func GrowPercent(v, percent int) int {
	return v * percent / 100
}
