package gamemath

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}

// MoveDirection turns four held directions into a unit vector.
func MoveDirection(left, right, up, down bool) Vec {
	var d Vec
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	return d.Normalize()
}
