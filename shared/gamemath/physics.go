package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMagnitude scales v down to max length. Shorter vectors are returned unchanged.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// ClampToRect clamps a point into [minX, maxX] x [minY, maxY].
func ClampToRect(p Vec2, minX, minY, maxX, maxY float64) Vec2 {
	return Vec2{X: Clamp(p.X, minX, maxX), Y: Clamp(p.Y, minY, maxY)}
}

// ApplyDamping multiplies velocity by factor (0..1).
func ApplyDamping(v Vec2, factor float64) Vec2 {
	return Scale(v, factor)
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Remap maps v from [inLo, inHi] onto [outLo, outHi] without clamping.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}
