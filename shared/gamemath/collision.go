package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.X, r.X+r.W),
		Y: Clamp(p.Y, r.Y, r.Y+r.H),
	}
}

// ResolveCircleRect pushes a circle out of r along the shortest path from the
// rectangle's closest point. A center sitting exactly on the closest point is
// pushed along +x by the full radius. Returns the corrected center and whether
// the circle overlapped.
//
// Callers resolving several rectangles apply this once per rectangle in list
// order; a later rectangle may push the circle back into an earlier one.
func ResolveCircleRect(center Vec2, radius float64, r Rect) (Vec2, bool) {
	closest := r.ClosestPoint(center)
	dx := center.X - closest.X
	dy := center.Y - closest.Y

	distSq := dx*dx + dy*dy
	if distSq >= radius*radius {
		return center, false
	}

	d := math.Sqrt(distSq)
	overlap := radius - d
	if d == 0 {
		dx, dy, d = 1, 0, 1
	}

	return Vec2{
		X: center.X + dx/d*overlap,
		Y: center.Y + dy/d*overlap,
	}, true
}
