package gamemath

import "math"

// VerticalSquash is the ratio of vertical to horizontal hit-zone radius.
// The squashed ellipse matches the forced 2.5D perspective.
const VerticalSquash = 0.75

// Vec is a 2D point or direction in world space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }
func (v Vec) IsZero() bool        { return v.X == 0 && v.Y == 0 }
func (v Vec) IsNaN() bool         { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// VerticalRadius returns the vertical radius paired with a horizontal one.
func VerticalRadius(horizontal float64) float64 {
	return horizontal * VerticalSquash
}

// EllipseSum returns dx²/hr² + dy²/vr² for a point relative to center.
func EllipseSum(point, center Vec, hr, vr float64) float64 {
	dx := point.X - center.X
	dy := point.Y - center.Y
	return (dx*dx)/(hr*hr) + (dy*dy)/(vr*vr)
}

// InsideEllipse reports whether point lies inside or on the ellipse.
// Radii must be validated by the caller.
func InsideEllipse(point, center Vec, hr, vr float64) bool {
	return EllipseSum(point, center, hr, vr) <= 1
}

// ClampToEllipse pulls target onto the ellipse boundary along the
// center->target direction when it lies outside. Points inside are returned unchanged.
func ClampToEllipse(center, target Vec, hr, vr float64) Vec {
	sum := EllipseSum(target, center, hr, vr)
	if sum <= 1 {
		return target
	}
	scale := 1 / math.Sqrt(sum)
	return center.Add(target.Sub(center).Scale(scale))
}

// LineHitsPoint reports whether point projects between start and end and
// lies within tolerance of the segment.
func LineHitsPoint(start, end, point Vec, tolerance float64) bool {
	seg := end.Sub(start)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return point.Dist(start) <= tolerance
	}
	t := point.Sub(start).Dot(seg) / lenSq
	if t < 0 || t > 1 {
		return false
	}
	closest := start.Add(seg.Scale(t))
	return point.Dist(closest) <= tolerance
}

// Projection returns how far along start->end the point projects, in [0,1]
// when it lies between the endpoints.
func Projection(start, end, point Vec) float64 {
	seg := end.Sub(start)
	lenSq := seg.Dot(seg)
	if lenSq == 0 {
		return 0
	}
	return point.Sub(start).Dot(seg) / lenSq
}
