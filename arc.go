package path

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization. Angles are expressed
// in radians; the arc starts at StartAngle on the ellipse obtained by scaling
// the unit circle by Radii and rotating it by XRotation around Center, and
// sweeps by SweepAngle.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// QuadraticSegment is a quadratic Bézier segment produced by [Arc.Quadratics].
type QuadraticSegment struct {
	From Point
	Ctrl Point
	To   Point
}

// maxArcStep is the largest angle a single quadratic segment covers when
// approximating an arc. A step of π/4 keeps the worst-case radial error below
// roughly 0.4% of the larger radius.
const maxArcStep = math.Pi / 4

// Quadratics approximates the arc with a lazy sequence of quadratic Bézier
// segments. The sequence is finite and starts at the arc's start point; each
// segment begins where the previous one ended.
func (a Arc) Quadratics() iter.Seq[QuadraticSegment] {
	return func(yield func(QuadraticSegment) bool) {
		n := max(int(math.Ceil(math.Abs(a.SweepAngle)/maxArcStep)), 1)
		step := a.SweepAngle / float64(n)
		// The control point of a quadratic whose endpoints lie on the unit
		// circle at angles θ0 and θ1 is the intersection of the two tangents,
		// which is the point at angle (θ0+θ1)/2 pushed out by 1/cos((θ1−θ0)/2).
		// The ellipse is an affine image of the unit circle, and affine maps
		// preserve tangency, so the same construction holds after mapping.
		push := 1 / math.Cos(step/2)
		from := a.sample(a.StartAngle, 1)
		for i := range n {
			th0 := a.StartAngle + float64(i)*step
			to := a.sample(th0+step, 1)
			ctrl := a.sample(th0+step/2, push)
			if !yield(QuadraticSegment{From: from, Ctrl: ctrl, To: to}) {
				return
			}
			from = to
		}
	}
}

// sample returns the point at the given angle on the ellipse, with the radial
// coordinate scaled by k.
func (a Arc) sample(angle, k float64) Point {
	s, c := math.Sincos(angle)
	x := a.Radii.X * k * c
	y := a.Radii.Y * k * s
	rs, rc := math.Sincos(a.XRotation)
	return a.Center.Translate(Vec2{
		X: x*rc - y*rs,
		Y: x*rs + y*rc,
	})
}
