package path

import "math"

// FlatteningBuilder adapts a [PathBuilder] by approximating every curved
// segment with line segments. The tolerance bounds the maximum distance
// between a curve and its polyline approximation; the number of lines grows
// as the inverse square root of the tolerance.
//
// FlatteningBuilder itself implements [PathBuilder], so adapters can be
// stacked, e.g. an [SVGBuilder] over a FlatteningBuilder over a [Builder].
type FlatteningBuilder struct {
	b         PathBuilder
	tolerance float64
}

var _ PathBuilder = (*FlatteningBuilder)(nil)

// NewFlatteningBuilder returns a flattening adapter over b with the given
// tolerance.
func NewFlatteningBuilder(b PathBuilder, tolerance float64) *FlatteningBuilder {
	return &FlatteningBuilder{b: b, tolerance: tolerance}
}

// Tolerance returns the adapter's tolerance.
func (f *FlatteningBuilder) Tolerance() float64 { return f.tolerance }

// MoveTo starts a new sub-path at the given point.
func (f *FlatteningBuilder) MoveTo(to Point) { f.b.MoveTo(to) }

// LineTo adds a line segment from the current position.
func (f *FlatteningBuilder) LineTo(to Point) { f.b.LineTo(to) }

// Close terminates the current sub-path with a closing edge.
func (f *FlatteningBuilder) Close() { f.b.Close() }

// CurrentPosition returns the position after the last command.
func (f *FlatteningBuilder) CurrentPosition() Point { return f.b.CurrentPosition() }

// QuadTo approximates a quadratic Bézier segment with line segments.
func (f *FlatteningBuilder) QuadTo(ctrl, to Point) {
	from := f.b.CurrentPosition()
	// Wang's formula: subdividing at n uniform parameter values bounds the
	// distance between curve and polyline by |from − 2·ctrl + to| / (8n²).
	d := Vec2(from).Sub(Vec2(ctrl).Mul(2)).Add(Vec2(to)).Hypot()
	n := max(int(math.Ceil(math.Sqrt(d/(8*f.tolerance)))), 1)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		f.b.LineTo(evalQuad(from, ctrl, to, t))
	}
	f.b.LineTo(to)
}

// CubicTo approximates a cubic Bézier segment with line segments.
func (f *FlatteningBuilder) CubicTo(ctrl1, ctrl2, to Point) {
	from := f.b.CurrentPosition()
	d1 := Vec2(from).Sub(Vec2(ctrl1).Mul(2)).Add(Vec2(ctrl2)).Hypot()
	d2 := Vec2(ctrl1).Sub(Vec2(ctrl2).Mul(2)).Add(Vec2(to)).Hypot()
	d := max(d1, d2)
	n := max(int(math.Ceil(math.Sqrt(3*d/(4*f.tolerance)))), 1)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		f.b.LineTo(evalCubic(from, ctrl1, ctrl2, to, t))
	}
	f.b.LineTo(to)
}

// Arc approximates an elliptical arc with line segments, by way of the
// quadratic approximation used by [Builder.Arc].
func (f *FlatteningBuilder) Arc(center Point, radii Vec2, sweepAngle, xRotation float64) {
	startAngle := f.b.CurrentPosition().Sub(center).Angle() - xRotation
	arc := Arc{
		Center:     center,
		Radii:      radii,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}
	for q := range arc.Quadratics() {
		f.QuadTo(q.Ctrl, q.To)
	}
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	return a.Lerp(b, t)
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	c := p2.Lerp(p3, t)
	return a.Lerp(b, t).Lerp(b.Lerp(c, t), t)
}
