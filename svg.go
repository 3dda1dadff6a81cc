package path

import "math"

// SVGBuilder adapts a [PathBuilder] to the SVG path command set: relative
// variants of every command, horizontal and vertical lines, smooth curves
// that reflect the previous control point, and arcs in SVG's endpoint
// parameterization.
//
// SVGBuilder itself implements [PathBuilder], so adapters can be stacked.
type SVGBuilder struct {
	b PathBuilder
	// lastCtrl is the last control point of the previous command, used by the
	// smooth curve commands. lastKind records whether that command was a
	// quadratic or a cubic; any other verb means there is nothing to reflect.
	lastCtrl Point
	lastKind Verb
}

var _ PathBuilder = (*SVGBuilder)(nil)

// NewSVGBuilder returns an SVG command adapter over b.
func NewSVGBuilder(b PathBuilder) *SVGBuilder {
	return &SVGBuilder{b: b, lastKind: EndVerb}
}

// MoveTo starts a new sub-path at the given point.
func (s *SVGBuilder) MoveTo(to Point) {
	s.b.MoveTo(to)
	s.lastKind = EndVerb
}

// RelMoveTo starts a new sub-path at the current position offset by to.
func (s *SVGBuilder) RelMoveTo(to Vec2) {
	s.MoveTo(s.b.CurrentPosition().Translate(to))
}

// LineTo adds a line segment from the current position.
func (s *SVGBuilder) LineTo(to Point) {
	s.b.LineTo(to)
	s.lastKind = EndVerb
}

// RelLineTo adds a line segment to the current position offset by to.
func (s *SVGBuilder) RelLineTo(to Vec2) {
	s.LineTo(s.b.CurrentPosition().Translate(to))
}

// HorizontalLineTo adds a horizontal line segment to the given x coordinate.
func (s *SVGBuilder) HorizontalLineTo(x float64) {
	s.LineTo(Pt(x, s.b.CurrentPosition().Y))
}

// RelHorizontalLineTo adds a horizontal line segment of the given extent.
func (s *SVGBuilder) RelHorizontalLineTo(dx float64) {
	s.RelLineTo(Vec(dx, 0))
}

// VerticalLineTo adds a vertical line segment to the given y coordinate.
func (s *SVGBuilder) VerticalLineTo(y float64) {
	s.LineTo(Pt(s.b.CurrentPosition().X, y))
}

// RelVerticalLineTo adds a vertical line segment of the given extent.
func (s *SVGBuilder) RelVerticalLineTo(dy float64) {
	s.RelLineTo(Vec(0, dy))
}

// QuadTo adds a quadratic Bézier segment from the current position.
func (s *SVGBuilder) QuadTo(ctrl, to Point) {
	s.b.QuadTo(ctrl, to)
	s.lastCtrl = ctrl
	s.lastKind = QuadToVerb
}

// RelQuadTo adds a quadratic Bézier segment with its control point and
// endpoint expressed relative to the current position.
func (s *SVGBuilder) RelQuadTo(ctrl, to Vec2) {
	cur := s.b.CurrentPosition()
	s.QuadTo(cur.Translate(ctrl), cur.Translate(to))
}

// SmoothQuadTo adds a quadratic Bézier segment whose control point is the
// reflection of the previous quadratic's control point about the current
// position. If the previous command was not a quadratic, the control point is
// the current position.
func (s *SVGBuilder) SmoothQuadTo(to Point) {
	s.QuadTo(s.reflectedCtrl(QuadToVerb), to)
}

// RelSmoothQuadTo is [SVGBuilder.SmoothQuadTo] with the endpoint expressed
// relative to the current position.
func (s *SVGBuilder) RelSmoothQuadTo(to Vec2) {
	s.SmoothQuadTo(s.b.CurrentPosition().Translate(to))
}

// CubicTo adds a cubic Bézier segment from the current position.
func (s *SVGBuilder) CubicTo(ctrl1, ctrl2, to Point) {
	s.b.CubicTo(ctrl1, ctrl2, to)
	s.lastCtrl = ctrl2
	s.lastKind = CubicToVerb
}

// RelCubicTo adds a cubic Bézier segment with its control points and endpoint
// expressed relative to the current position.
func (s *SVGBuilder) RelCubicTo(ctrl1, ctrl2, to Vec2) {
	cur := s.b.CurrentPosition()
	s.CubicTo(cur.Translate(ctrl1), cur.Translate(ctrl2), cur.Translate(to))
}

// SmoothCubicTo adds a cubic Bézier segment whose first control point is the
// reflection of the previous cubic's second control point about the current
// position. If the previous command was not a cubic, the first control point
// is the current position.
func (s *SVGBuilder) SmoothCubicTo(ctrl2, to Point) {
	s.CubicTo(s.reflectedCtrl(CubicToVerb), ctrl2, to)
}

// RelSmoothCubicTo is [SVGBuilder.SmoothCubicTo] with the control point and
// endpoint expressed relative to the current position.
func (s *SVGBuilder) RelSmoothCubicTo(ctrl2, to Vec2) {
	cur := s.b.CurrentPosition()
	s.SmoothCubicTo(cur.Translate(ctrl2), cur.Translate(to))
}

func (s *SVGBuilder) reflectedCtrl(kind Verb) Point {
	cur := s.b.CurrentPosition()
	if s.lastKind != kind {
		return cur
	}
	return cur.Translate(cur.Sub(s.lastCtrl))
}

// Arc adds an elliptical arc in center parameterization, like
// [Builder.Arc].
func (s *SVGBuilder) Arc(center Point, radii Vec2, sweepAngle, xRotation float64) {
	s.b.Arc(center, radii, sweepAngle, xRotation)
	s.lastKind = EndVerb
}

// ArcTo adds an elliptical arc in SVG's endpoint parameterization: from the
// current position to the given point, on an ellipse with the given radii
// rotated by xRotation radians. largeArc selects the sweep of more than half
// a turn, sweep the direction of increasing angle. Degenerate arcs (zero
// radii, or endpoints that coincide) follow the SVG specification: the former
// becomes a line segment, the latter is dropped.
func (s *SVGBuilder) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, to Point) {
	from := s.b.CurrentPosition()
	if from == to {
		return
	}
	if radii.X == 0 || radii.Y == 0 {
		s.LineTo(to)
		return
	}

	// Conversion from endpoint to center parameterization per the SVG
	// specification, appendix B.2.4, including the self-correction of
	// out-of-range radii.
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	sinPhi, cosPhi := math.Sincos(xRotation)

	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale the radii up if no ellipse of the requested size can reach from
	// one endpoint to the other.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		k := math.Sqrt(lambda)
		rx *= k
		ry *= k
	}

	rxy1 := rx * y1p
	ryx1 := ry * x1p
	num := rx*rx*ry*ry - rxy1*rxy1 - ryx1*ryx1
	den := rxy1*rxy1 + ryx1*ryx1
	co := math.Sqrt(max(num/den, 0))
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rxy1 / ry
	cyp := -co * ryx1 / rx
	center := Pt(
		cosPhi*cxp-sinPhi*cyp+(from.X+to.X)/2,
		sinPhi*cxp+cosPhi*cyp+(from.Y+to.Y)/2,
	)

	// Start angle and sweep in the ellipse's parametric space.
	start := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	arc := Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: start,
		SweepAngle: delta,
		XRotation:  xRotation,
	}
	for q := range arc.Quadratics() {
		s.b.QuadTo(q.Ctrl, q.To)
	}
	s.lastKind = EndVerb
}

// RelArcTo is [SVGBuilder.ArcTo] with the endpoint expressed relative to the
// current position.
func (s *SVGBuilder) RelArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, to Vec2) {
	s.ArcTo(radii, xRotation, largeArc, sweep, s.b.CurrentPosition().Translate(to))
}

// Close terminates the current sub-path with a closing edge.
func (s *SVGBuilder) Close() {
	s.b.Close()
	s.lastKind = EndVerb
}

// CurrentPosition returns the position after the last command.
func (s *SVGBuilder) CurrentPosition() Point {
	return s.b.CurrentPosition()
}

// Inner returns the wrapped builder.
func (s *SVGBuilder) Inner() PathBuilder {
	return s.b
}
