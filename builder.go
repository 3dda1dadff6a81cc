package path

import (
	"math"
	"slices"
)

// closeSnapDistance is the L1 distance below which Close snaps the last point
// of a sub-path onto the sub-path's start.
//
// Relative path commands tend to accumulate small floating point imprecision,
// which results in the last segment ending almost but not quite at the start
// of the sub-path. The extra closing edge often intersects the first or last
// edge, which trips up algorithms that cannot handle self-intersecting paths.
const closeSnapDistance = 1e-4

// PathBuilder is the construction contract shared by [Builder] and the
// adapters that compose over it. Implementations normalize the calls into
// whatever representation they build; see [Builder] for the normalization
// rules of the canonical implementation.
type PathBuilder interface {
	// MoveTo starts a new sub-path at the given point.
	MoveTo(to Point)
	// LineTo adds a line segment from the current position.
	LineTo(to Point)
	// QuadTo adds a quadratic Bézier segment from the current position.
	QuadTo(ctrl, to Point)
	// CubicTo adds a cubic Bézier segment from the current position.
	CubicTo(ctrl1, ctrl2, to Point)
	// Arc adds an elliptical arc starting at the current position. The sweep
	// angle and x rotation are expressed in radians.
	Arc(center Point, radii Vec2, sweepAngle, xRotation float64)
	// Close terminates the current sub-path with a closing edge back to its
	// start.
	Close()
	// CurrentPosition returns the position after the last command.
	CurrentPosition() Point
}

var _ PathBuilder = (*Builder)(nil)

// Builder incrementally constructs a [Path].
//
// A builder is exclusively owned by a single writer; it must not be shared
// across goroutines. Use [NewBuilder] or [NewBuilderWithCapacity] to create
// one.
//
// Degenerate call sequences are normalized rather than rejected: a segment
// command issued before any MoveTo, or right after a Close, re-opens a
// sub-path at the last known start position, and a MoveTo (or Build) while a
// sub-path is still unterminated first appends a synthetic end.
type Builder struct {
	points          []Point
	verbs           []Verb
	currentPosition Point
	firstPosition   Point
	firstVertex     EndpointID
	firstVerb       int
	needMoveTo      bool
	lastVerb        Verb
}

// NewBuilder returns a builder for constructing a path.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(0, 0)
}

// NewBuilderWithCapacity returns a builder with preallocated room for the
// given number of points and verbs.
func NewBuilderWithCapacity(points, verbs int) *Builder {
	b := &Builder{
		points: make([]Point, 0, points),
		verbs:  make([]Verb, 0, verbs),
	}
	b.reset()
	return b
}

func (b *Builder) reset() {
	b.currentPosition = Point{}
	b.firstPosition = Point{}
	b.firstVertex = 0
	b.firstVerb = 0
	b.needMoveTo = true
	b.lastVerb = EndVerb
}

// SVG returns an [SVGBuilder] wrapping b.
func (b *Builder) SVG() *SVGBuilder {
	return NewSVGBuilder(b)
}

// Flattened returns a [FlatteningBuilder] wrapping b.
func (b *Builder) Flattened(tolerance float64) *FlatteningBuilder {
	return NewFlatteningBuilder(b, tolerance)
}

// MoveTo starts a new sub-path at the given point. If the previous sub-path
// has not been terminated yet, a synthetic end is appended first.
func (b *Builder) MoveTo(to Point) {
	checkPoint(to)
	b.endIfNeeded()
	b.needMoveTo = false
	b.firstPosition = to
	b.firstVertex = EndpointID(len(b.points))
	b.firstVerb = len(b.verbs)
	b.currentPosition = to
	b.points = append(b.points, to)
	b.verbs = append(b.verbs, BeginVerb)
	b.lastVerb = BeginVerb
}

// LineTo adds a line segment from the current position to the given point.
func (b *Builder) LineTo(to Point) {
	checkPoint(to)
	b.moveToIfNeeded()
	b.points = append(b.points, to)
	b.verbs = append(b.verbs, LineToVerb)
	b.currentPosition = to
	b.lastVerb = LineToVerb
}

// QuadTo adds a quadratic Bézier segment from the current position.
func (b *Builder) QuadTo(ctrl, to Point) {
	checkPoint(ctrl)
	checkPoint(to)
	b.moveToIfNeeded()
	b.points = append(b.points, ctrl, to)
	b.verbs = append(b.verbs, QuadToVerb)
	b.currentPosition = to
	b.lastVerb = QuadToVerb
}

// CubicTo adds a cubic Bézier segment from the current position.
func (b *Builder) CubicTo(ctrl1, ctrl2, to Point) {
	checkPoint(ctrl1)
	checkPoint(ctrl2)
	checkPoint(to)
	b.moveToIfNeeded()
	b.points = append(b.points, ctrl1, ctrl2, to)
	b.verbs = append(b.verbs, CubicToVerb)
	b.currentPosition = to
	b.lastVerb = CubicToVerb
}

// Close terminates the current sub-path with a closing edge back to its
// start. If the last point of the sub-path is within [closeSnapDistance] of
// the start, it is snapped onto the start first. The next segment command
// re-opens a sub-path at the start position.
func (b *Builder) Close() {
	if n := len(b.points); n > 0 {
		if b.points[n-1].DistanceL1(b.firstPosition) < closeSnapDistance {
			b.points[n-1] = b.firstPosition
		}
	}

	b.verbs = append(b.verbs, CloseVerb)
	b.currentPosition = b.firstPosition
	b.needMoveTo = true
	b.lastVerb = CloseVerb
}

// Arc adds an elliptical arc starting at the current position around the
// given center. The arc is approximated by quadratic Bézier segments; see
// [Arc]. The sweep angle and x rotation are expressed in radians.
func (b *Builder) Arc(center Point, radii Vec2, sweepAngle, xRotation float64) {
	checkPoint(center)
	checkPoint(Point(radii))
	checkFinite(sweepAngle)
	checkFinite(xRotation)

	startAngle := b.currentPosition.Sub(center).Angle() - xRotation
	arc := Arc{
		Center:     center,
		Radii:      radii,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}
	for q := range arc.Quadratics() {
		b.QuadTo(q.Ctrl, q.To)
	}
}

// Polygon adds a closed polygon connecting the given points in order.
func (b *Builder) Polygon(points []Point) {
	b.points = slices.Grow(b.points, len(points))
	b.verbs = slices.Grow(b.verbs, len(points)+1)
	BuildPolygon(b, points)
}

// BuildPolygon adds a closed polygon connecting the given points, in order, to
// any builder. It does nothing if points is empty.
func BuildPolygon(b PathBuilder, points []Point) {
	if len(points) == 0 {
		return
	}
	b.MoveTo(points[0])
	for _, pt := range points[1:] {
		b.LineTo(pt)
	}
	b.Close()
}

func (b *Builder) moveToIfNeeded() {
	if b.needMoveTo {
		b.MoveTo(b.firstPosition)
	}
}

func (b *Builder) endIfNeeded() {
	if b.lastVerb <= BeginVerb {
		b.verbs = append(b.verbs, EndVerb)
	}
}

// CurrentPosition returns the position after the last command.
func (b *Builder) CurrentPosition() Point {
	return b.currentPosition
}

func checkPoint(p Point) {
	if debugChecks && (p.IsNaN() || p.IsInf()) {
		panic("path: non-finite coordinate " + p.String())
	}
}

func checkFinite(f float64) {
	if debugChecks && (math.IsNaN(f) || math.IsInf(f, 0)) {
		panic("path: non-finite angle")
	}
}

// Build terminates the current sub-path if needed and freezes the accumulated
// arrays into a [Path]. The builder must not be used afterwards; use
// [Builder.BuildAndReset] to keep building.
func (b *Builder) Build() Path {
	b.endIfNeeded()
	return Path{
		points: b.points[:len(b.points):len(b.points)],
		verbs:  b.verbs[:len(b.verbs):len(b.verbs)],
	}
}

// BuildAndReset is like [Builder.Build], but returns the builder to its
// initial state with fresh arrays, so construction of another path can
// continue without reallocating the builder itself.
func (b *Builder) BuildAndReset() Path {
	p := b.Build()
	b.points = nil
	b.verbs = nil
	b.reset()
	return p
}
