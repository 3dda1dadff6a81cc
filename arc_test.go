package path

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcQuadratics(t *testing.T) {
	a := Arc{
		Center:     Pt(0, 0),
		Radii:      Vec(1, 1),
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}

	var quads []QuadraticSegment
	for q := range a.Quadratics() {
		quads = append(quads, q)
	}
	diff(t, 2, len(quads))

	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Pt(1, 0), quads[0].From, approx)
	diff(t, Pt(0, 1), quads[1].To, approx)
	// Segments must be contiguous.
	diff(t, quads[0].To, quads[1].From)

	// The midpoint of each quadratic must stay close to the circle.
	for _, q := range quads {
		mid := evalQuad(q.From, q.Ctrl, q.To, 0.5)
		if r := mid.Distance(a.Center); math.Abs(r-1) > 5e-3 {
			t.Errorf("midpoint of %v deviates from the circle: radius %v", q, r)
		}
	}
}

func TestArcQuadraticsNegativeSweep(t *testing.T) {
	a := Arc{
		Center:     Pt(0, 0),
		Radii:      Vec(2, 2),
		StartAngle: math.Pi / 2,
		SweepAngle: -math.Pi / 2,
	}
	var last QuadraticSegment
	n := 0
	for q := range a.Quadratics() {
		last = q
		n++
	}
	diff(t, 2, n)
	diff(t, Pt(2, 0), last.To, cmpopts.EquateApprox(0, 1e-9))
}

func TestArcQuadraticsEllipseRotation(t *testing.T) {
	// A quarter sweep on an ellipse rotated by π/2 starts at the rotated
	// image of (rx, 0).
	a := Arc{
		Center:     Pt(1, 1),
		Radii:      Vec(2, 1),
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
		XRotation:  math.Pi / 2,
	}
	for q := range a.Quadratics() {
		diff(t, Pt(1, 3), q.From, cmpopts.EquateApprox(0, 1e-9))
		break
	}
}

func TestBuilderArc(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(Pt(1, 0))
	b.Arc(Pt(0, 0), Vec(1, 1), math.Pi/2, 0)
	p := b.Build()

	evs := collectEvents(p.Slice())
	// Begin, two quadratics, synthetic end.
	diff(t, 4, len(evs))
	diff(t, EventBegin, evs[0].Kind)
	diff(t, EventQuadratic, evs[1].Kind)
	diff(t, EventQuadratic, evs[2].Kind)
	diff(t, Pt(0, 1), evs[2].To, cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(0, 1), b.CurrentPosition(), cmpopts.EquateApprox(0, 1e-9))
}

func TestBuilderArcFullSweep(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(Pt(2, 1))
	b.Arc(Pt(1, 1), Vec(1, 1), 2*math.Pi, 0)
	b.Close()
	p := b.Build()

	evs := collectEvents(p.Slice())
	diff(t, 10, len(evs))
	last := evs[len(evs)-1]
	diff(t, EventEnd, last.Kind)
	diff(t, true, last.Closed)
	// The arc returns to its start; Close snaps away the floating point
	// residue, leaving no hairline closing edge.
	diff(t, Pt(2, 1), last.From)
}
