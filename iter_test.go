package path

import (
	"testing"
)

func buildAllVerbs() Path {
	b := NewBuilder()
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.QuadTo(Pt(2, 0), Pt(2, 1))
	b.CubicTo(Pt(2, 2), Pt(1, 2), Pt(0, 2))
	b.Close()
	b.MoveTo(Pt(10, 0))
	b.LineTo(Pt(11, 0))
	return b.Build()
}

func TestIterExhaustionIsSticky(t *testing.T) {
	p := buildAllVerbs()
	it := p.Iter()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	diff(t, 8, n)
	for range 3 {
		if _, ok := it.Next(); ok {
			t.Fatal("exhausted iterator yielded an event")
		}
	}

	idIt := p.IDIter()
	for _, ok := idIt.Next(); ok; _, ok = idIt.Next() {
	}
	for range 3 {
		if _, ok := idIt.Next(); ok {
			t.Fatal("exhausted id iterator yielded an event")
		}
	}
}

func TestIDIterIndices(t *testing.T) {
	p := buildAllVerbs()

	want := []IDEvent{
		{Kind: EventBegin, From: 0, To: 0},
		{Kind: EventLine, From: 0, To: 1},
		{Kind: EventQuadratic, From: 1, To: 3, Ctrl1: 2},
		{Kind: EventCubic, From: 3, To: 6, Ctrl1: 4, Ctrl2: 5},
		{Kind: EventEnd, From: 6, To: 0, Closed: true},
		{Kind: EventBegin, From: 7, To: 7},
		{Kind: EventLine, From: 7, To: 8},
		{Kind: EventEnd, From: 8, To: 7},
	}
	diff(t, want, collectIDEvents(p.Slice()))
}

// The id iterator must consume points verb-for-verb like the value iterator,
// so resolving its ids against the path's point buffer reproduces the value
// events exactly.
func TestIterAndIDIterLockStep(t *testing.T) {
	p := buildAllVerbs()

	it := p.Iter()
	idIt := p.IDIter()
	for {
		ev, ok := it.Next()
		idEv, idOK := idIt.Next()
		diff(t, ok, idOK)
		if !ok {
			break
		}
		diff(t, ev.Kind, idEv.Kind)
		diff(t, ev.From, p.Endpoint(idEv.From))
		diff(t, ev.To, p.Endpoint(idEv.To))
		switch ev.Kind {
		case EventQuadratic:
			diff(t, ev.Ctrl1, p.CtrlPoint(idEv.Ctrl1))
		case EventCubic:
			diff(t, ev.Ctrl1, p.CtrlPoint(idEv.Ctrl1))
			diff(t, ev.Ctrl2, p.CtrlPoint(idEv.Ctrl2))
		case EventEnd:
			diff(t, ev.Closed, idEv.Closed)
		}
	}
}

func TestEventsSequenceStopsEarly(t *testing.T) {
	p := buildAllVerbs()
	n := 0
	for range p.Events() {
		n++
		if n == 3 {
			break
		}
	}
	diff(t, 3, n)

	// Each call to Events yields a fresh traversal.
	diff(t, 8, len(collectEvents(p.Slice())))
}

func TestVerbArity(t *testing.T) {
	p := buildAllVerbs()
	n := 0
	for _, v := range p.Verbs() {
		n += v.NumPoints()
	}
	diff(t, len(p.Points()), n)
}

func TestPathSliceSharesArrays(t *testing.T) {
	p := buildAllVerbs()
	s := p.Slice()
	diff(t, p.Points(), s.Points())
	diff(t, p.Verbs(), s.Verbs())
	diff(t, collectEvents(p.Slice()), collectEvents(s))
	if s.IsEmpty() {
		t.Error("slice of a non-empty path reported empty")
	}
}
