package path

import (
	"iter"
	"slices"
)

// Path is an immutable 2D vector path.
//
// A path stores its geometry as two parallel arrays: a verb stream and a flat
// point buffer. It is created with a [Builder] and must not be modified
// afterwards; all read operations are safe for concurrent use.
//
// The zero value is the empty path.
type Path struct {
	points []Point
	verbs  []Verb
}

// PathSlice is a borrowing, copy-cheap view of a [Path]. It exposes the same
// read operations without taking ownership of the arrays.
type PathSlice struct {
	points []Point
	verbs  []Verb
}

// Slice returns a view of the whole path.
func (p Path) Slice() PathSlice {
	return PathSlice{points: p.points, verbs: p.verbs}
}

// Points returns the path's point buffer. The slice is shared with the path
// and must not be modified.
func (p Path) Points() []Point { return p.points }

// Verbs returns the path's verb stream. The slice is shared with the path and
// must not be modified.
func (p Path) Verbs() []Verb { return p.verbs }

// IsEmpty reports whether the path contains no verbs.
func (p Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Endpoint returns the point identified by id. The id must come from an
// [IDIter] over this very path; anything else panics or silently returns an
// unrelated point.
func (p Path) Endpoint(id EndpointID) Point { return p.points[id] }

// CtrlPoint returns the point identified by id. The id must come from an
// [IDIter] over this very path.
func (p Path) CtrlPoint(id CtrlPointID) Point { return p.points[id] }

// Iter returns an iterator over the path's events.
func (p Path) Iter() *Iter { return p.Slice().Iter() }

// IDIter returns an iterator over the path's events in index form.
func (p Path) IDIter() *IDIter { return p.Slice().IDIter() }

// Events returns the path's events as a single-use sequence.
func (p Path) Events() iter.Seq[PathEvent] { return p.Slice().Events() }

// IDEvents returns the path's events in index form as a single-use sequence.
func (p Path) IDEvents() iter.Seq[IDEvent] { return p.Slice().IDEvents() }

// Merge concatenates two paths. The result replays as p's events followed by
// o's events; no attempt is made to weld or deduplicate sub-paths at the
// boundary. Neither operand is modified.
func (p Path) Merge(o Path) Path {
	return Path{
		points: slices.Concat(p.points, o.points),
		verbs:  slices.Concat(p.verbs, o.verbs),
	}
}

// Points returns the view's point buffer. The slice must not be modified.
func (s PathSlice) Points() []Point { return s.points }

// Verbs returns the view's verb stream. The slice must not be modified.
func (s PathSlice) Verbs() []Verb { return s.verbs }

// IsEmpty reports whether the view contains no verbs.
func (s PathSlice) IsEmpty() bool { return len(s.verbs) == 0 }

// Endpoint returns the point identified by id.
func (s PathSlice) Endpoint(id EndpointID) Point { return s.points[id] }

// CtrlPoint returns the point identified by id.
func (s PathSlice) CtrlPoint(id CtrlPointID) Point { return s.points[id] }

// Iter returns an iterator over the view's events.
func (s PathSlice) Iter() *Iter {
	return &Iter{points: s.points, verbs: s.verbs}
}

// IDIter returns an iterator over the view's events in index form.
func (s PathSlice) IDIter() *IDIter {
	return &IDIter{verbs: s.verbs}
}

// Events returns the view's events as a sequence. The sequence is finite;
// every range over it starts a fresh traversal.
func (s PathSlice) Events() iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		it := s.Iter()
		for ev, ok := it.Next(); ok; ev, ok = it.Next() {
			if !yield(ev) {
				return
			}
		}
	}
}

// IDEvents returns the view's events in index form as a sequence.
func (s PathSlice) IDEvents() iter.Seq[IDEvent] {
	return func(yield func(IDEvent) bool) {
		it := s.IDIter()
		for ev, ok := it.Next(); ok; ev, ok = it.Next() {
			if !yield(ev) {
				return
			}
		}
	}
}
