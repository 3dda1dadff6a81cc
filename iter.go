package path

// Iter replays a path as a sequence of [PathEvent] values.
//
// An iterator is exhausted permanently once Next reports false; obtain a
// fresh iterator from the path to re-traverse.
type Iter struct {
	points  []Point
	verbs   []Verb
	current Point
	first   Point
}

// Next returns the next event, or false if the path is exhausted.
func (it *Iter) Next() (PathEvent, bool) {
	if len(it.verbs) == 0 {
		return PathEvent{}, false
	}
	v := it.verbs[0]
	it.verbs = it.verbs[1:]
	switch v {
	case BeginVerb:
		it.current = it.points[0]
		it.points = it.points[1:]
		it.first = it.current
		return BeginEvent(it.current), true
	case LineToVerb:
		from := it.current
		it.current = it.points[0]
		it.points = it.points[1:]
		return LineEvent(from, it.current), true
	case QuadToVerb:
		from := it.current
		ctrl := it.points[0]
		it.current = it.points[1]
		it.points = it.points[2:]
		return QuadraticEvent(from, ctrl, it.current), true
	case CubicToVerb:
		from := it.current
		ctrl1 := it.points[0]
		ctrl2 := it.points[1]
		it.current = it.points[2]
		it.points = it.points[3:]
		return CubicEvent(from, ctrl1, ctrl2, it.current), true
	case CloseVerb:
		last := it.current
		it.current = it.first
		return EndEvent(last, it.first, true), true
	case EndVerb:
		last := it.current
		it.current = it.first
		return EndEvent(last, it.first, false), true
	default:
		return PathEvent{}, false
	}
}

// IDIter replays a path as a sequence of [IDEvent] values, carrying indices
// into the path's point buffer instead of point values.
//
// The index arithmetic consumes points verb-for-verb exactly like [Iter], so
// the two iterators stay in lock-step when driven over the same path.
type IDIter struct {
	verbs   []Verb
	next    uint32
	current uint32
	first   uint32
}

// Next returns the next event, or false if the path is exhausted.
func (it *IDIter) Next() (IDEvent, bool) {
	if len(it.verbs) == 0 {
		return IDEvent{}, false
	}
	v := it.verbs[0]
	it.verbs = it.verbs[1:]
	switch v {
	case BeginVerb:
		at := it.next
		it.next++
		it.current = at
		it.first = at
		return IDEvent{Kind: EventBegin, From: EndpointID(at), To: EndpointID(at)}, true
	case LineToVerb:
		from := it.current
		to := it.next
		it.next++
		it.current = to
		return IDEvent{Kind: EventLine, From: EndpointID(from), To: EndpointID(to)}, true
	case QuadToVerb:
		from := it.current
		ctrl := it.next
		to := it.next + 1
		it.next += 2
		it.current = to
		return IDEvent{
			Kind:  EventQuadratic,
			From:  EndpointID(from),
			To:    EndpointID(to),
			Ctrl1: CtrlPointID(ctrl),
		}, true
	case CubicToVerb:
		from := it.current
		ctrl1 := it.next
		ctrl2 := it.next + 1
		to := it.next + 2
		it.next += 3
		it.current = to
		return IDEvent{
			Kind:  EventCubic,
			From:  EndpointID(from),
			To:    EndpointID(to),
			Ctrl1: CtrlPointID(ctrl1),
			Ctrl2: CtrlPointID(ctrl2),
		}, true
	case CloseVerb:
		last := it.current
		it.current = it.first
		return IDEvent{
			Kind:   EventEnd,
			From:   EndpointID(last),
			To:     EndpointID(it.first),
			Closed: true,
		}, true
	case EndVerb:
		last := it.current
		it.current = it.first
		return IDEvent{
			Kind: EventEnd,
			From: EndpointID(last),
			To:   EndpointID(it.first),
		}, true
	default:
		return IDEvent{}, false
	}
}
