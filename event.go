package path

import "fmt"

// EndpointID identifies a point that starts or ends a drawn segment. It is an
// index into the point buffer of the path that produced it; it is meaningless
// for any other path.
type EndpointID uint32

// CtrlPointID identifies an interior shaping point of a quadratic or cubic
// segment. Like [EndpointID], it is an index into the point buffer of the path
// that produced it.
type CtrlPointID uint32

// EventKind identifies the kind of a path event.
type EventKind uint8

const (
	// The start of a new sub-path.
	EventBegin EventKind = iota + 1
	// A line segment.
	EventLine
	// A quadratic Bézier segment.
	EventQuadratic
	// A cubic Bézier segment.
	EventCubic
	// The end of a sub-path, optionally closing it.
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventQuadratic:
		return "Quadratic"
	case EventCubic:
		return "Cubic"
	case EventEnd:
		return "End"
	default:
		return "InvalidEvent"
	}
}

// Event is one step of a path traversal, parameterized by the point
// representation: [PathEvent] carries point values, [IDEvent] carries point
// indices.
//
// From is always the position before the event and To the position after it.
// In detail, per kind:
//
//   - [EventBegin]: From and To are both the sub-path's start.
//   - [EventLine], [EventQuadratic], [EventCubic]: From and To are the
//     segment's endpoints; Ctrl1 (and Ctrl2 for cubics) are its control
//     points.
//   - [EventEnd]: From is the last position of the sub-path, To the sub-path's
//     start the traversal returns to, and Closed reports whether a closing
//     edge is implied.
type Event[E, C any] struct {
	Kind   EventKind
	From   E
	To     E
	Ctrl1  C
	Ctrl2  C
	Closed bool
}

// PathEvent is an [Event] carrying point values.
type PathEvent = Event[Point, Point]

// IDEvent is an [Event] carrying point indices.
type IDEvent = Event[EndpointID, CtrlPointID]

func (ev Event[E, C]) String() string {
	switch ev.Kind {
	case EventBegin:
		return fmt.Sprintf("Begin(at: %v)", ev.To)
	case EventLine:
		return fmt.Sprintf("Line(from: %v, to: %v)", ev.From, ev.To)
	case EventQuadratic:
		return fmt.Sprintf("Quadratic(from: %v, ctrl: %v, to: %v)", ev.From, ev.Ctrl1, ev.To)
	case EventCubic:
		return fmt.Sprintf("Cubic(from: %v, ctrl1: %v, ctrl2: %v, to: %v)", ev.From, ev.Ctrl1, ev.Ctrl2, ev.To)
	case EventEnd:
		return fmt.Sprintf("End(last: %v, first: %v, close: %v)", ev.From, ev.To, ev.Closed)
	default:
		return "InvalidEvent"
	}
}

// BeginEvent returns the event starting a sub-path at the given point.
func BeginEvent(at Point) PathEvent {
	return PathEvent{Kind: EventBegin, From: at, To: at}
}

// LineEvent returns the event for a line segment.
func LineEvent(from, to Point) PathEvent {
	return PathEvent{Kind: EventLine, From: from, To: to}
}

// QuadraticEvent returns the event for a quadratic Bézier segment.
func QuadraticEvent(from, ctrl, to Point) PathEvent {
	return PathEvent{Kind: EventQuadratic, From: from, To: to, Ctrl1: ctrl}
}

// CubicEvent returns the event for a cubic Bézier segment.
func CubicEvent(from, ctrl1, ctrl2, to Point) PathEvent {
	return PathEvent{Kind: EventCubic, From: from, To: to, Ctrl1: ctrl1, Ctrl2: ctrl2}
}

// EndEvent returns the event terminating a sub-path that started at first and
// whose last drawn position is last.
func EndEvent(last, first Point, closed bool) PathEvent {
	return PathEvent{Kind: EventEnd, From: last, To: first, Closed: closed}
}
