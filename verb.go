package path

// Verb identifies what a group of points in a path's point buffer means. Verbs
// carry no payload of their own; a path is interpreted by replaying its verb
// stream and consuming [Verb.NumPoints] points per verb.
//
// The ordinal order of the segment verbs before BeginVerb is load-bearing: the
// builder decides whether a sub-path is still unterminated by comparing the
// last verb against BeginVerb.
type Verb uint8

const (
	// Draw a line to the stored point.
	LineToVerb Verb = iota
	// Draw a quadratic Bézier using the stored control point and endpoint.
	QuadToVerb
	// Draw a cubic Bézier using the two stored control points and endpoint.
	CubicToVerb
	// Start a new sub-path at the stored point.
	BeginVerb
	// Terminate the sub-path, closing it with an edge back to its start.
	CloseVerb
	// Terminate the sub-path without closing it.
	EndVerb
)

// NumPoints returns the number of points the verb consumes from the point
// buffer when the path is replayed.
func (v Verb) NumPoints() int {
	switch v {
	case BeginVerb:
		return 1
	case LineToVerb:
		return 1
	case QuadToVerb:
		return 2
	case CubicToVerb:
		return 3
	case CloseVerb:
		return 0
	case EndVerb:
		return 0
	default:
		return 0
	}
}

func (v Verb) String() string {
	switch v {
	case LineToVerb:
		return "LineTo"
	case QuadToVerb:
		return "QuadTo"
	case CubicToVerb:
		return "CubicTo"
	case BeginVerb:
		return "Begin"
	case CloseVerb:
		return "Close"
	case EndVerb:
		return "End"
	default:
		return "InvalidVerb"
	}
}
