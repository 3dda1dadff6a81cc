package path

// Reverse replays the path backward into b, producing an equivalent path
// whose sub-paths are individually traversed in the opposite direction.
// Sub-paths are emitted in reverse order as well.
//
// The encoding has no backward links, so the walk reconstructs sub-path
// boundaries as it goes: reaching a sub-path's terminator starts the reversed
// sub-path at the forward sub-path's last point, and whether that reversed
// sub-path must be closed is only resolved once the walk reaches the matching
// Begin.
func Reverse(path PathSlice, b PathBuilder) {
	points := path.points
	// p is the index one past the points of the verb under consideration.
	p := len(points)
	needClose := false

	for i := len(path.verbs) - 1; i >= 0; i-- {
		v := path.verbs[i]
		switch v {
		case CloseVerb:
			needClose = true
			b.MoveTo(points[p-1])
		case EndVerb:
			needClose = false
			b.MoveTo(points[p-1])
		case BeginVerb:
			if needClose {
				needClose = false
				b.Close()
			}
		case LineToVerb:
			b.LineTo(points[p-2])
		case QuadToVerb:
			b.QuadTo(points[p-2], points[p-3])
		case CubicToVerb:
			b.CubicTo(points[p-2], points[p-3], points[p-4])
		}
		p -= v.NumPoints()
	}
}
