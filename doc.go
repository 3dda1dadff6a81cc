// Package path provides a compact data structure for 2D vector paths, a
// builder for constructing them, and iterators for replaying them as geometric
// events.
//
// # Representation
//
// A [Path] stores two parallel arrays: a flat buffer of points and a stream of
// zero-payload operation tags ([Verb]). Each verb consumes a fixed number of
// points when the stream is replayed, so the points array stays densely packed
// and can be handed to numeric consumers in bulk (see [Path.Points]). This is
// deliberately not an array of per-segment records; consumers rely on the flat
// coordinate layout.
//
// Paths are created with a [Builder] and are immutable afterwards. A frozen
// path may be shared freely across goroutines for reading; none of the read
// operations mutate the underlying arrays.
//
// # Building paths
//
// [Builder] normalizes arbitrary call sequences into a valid verb stream: a
// LineTo with no preceding MoveTo re-opens a sub-path at the last known start,
// a MoveTo following an unterminated sub-path first terminates it, and Close
// snaps near-coincident end points onto the sub-path's start to suppress
// spurious hairline closing edges.
//
// Adapters compose over the [PathBuilder] contract: [SVGBuilder] adds
// SVG-style relative and smooth commands, and [FlatteningBuilder] approximates
// curves with line segments within a tolerance.
//
// # Iterating paths
//
// [Iter] replays a path as a sequence of [PathEvent] values carrying point
// coordinates. [IDIter] replays the same stream carrying point indices
// ([EndpointID], [CtrlPointID]) instead of values, for consumers that keep
// side tables keyed by point identity. The two iterators stay in lock-step
// over the same path. [PathSlice.Events] and [PathSlice.IDEvents] expose the
// same traversals as range-able sequences.
//
// [Reverse] replays a path backward into any [PathBuilder], producing an
// equivalent path traversed in the opposite direction.
package path
