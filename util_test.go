package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func collectEvents(s PathSlice) []PathEvent {
	var evs []PathEvent
	for ev := range s.Events() {
		evs = append(evs, ev)
	}
	return evs
}

func collectIDEvents(s PathSlice) []IDEvent {
	var evs []IDEvent
	for ev := range s.IDEvents() {
		evs = append(evs, ev)
	}
	return evs
}
