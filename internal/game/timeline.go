// Package game is the match replay engine: it rebuilds a live-game snapshot
// from a finished match's timeline, advancing a virtual clock and applying
// each historical event exactly once as time passes it.
package game

import (
	"sort"

	"liveclient-replay/internal/riot"
)

// Flatten turns per-frame event bags into one globally ordered sequence.
// Ordering is by timestamp ascending; ties keep their original frame and
// emission order.
func Flatten(frames []riot.Frame) []riot.TimelineEvent {
	var events []riot.TimelineEvent
	for _, frame := range frames {
		for _, raw := range frame.Events {
			events = append(events, riot.Decode(raw))
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp() < events[j].Timestamp()
	})
	return events
}
