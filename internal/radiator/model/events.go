package model

import "sort"

// SortEvents orders events by creation time ascending. The sort is stable
// so events sharing a timestamp keep their input order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
}

// CompressEvents collapses adjacent runs of events that share author and
// state into single entries with a count. Events must already be sorted;
// only adjacency matters, so an interleaved event from another author
// breaks the run.
func CompressEvents(events []Event) []CompressedEvent {
	if len(events) == 0 {
		return nil
	}

	compressed := make([]CompressedEvent, 0, len(events))
	for _, e := range events {
		if n := len(compressed); n > 0 {
			last := &compressed[n-1]
			if last.Author == e.Author && last.State == e.State {
				// The run keeps the timestamp of its first event.
				last.Count++
				continue
			}
		}
		compressed = append(compressed, CompressedEvent{Event: e, Count: 1})
	}
	return compressed
}
