package engine

import (
	"fmt"
	"time"
)

// ExpandRange expands an anchor into count consecutive calendar-day instants,
// anchor first, in chronological order. Each step preserves the wall clock in
// the anchor's location, so runs crossing a DST transition stay on the same
// local time. count must be at least 1; a count of 1 yields the anchor alone.
func ExpandRange(anchor time.Time, count int) ([]time.Time, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRangeCount, count)
	}

	instants := make([]time.Time, count)
	for i := range instants {
		instants[i] = anchor.AddDate(0, 0, i)
	}
	return instants, nil
}
