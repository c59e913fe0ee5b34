package timeline

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// ErrUnordered indicates a timeline that is not strictly descending by day.
var ErrUnordered = errors.New("timeline is not strictly descending by day")

// Snapshot is the balance of a card as of the end of Day.
type Snapshot struct {
	Day     civil.Date `json:"date"`
	Balance float64    `json:"balance"`
}

// Timeline is a card's balance history, most recent day first.
type Timeline []Snapshot

// Latest returns the most recent snapshot, if any.
func (tl Timeline) Latest() (Snapshot, bool) {
	if len(tl) == 0 {
		return Snapshot{}, false
	}
	return tl[0], true
}

// Since returns the snapshots dated on or after day.
func (tl Timeline) Since(day civil.Date) Timeline {
	return tl[:tl.search(day.AddDays(-1))]
}

// Between returns the snapshots dated within [from, to]. A nil bound is open.
func (tl Timeline) Between(from, to *civil.Date) Timeline {
	start, end := 0, len(tl)
	if to != nil {
		start = tl.search(*to)
	}
	if from != nil {
		end = tl.search(from.AddDays(-1))
	}
	if start >= end {
		return Timeline{}
	}
	return tl[start:end]
}

// search returns the index of the first snapshot dated on or before day.
func (tl Timeline) search(day civil.Date) int {
	lo, hi := 0, len(tl)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if tl[mid].Day.After(day) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Check reports whether tl is strictly descending by day.
func Check(tl Timeline) error {
	for i := 1; i < len(tl); i++ {
		if !tl[i-1].Day.After(tl[i].Day) {
			return fmt.Errorf("%w: %s precedes %s at index %d", ErrUnordered, tl[i-1].Day, tl[i].Day, i)
		}
	}
	return nil
}

// Diff returns the snapshots of after that are missing from before or carry a
// different balance. Both timelines must be strictly descending.
func Diff(before, after Timeline) Timeline {
	var changed Timeline
	i := 0
	for _, s := range after {
		for i < len(before) && before[i].Day.After(s.Day) {
			i++
		}
		if i < len(before) && before[i].Day == s.Day && before[i].Balance == s.Balance {
			continue
		}
		changed = append(changed, s)
	}
	return changed
}
