package timeline

import "time"

// EnsureToday returns tl with a snapshot for the UTC day of now at the front.
//
// An empty timeline starts at zero. Otherwise the most recent balance is
// carried forward, since nothing has been recorded yet today. When today is
// already present tl is returned as is.
func EnsureToday(tl Timeline, now time.Time) Timeline {
	today := Today(now)

	latest, ok := tl.Latest()
	if !ok {
		return Timeline{{Day: today, Balance: 0}}
	}
	if latest.Day == today {
		return tl
	}

	out := make(Timeline, 0, len(tl)+1)
	out = append(out, Snapshot{Day: today, Balance: latest.Balance})
	return append(out, tl...)
}
