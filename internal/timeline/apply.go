package timeline

import (
	"slices"

	"cloud.google.com/go/civil"
)

// Apply folds a transaction of amount on day into tl and returns the new
// timeline. tl is not modified.
//
// Callers run EnsureToday first, so the most recent snapshot is today and day
// is never after it. Every snapshot dated on or after day gains amount and
// snapshots before day keep their balance. Missing days between day and the
// most recent snapshot are materialized:
//
//   - a day between two known snapshots takes the balance of the older one,
//     after amount has been added to it;
//   - a new snapshot for day starts from its older neighbour's balance, and
//     the days down to that neighbour carry the neighbour's balance;
//   - a new snapshot older than every known day starts from zero, and the
//     days up to the previous oldest snapshot carry that snapshot's balance.
func Apply(tl Timeline, amount float64, day civil.Date) Timeline {
	latest, ok := tl.Latest()
	if !ok {
		return Timeline{{Day: day, Balance: amount}}
	}

	if day.After(latest.Day) {
		tl = append(Timeline{{Day: day, Balance: latest.Balance}}, tl...)
	} else {
		tl = slices.Clone(tl)
	}

	if tl[0].Day == day {
		tl[0].Balance += amount
		return tl
	}

	return applyRetroactive(tl, amount, day)
}

// applyRetroactive handles a day strictly before the most recent snapshot.
func applyRetroactive(tl Timeline, amount float64, day civil.Date) Timeline {
	idx := tl.search(day)
	newer := tl[:idx]

	var (
		target   Snapshot
		older    Timeline
		inserted bool
		appended bool
	)
	switch {
	case idx < len(tl) && tl[idx].Day == day:
		target, older = tl[idx], tl[idx+1:]
	case idx < len(tl):
		target, older, inserted = Snapshot{Day: day, Balance: tl[idx].Balance}, tl[idx:], true
	default:
		target, appended = Snapshot{Day: day}, true
	}

	out := make(Timeline, 0, len(tl)+daysApart(newer[0].Day, day)+1)
	for i, s := range newer {
		s.Balance += amount
		if i > 0 {
			out = fillGap(out, newer[i-1].Day, s.Day, s.Balance)
		}
		out = append(out, s)
	}

	target.Balance += amount
	boundary := out[len(out)-1]
	carry := target.Balance
	if appended {
		carry = boundary.Balance
	}
	out = fillGap(out, boundary.Day, target.Day, carry)
	out = append(out, target)

	if inserted {
		out = fillGap(out, target.Day, older[0].Day, older[0].Balance)
	}
	return append(out, older...)
}
