// Package timeline maintains a card's dense, per-day balance history.
//
// A Timeline is ordered most recent first and holds at most one Snapshot per
// UTC calendar day. EnsureToday anchors the timeline on the current day and
// Apply folds a dated transaction into every snapshot on or after its day,
// materializing any missing days it walks over.
package timeline

import (
	"time"

	"cloud.google.com/go/civil"
)

// DayOf returns the UTC calendar day containing t.
func DayOf(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

// Today returns the UTC calendar day of now.
func Today(now time.Time) civil.Date {
	return DayOf(now)
}

// daysApart returns how many calendar days newer is after older.
func daysApart(newer, older civil.Date) int {
	return newer.DaysSince(older)
}

// fillGap appends one snapshot per day strictly between newer and older,
// most recent first, each carrying balance.
func fillGap(tl Timeline, newer, older civil.Date, balance float64) Timeline {
	for offset := 1; offset < daysApart(newer, older); offset++ {
		tl = append(tl, Snapshot{Day: newer.AddDays(-offset), Balance: balance})
	}
	return tl
}
