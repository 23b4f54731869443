// Package engine derives streaks, scores, rankings, reminders, achievements
// and levels from the journal entry ledger. Everything here is pure: callers
// load the data and pass a reference time.
package engine

import (
	"slices"
	"time"

	"github.com/limbo/journowl/pkg/entity"
)

const day = 24 * time.Hour

var streakMilestones = []int{3, 7, 14, 30, 60, 100, 180, 365}

// Location resolves an IANA zone name, falling back to UTC for empty or unknown names.
func Location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CalendarDay returns the calendar date of t as seen in loc, encoded as UTC midnight.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from one CalendarDay value to another.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

// NextMilestone is the first streak milestone above current, or 0 when all are passed.
func NextMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return 0
}

// distinctDays collapses timestamps to calendar days, newest first. Days after
// today are dropped.
func distinctDays(dates []time.Time, now time.Time, loc *time.Location) []time.Time {
	today := CalendarDay(now, loc)
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, t := range dates {
		d := CalendarDay(t, loc)
		if d.After(today) {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int {
		return b.Compare(a)
	})
	return days
}

// CalculateStreak walks the distinct entry days newest first. The leading run
// counts as the current streak only if it ends today or yesterday.
func CalculateStreak(dates []time.Time, now time.Time, loc *time.Location) entity.StreakState {
	state := entity.StreakState{NextMilestone: NextMilestone(0)}
	days := distinctDays(dates, now, loc)
	if len(days) == 0 {
		return state
	}
	last := days[0]
	state.LastEntryDate = &last

	run, longest, leading := 1, 1, 0
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			if leading == 0 {
				leading = run
			}
			run = 1
		}
		longest = max(longest, run)
	}
	if leading == 0 {
		leading = run
	}

	gap := DaysBetween(last, CalendarDay(now, loc))
	if gap <= 1 {
		state.CurrentStreak = leading
	}
	if gap == 0 {
		state.DaysUntilBroken = 1
	}
	state.LongestStreak = longest
	state.NextMilestone = NextMilestone(state.CurrentStreak)
	return state
}
