package engine

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/journowl/pkg/entity"
)

// Window bounds the entries a score is computed over. A zero From is unbounded.
type Window struct {
	From time.Time
	To   time.Time
}

func WeeklyWindow(now time.Time) Window {
	return Window{From: now.Add(-7 * day), To: now}
}

func AllTimeWindow(now time.Time) Window {
	return Window{To: now}
}

// BoundedWindow clamps the end of [from, to] to now.
func BoundedWindow(from, to, now time.Time) Window {
	if now.Before(to) {
		to = now
	}
	return Window{From: from, To: to}
}

func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	return !t.After(w.To)
}

type Score struct {
	UserID   uuid.UUID
	Username string
	Value    int
	// ReachedAt is when the last counted entry was written.
	ReachedAt time.Time
}

type userBucket struct {
	score    Score
	timezone string
	dates    []time.Time
}

// Aggregate produces one score per user with at least one entry in the window.
// For the streak metric users whose streak is 0 at the window end are left out.
func Aggregate(activity []entity.EntryActivity, metric entity.Metric, window Window) []Score {
	buckets := make(map[uuid.UUID]*userBucket)
	for _, a := range activity {
		if !window.Contains(a.CreatedAt) {
			continue
		}
		b, ok := buckets[a.UserID]
		if !ok {
			b = &userBucket{
				score:    Score{UserID: a.UserID, Username: a.Username},
				timezone: a.Timezone,
			}
			buckets[a.UserID] = b
		}
		switch metric {
		case entity.MetricEntries:
			b.score.Value++
		case entity.MetricWords:
			b.score.Value += a.WordCount
		case entity.MetricStreak:
			b.dates = append(b.dates, a.CreatedAt)
		}
		if a.CreatedAt.After(b.score.ReachedAt) {
			b.score.ReachedAt = a.CreatedAt
		}
	}

	scores := make([]Score, 0, len(buckets))
	for _, b := range buckets {
		if metric == entity.MetricStreak {
			b.score.Value = CalculateStreak(b.dates, window.To, Location(b.timezone)).CurrentStreak
			if b.score.Value == 0 {
				continue
			}
		}
		scores = append(scores, b.score)
	}
	slices.SortFunc(scores, func(a, b Score) int {
		return compareUUID(a.UserID, b.UserID)
	})
	return scores
}

// ScoreOf aggregates a single user's activity; 0 when nothing counts.
func ScoreOf(activity []entity.EntryActivity, metric entity.Metric, window Window) int {
	scores := Aggregate(activity, metric, window)
	if len(scores) == 0 {
		return 0
	}
	return scores[0].Value
}
