package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/journowl/pkg/entity"
)

// Progress holds the cumulative numbers achievement predicates look at.
type Progress struct {
	TotalEntries        int
	TotalWords          int
	LongestEntryWords   int
	CurrentStreak       int
	LongestStreak       int
	ActiveDaysLast30    int
	DistinctMoods       int
	TournamentsJoined   int
	ChallengesCompleted int
}

type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    entity.AchievementCategory
	Unlocked    func(p Progress) bool
}

var Catalog = []AchievementDef{
	{ID: "first-entry", Title: "First Hoot", Description: "Write your first journal entry", Icon: "🥚",
		Category: entity.CategoryMilestone, Unlocked: func(p Progress) bool { return p.TotalEntries >= 1 }},
	{ID: "entries-10", Title: "Ten Tales", Description: "Write 10 journal entries", Icon: "📔",
		Category: entity.CategoryMilestone, Unlocked: func(p Progress) bool { return p.TotalEntries >= 10 }},
	{ID: "entries-50", Title: "Half Century", Description: "Write 50 journal entries", Icon: "📚",
		Category: entity.CategoryMilestone, Unlocked: func(p Progress) bool { return p.TotalEntries >= 50 }},
	{ID: "entries-100", Title: "Century Scribe", Description: "Write 100 journal entries", Icon: "🏛️",
		Category: entity.CategoryMilestone, Unlocked: func(p Progress) bool { return p.TotalEntries >= 100 }},

	{ID: "streak-3", Title: "Warming Up", Description: "Journal 3 days in a row", Icon: "🔥",
		Category: entity.CategoryStreak, Unlocked: func(p Progress) bool { return p.LongestStreak >= 3 }},
	{ID: "streak-7", Title: "Week Owl", Description: "Journal 7 days in a row", Icon: "🦉",
		Category: entity.CategoryStreak, Unlocked: func(p Progress) bool { return p.LongestStreak >= 7 }},
	{ID: "streak-30", Title: "Moon Cycle", Description: "Journal 30 days in a row", Icon: "🌕",
		Category: entity.CategoryStreak, Unlocked: func(p Progress) bool { return p.LongestStreak >= 30 }},
	{ID: "streak-100", Title: "Unbreakable", Description: "Journal 100 days in a row", Icon: "💎",
		Category: entity.CategoryStreak, Unlocked: func(p Progress) bool { return p.LongestStreak >= 100 }},

	{ID: "words-1000", Title: "Wordsmith", Description: "Write 1,000 words in total", Icon: "✍️",
		Category: entity.CategoryWriting, Unlocked: func(p Progress) bool { return p.TotalWords >= 1000 }},
	{ID: "words-10000", Title: "Novelist", Description: "Write 10,000 words in total", Icon: "📖",
		Category: entity.CategoryWriting, Unlocked: func(p Progress) bool { return p.TotalWords >= 10000 }},
	{ID: "long-entry", Title: "Deep Dive", Description: "Write a single entry of 500 words or more", Icon: "🌊",
		Category: entity.CategoryWriting, Unlocked: func(p Progress) bool { return p.LongestEntryWords >= 500 }},
	{ID: "mood-explorer", Title: "Mood Explorer", Description: "Log 5 different moods", Icon: "🎭",
		Category: entity.CategoryWriting, Unlocked: func(p Progress) bool { return p.DistinctMoods >= 5 }},

	{ID: "consistent-20", Title: "Creature of Habit", Description: "Journal on 20 of the last 30 days", Icon: "📅",
		Category: entity.CategoryConsistency, Unlocked: func(p Progress) bool { return p.ActiveDaysLast30 >= 20 }},
	{ID: "consistent-30", Title: "Every Single Day", Description: "Journal on all of the last 30 days", Icon: "🗓️",
		Category: entity.CategoryConsistency, Unlocked: func(p Progress) bool { return p.ActiveDaysLast30 >= 30 }},

	{ID: "tournament-rookie", Title: "Into the Arena", Description: "Join your first tournament", Icon: "🏟️",
		Category: entity.CategorySocial, Unlocked: func(p Progress) bool { return p.TournamentsJoined >= 1 }},
	{ID: "challenger", Title: "Challenger", Description: "Complete 5 challenges", Icon: "🏅",
		Category: entity.CategorySocial, Unlocked: func(p Progress) bool { return p.ChallengesCompleted >= 5 }},
}

// BuildProgress derives the ledger part of Progress from a user's activity.
func BuildProgress(activity []entity.EntryActivity, now time.Time, loc *time.Location) Progress {
	p := Progress{TotalEntries: len(activity)}
	dates := make([]time.Time, 0, len(activity))
	moods := make(map[entity.Mood]struct{})
	monthAgo := CalendarDay(now, loc).Add(-29 * day)
	recent := make(map[time.Time]struct{})
	for _, a := range activity {
		p.TotalWords += a.WordCount
		p.LongestEntryWords = max(p.LongestEntryWords, a.WordCount)
		if a.Mood != "" {
			moods[a.Mood] = struct{}{}
		}
		dates = append(dates, a.CreatedAt)
		if d := CalendarDay(a.CreatedAt, loc); !d.Before(monthAgo) && !a.CreatedAt.After(now) {
			recent[d] = struct{}{}
		}
	}
	streak := CalculateStreak(dates, now, loc)
	p.CurrentStreak = streak.CurrentStreak
	p.LongestStreak = streak.LongestStreak
	p.ActiveDaysLast30 = len(recent)
	p.DistinctMoods = len(moods)
	return p
}

// EvaluateAchievements merges stored unlocks with the predicates that hold now.
// Stored unlocks are kept with their original time whatever the predicate says.
func EvaluateAchievements(uid uuid.UUID, unlocked []entity.UserAchievement, p Progress, now time.Time) ([]entity.AchievementStatus, []entity.UserAchievement) {
	have := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		have[ua.AchievementID] = ua.UnlockedAt
	}
	statuses := make([]entity.AchievementStatus, 0, len(Catalog))
	var fresh []entity.UserAchievement
	for _, def := range Catalog {
		st := entity.AchievementStatus{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
		}
		if at, ok := have[def.ID]; ok {
			st.UnlockedAt = &at
		} else if def.Unlocked(p) {
			at := now
			st.UnlockedAt = &at
			fresh = append(fresh, entity.UserAchievement{UserID: uid, AchievementID: def.ID, UnlockedAt: now})
		}
		statuses = append(statuses, st)
	}
	return statuses, fresh
}
