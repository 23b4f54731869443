package engine

import (
	"fmt"
	"time"

	"github.com/limbo/journowl/pkg/entity"
)

// Remind picks the reminder to surface. First matching rule wins.
func Remind(state entity.StreakState, now time.Time, loc *time.Location) entity.Reminder {
	if state.LastEntryDate == nil {
		msg := "Start your journaling journey today! Write your very first entry."
		return entity.Reminder{Type: entity.ReminderFirstEntry, Message: &msg}
	}
	daysSince := DaysBetween(*state.LastEntryDate, CalendarDay(now, loc))
	switch {
	case daysSince >= 2:
		msg := fmt.Sprintf("We miss you! It's been %d days since your last entry.", daysSince)
		return entity.Reminder{Type: entity.ReminderMissedDays, Message: &msg, DaysSince: &daysSince}
	case state.CurrentStreak > 0 && daysSince > 0:
		streak := state.CurrentStreak
		msg := fmt.Sprintf("Keep your %d-day streak alive! Write today's entry before midnight.", streak)
		return entity.Reminder{Type: entity.ReminderMaintainStreak, Message: &msg, DaysSince: &daysSince, Streak: &streak}
	}
	return entity.Reminder{Type: entity.ReminderNone}
}
