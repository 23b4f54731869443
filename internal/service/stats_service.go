package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/cache"
	"github.com/limbo/journowl/internal/engine"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
)

const dateLayout = "2006-01-02"

type StatsService struct {
	clock
	repo  repository.EntriesRepositoryI
	cache cache.Store
	ttl   time.Duration
}

func NewStatsService(entriesRepo repository.EntriesRepositoryI, store cache.Store, ttl time.Duration, opts ...Option) *StatsService {
	if entriesRepo == nil {
		log.Fatal("on stats service provided nil repo")
	}
	return &StatsService{
		clock: newClock(opts),
		repo:  entriesRepo,
		cache: orNop(store),
		ttl:   ttl,
	}
}

// userLocation takes the zone from the joined user row. Without entries the zone is irrelevant.
func userLocation(activity []entity.EntryActivity) *time.Location {
	if len(activity) == 0 {
		return time.UTC
	}
	return engine.Location(activity[0].Timezone)
}

func (ss *StatsService) streak(ctx context.Context, uid uuid.UUID) ([]entity.EntryActivity, entity.StreakState, *time.Location, error) {
	activity, err := ss.repo.ListUserActivity(ctx, uid)
	if err != nil {
		return nil, entity.StreakState{}, nil, errors.New("entries repository error: " + err.Error())
	}
	loc := userLocation(activity)
	dates := make([]time.Time, 0, len(activity))
	for _, a := range activity {
		dates = append(dates, a.CreatedAt)
	}
	return activity, engine.CalculateStreak(dates, ss.now(), loc), loc, nil
}

func (ss *StatsService) Stats(ctx context.Context, uid uuid.UUID) (*Stats, error) {
	return cache.GetOrLoad(ctx, ss.cache, cache.StatsKey(uid), ss.ttl, func() (*Stats, error) {
		activity, state, _, err := ss.streak(ctx, uid)
		if err != nil {
			return nil, err
		}
		stats := &Stats{
			CurrentStreak:   state.CurrentStreak,
			LongestStreak:   state.LongestStreak,
			DaysUntilBroken: state.DaysUntilBroken,
			NextMilestone:   state.NextMilestone,
			TotalEntries:    len(activity),
		}
		for _, a := range activity {
			stats.TotalWords += a.WordCount
		}
		if state.LastEntryDate != nil {
			date := state.LastEntryDate.Format(dateLayout)
			stats.LastEntryDate = &date
		}
		return stats, nil
	})
}

// CheckReminder is recomputed on every poll, it depends on the wall clock.
func (ss *StatsService) CheckReminder(ctx context.Context, uid uuid.UUID) (*entity.Reminder, error) {
	_, state, loc, err := ss.streak(ctx, uid)
	if err != nil {
		return nil, err
	}
	reminder := engine.Remind(state, ss.now(), loc)
	return &reminder, nil
}
