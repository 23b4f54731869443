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

type AchievementsService struct {
	clock
	entriesRepo     repository.EntriesRepositoryI
	repo            repository.AchievementsRepositoryI
	tournamentsRepo repository.TournamentsRepositoryI
	challengesRepo  repository.ChallengesRepositoryI
	cache           cache.Store
	ttl             time.Duration
}

type AchievementsDeps struct {
	Entries      repository.EntriesRepositoryI
	Achievements repository.AchievementsRepositoryI
	Tournaments  repository.TournamentsRepositoryI
	Challenges   repository.ChallengesRepositoryI
}

func NewAchievementsService(deps AchievementsDeps, store cache.Store, ttl time.Duration, opts ...Option) *AchievementsService {
	if deps.Entries == nil || deps.Achievements == nil || deps.Tournaments == nil || deps.Challenges == nil {
		log.Fatal("on achievements service provided nil repos")
	}
	return &AchievementsService{
		clock:           newClock(opts),
		entriesRepo:     deps.Entries,
		repo:            deps.Achievements,
		tournamentsRepo: deps.Tournaments,
		challengesRepo:  deps.Challenges,
		cache:           orNop(store),
		ttl:             ttl,
	}
}

func (as *AchievementsService) progress(ctx context.Context, uid uuid.UUID, now time.Time) (engine.Progress, error) {
	activity, err := as.entriesRepo.ListUserActivity(ctx, uid)
	if err != nil {
		return engine.Progress{}, errors.New("entries repository error: " + err.Error())
	}
	p := engine.BuildProgress(activity, now, userLocation(activity))
	joined, err := as.tournamentsRepo.ListJoinedIDs(ctx, uid)
	if err != nil {
		return engine.Progress{}, errors.New("tournaments repository error: " + err.Error())
	}
	p.TournamentsJoined = len(joined)
	p.ChallengesCompleted, err = as.challengesRepo.CountCompleted(ctx, uid)
	if err != nil {
		return engine.Progress{}, errors.New("challenges repository error: " + err.Error())
	}
	return p, nil
}

func (as *AchievementsService) List(ctx context.Context, uid uuid.UUID) ([]entity.AchievementStatus, error) {
	return cache.GetOrLoad(ctx, as.cache, cache.AchievementsKey(uid), as.ttl, func() ([]entity.AchievementStatus, error) {
		now := as.now()
		p, err := as.progress(ctx, uid, now)
		if err != nil {
			return nil, err
		}
		return as.evaluate(ctx, uid, p, now)
	})
}

// evaluate checks p against the catalog and records newly reached achievements.
func (as *AchievementsService) evaluate(ctx context.Context, uid uuid.UUID, p engine.Progress, now time.Time) ([]entity.AchievementStatus, error) {
	unlocked, err := as.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	statuses, fresh := engine.EvaluateAchievements(uid, unlocked, p, now)
	for _, ua := range fresh {
		if err := as.repo.Unlock(ctx, ua); err != nil {
			return nil, errors.New("achievements repository error: " + err.Error())
		}
	}
	return statuses, nil
}

func (as *AchievementsService) LevelStats(ctx context.Context, uid uuid.UUID) (*LevelStats, error) {
	now := as.now()
	p, err := as.progress(ctx, uid, now)
	if err != nil {
		return nil, err
	}
	statuses, err := cache.GetOrLoad(ctx, as.cache, cache.AchievementsKey(uid), as.ttl, func() ([]entity.AchievementStatus, error) {
		return as.evaluate(ctx, uid, p, now)
	})
	if err != nil {
		return nil, err
	}
	stats := &LevelStats{
		LevelInfo:         engine.LevelFor(p.TotalEntries),
		TotalEntries:      p.TotalEntries,
		TotalWords:        p.TotalWords,
		CurrentStreak:     p.CurrentStreak,
		LongestStreak:     p.LongestStreak,
		TotalAchievements: len(statuses),
	}
	for _, st := range statuses {
		if st.UnlockedAt != nil {
			stats.UnlockedAchievements++
		}
	}
	return stats, nil
}
