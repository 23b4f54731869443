package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/cache"
	"github.com/limbo/journowl/internal/engine"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
)

type TournamentsService struct {
	clock
	repo        repository.TournamentsRepositoryI
	entriesRepo repository.EntriesRepositoryI
	cache       cache.Store
	ttl         time.Duration
}

func NewTournamentsService(tournamentsRepo repository.TournamentsRepositoryI, entriesRepo repository.EntriesRepositoryI, store cache.Store, ttl time.Duration, opts ...Option) *TournamentsService {
	if tournamentsRepo == nil || entriesRepo == nil {
		log.Fatal("on tournaments service provided nil repos")
	}
	return &TournamentsService{
		clock:       newClock(opts),
		repo:        tournamentsRepo,
		entriesRepo: entriesRepo,
		cache:       orNop(store),
		ttl:         ttl,
	}
}

func (ts *TournamentsService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Tournament, error) {
	tournaments, err := ts.repo.ListActive(ctx, ts.now(), uid)
	if err != nil {
		return nil, errors.New("tournaments repository error: " + err.Error())
	}
	return tournaments, nil
}

func (ts *TournamentsService) get(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	tournament, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTournamentNotFound) {
			return nil, err
		}
		return nil, errors.New("tournaments repository error: " + err.Error())
	}
	return tournament, nil
}

func (ts *TournamentsService) Join(ctx context.Context, id, uid uuid.UUID) error {
	tournament, err := ts.get(ctx, id)
	if err != nil {
		return err
	}
	if !ts.now().Before(tournament.EndsAt) {
		return errorvalues.ErrTournamentEnded
	}
	err = ts.repo.Join(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyJoined), errors.Is(err, errorvalues.ErrTournamentNotFound):
			return err
		}
		return errors.New("tournaments repository error: " + err.Error())
	}
	cache.Invalidate(ctx, ts.cache, cache.TournamentKey(id), cache.AchievementsKey(uid))
	return nil
}

func (ts *TournamentsService) Leaderboard(ctx context.Context, id, uid uuid.UUID, limit int) (*entity.Leaderboard, error) {
	tournament, err := ts.get(ctx, id)
	if err != nil {
		return nil, err
	}
	ranked, err := cache.GetOrLoad(ctx, ts.cache, cache.TournamentKey(id), ts.ttl, func() ([]*entity.LeaderboardEntry, error) {
		now := ts.now()
		if now.Before(tournament.StartsAt) {
			return []*entity.LeaderboardEntry{}, nil
		}
		window := engine.BoundedWindow(tournament.StartsAt, tournament.EndsAt, now)
		activity, err := ts.entriesRepo.ListTournamentActivity(ctx, id, window.From, window.To)
		if err != nil {
			return nil, errors.New("entries repository error: " + err.Error())
		}
		return engine.Rank(engine.Aggregate(activity, tournament.Metric, window)), nil
	})
	if err != nil {
		return nil, err
	}
	return engine.Snapshot(tournament.Name, ranked, uid, ClampLimit(limit)), nil
}

type ChallengesService struct {
	clock
	repo        repository.ChallengesRepositoryI
	entriesRepo repository.EntriesRepositoryI
	cache       cache.Store
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, entriesRepo repository.EntriesRepositoryI, store cache.Store, opts ...Option) *ChallengesService {
	if challengesRepo == nil || entriesRepo == nil {
		log.Fatal("on challenges service provided nil repos")
	}
	return &ChallengesService{
		clock:       newClock(opts),
		repo:        challengesRepo,
		entriesRepo: entriesRepo,
		cache:       orNop(store),
	}
}

func challengeProgress(c *entity.Challenge, activity []entity.EntryActivity, now time.Time) int {
	return engine.ScoreOf(activity, c.Metric, engine.BoundedWindow(c.StartsAt, c.EndsAt, now))
}

func (cs *ChallengesService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	now := cs.now()
	challenges, err := cs.repo.ListActive(ctx, now, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if len(challenges) == 0 {
		return challenges, nil
	}
	activity, err := cs.entriesRepo.ListUserActivity(ctx, uid)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	for _, c := range challenges {
		c.Progress = challengeProgress(c, activity, now)
	}
	return challenges, nil
}

func (cs *ChallengesService) Complete(ctx context.Context, id, uid uuid.UUID) error {
	challenge, err := cs.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	if challenge.CompletedAt != nil {
		return errorvalues.ErrChallengeCompleted
	}
	now := cs.now()
	if now.Before(challenge.StartsAt) || !now.Before(challenge.EndsAt) {
		return errorvalues.ErrChallengeNotActive
	}
	activity, err := cs.entriesRepo.ListUserActivity(ctx, uid)
	if err != nil {
		return errors.New("entries repository error: " + err.Error())
	}
	if challengeProgress(challenge, activity, now) < challenge.Target {
		return errorvalues.ErrChallengeNotMet
	}
	err = cs.repo.Complete(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeCompleted), errors.Is(err, errorvalues.ErrChallengeNotFound):
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	cache.Invalidate(ctx, cs.cache, cache.AchievementsKey(uid))
	return nil
}
