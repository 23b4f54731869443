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

const (
	BoardWeekly  = "weekly"
	BoardAllTime = "all-time"
	BoardStreaks = "streaks"
	BoardWords   = "words"

	DefaultBoardLimit = 10
	MaxBoardLimit     = 100
)

var Boards = []string{BoardWeekly, BoardAllTime, BoardStreaks, BoardWords}

type boardDef struct {
	metric entity.Metric
	window func(now time.Time) engine.Window
}

var boardDefs = map[string]boardDef{
	BoardWeekly:  {metric: entity.MetricEntries, window: engine.WeeklyWindow},
	BoardAllTime: {metric: entity.MetricEntries, window: engine.AllTimeWindow},
	BoardStreaks: {metric: entity.MetricStreak, window: engine.AllTimeWindow},
	BoardWords:   {metric: entity.MetricWords, window: engine.AllTimeWindow},
}

// ClampLimit applies the default and the ceiling of leaderboard page sizes.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultBoardLimit
	case limit > MaxBoardLimit:
		return MaxBoardLimit
	}
	return limit
}

type LeaderboardService struct {
	clock
	repo  repository.EntriesRepositoryI
	cache cache.Store
	ttl   time.Duration
}

func NewLeaderboardService(entriesRepo repository.EntriesRepositoryI, store cache.Store, ttl time.Duration, opts ...Option) *LeaderboardService {
	if entriesRepo == nil {
		log.Fatal("on leaderboard service provided nil repo")
	}
	return &LeaderboardService{
		clock: newClock(opts),
		repo:  entriesRepo,
		cache: orNop(store),
		ttl:   ttl,
	}
}

func (ls *LeaderboardService) Board(ctx context.Context, board string, uid uuid.UUID, limit int) (*entity.Leaderboard, error) {
	def, ok := boardDefs[board]
	if !ok {
		return nil, errorvalues.ErrUnknownBoard
	}
	ranked, err := cache.GetOrLoad(ctx, ls.cache, cache.LeaderboardKey(board), ls.ttl, func() ([]*entity.LeaderboardEntry, error) {
		now := ls.now()
		window := def.window(now)
		activity, err := ls.repo.ListActivity(ctx, window.From)
		if err != nil {
			return nil, errors.New("entries repository error: " + err.Error())
		}
		return engine.Rank(engine.Aggregate(activity, def.metric, window)), nil
	})
	if err != nil {
		return nil, err
	}
	return engine.Snapshot(board, ranked, uid, ClampLimit(limit)), nil
}
