// Package cache keeps derived read models (leaderboards, stats, achievement
// lists) for a short time. It is an optimisation only: every value can be
// recomputed from the entry ledger, so callers log cache failures and go on.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/cache_mocks.go -package=mocks github.com/limbo/journowl/internal/cache Store

type Store interface {
	// Decodes the value under key into dst. Reports false on a miss
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys []string) error
}

func LeaderboardKey(board string) string {
	return "leaderboard:" + board
}

func StatsKey(uid uuid.UUID) string {
	return "stats:" + uid.String()
}

func AchievementsKey(uid uuid.UUID) string {
	return "achievements:" + uid.String()
}

func TournamentKey(id uuid.UUID) string {
	return "tournament:" + id.String() + ":leaderboard"
}

// Nop never stores anything. Used when no REDIS_URL is configured.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Nop) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (Nop) Delete(context.Context, []string) error {
	return nil
}
