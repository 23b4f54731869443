package engine

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/journowl/pkg/entity"
)

var podiumBadges = []string{"gold", "silver", "bronze"}

func compareUUID(a, b uuid.UUID) int {
	return strings.Compare(a.String(), b.String())
}

// compareScores orders by score descending, then by who reached it first,
// then by user id.
func compareScores(a, b Score) int {
	if a.Value != b.Value {
		if a.Value > b.Value {
			return -1
		}
		return 1
	}
	if c := a.ReachedAt.Compare(b.ReachedAt); c != 0 {
		return c
	}
	return compareUUID(a.UserID, b.UserID)
}

// Rank sorts scores into a leaderboard with contiguous ranks starting at 1.
// The input slice is not modified.
func Rank(scores []Score) []*entity.LeaderboardEntry {
	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, compareScores)
	result := make([]*entity.LeaderboardEntry, 0, len(sorted))
	for i, s := range sorted {
		e := &entity.LeaderboardEntry{
			UserID:   s.UserID,
			Username: s.Username,
			Score:    s.Value,
			Rank:     i + 1,
		}
		if i < len(podiumBadges) {
			e.Badge = podiumBadges[i]
		}
		result = append(result, e)
	}
	return result
}

// Snapshot cuts a ranked list down to limit entries and locates uid in it.
func Snapshot(board string, ranked []*entity.LeaderboardEntry, uid uuid.UUID, limit int) *entity.Leaderboard {
	lb := &entity.Leaderboard{
		Board:      board,
		Entries:    ranked,
		TotalUsers: len(ranked),
	}
	if limit > 0 && len(ranked) > limit {
		lb.Entries = ranked[:limit]
	}
	for _, e := range ranked {
		if e.UserID == uid {
			lb.UserPosition = e
			break
		}
	}
	return lb
}
