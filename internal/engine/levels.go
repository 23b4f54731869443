package engine

import "github.com/limbo/journowl/pkg/entity"

type level struct {
	minEntries int
	name       string
}

var levels = []level{
	{0, "Hatchling"},
	{5, "Fledgling"},
	{15, "Night Scribbler"},
	{30, "Quill Keeper"},
	{60, "Wise Owl"},
	{100, "Great Horned Sage"},
	{200, "Legendary JournOwl"},
}

// LevelFor maps total entries onto the level ladder. Progress is the integer
// percentage between the current and the next threshold.
func LevelFor(totalEntries int) entity.LevelInfo {
	totalEntries = max(totalEntries, 0)
	idx := 0
	for i, l := range levels {
		if totalEntries >= l.minEntries {
			idx = i
		}
	}
	info := entity.LevelInfo{Level: idx + 1, LevelName: levels[idx].name}
	if idx == len(levels)-1 {
		info.ProgressToNextLevel = 100
		return info
	}
	cur, next := levels[idx].minEntries, levels[idx+1].minEntries
	info.EntriesUntilNextLevel = next - totalEntries
	info.ProgressToNextLevel = (totalEntries - cur) * 100 / (next - cur)
	return info
}
