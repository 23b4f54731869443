package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/journowl/pkg/entity"
)

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/limbo/journowl/internal/service UserServiceI,EntriesServiceI,StatsServiceI,AchievementsServiceI,LeaderboardServiceI,TournamentsServiceI,ChallengesServiceI,SubscriptionServiceI

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Timezone string `validate:"omitempty,timezone"`
}

type EntryRequest struct {
	Content     string              `validate:"required,max=50000"`
	Mood        string              `validate:"required,mood"`
	Tags        []string            `validate:"max=20,dive,max=50"`
	Attachments []AttachmentRequest `validate:"max=10,dive"`
}

type AttachmentRequest struct {
	Kind string `validate:"required,attachment_kind"`
	Ref  string `validate:"required,max=2048"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type Stats struct {
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	LastEntryDate   *string `json:"lastEntryDate"`
	DaysUntilBroken int     `json:"daysUntilBroken"`
	NextMilestone   int     `json:"nextMilestone"`
	TotalEntries    int     `json:"totalEntries"`
	TotalWords      int     `json:"totalWords"`
}

type LevelStats struct {
	entity.LevelInfo
	TotalEntries         int `json:"totalEntries"`
	TotalWords           int `json:"totalWords"`
	CurrentStreak        int `json:"currentStreak"`
	LongestStreak        int `json:"longestStreak"`
	UnlockedAchievements int `json:"unlockedAchievements"`
	TotalAchievements    int `json:"totalAchievements"`
}

type GeneratedPrompt struct {
	Prompt           string `json:"prompt"`
	Mood             string `json:"mood,omitempty"`
	PromptsRemaining int    `json:"promptsRemaining"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	// Changes the zone calendar days are cut in
	SetTimezone(ctx context.Context, id uuid.UUID, timezone string) error
}

type EntriesServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *EntryRequest) (*entity.JournalEntry, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.JournalEntry, error)
	List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.JournalEntry, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *EntryRequest) (*entity.JournalEntry, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type StatsServiceI interface {
	Stats(ctx context.Context, uid uuid.UUID) (*Stats, error)
	CheckReminder(ctx context.Context, uid uuid.UUID) (*entity.Reminder, error)
}

type AchievementsServiceI interface {
	// Whole catalog with unlock times. Persists unlocks that became true
	List(ctx context.Context, uid uuid.UUID) ([]entity.AchievementStatus, error)
	LevelStats(ctx context.Context, uid uuid.UUID) (*LevelStats, error)
}

type LeaderboardServiceI interface {
	Board(ctx context.Context, board string, uid uuid.UUID, limit int) (*entity.Leaderboard, error)
}

type TournamentsServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Tournament, error)
	Join(ctx context.Context, id, uid uuid.UUID) error
	Leaderboard(ctx context.Context, id, uid uuid.UUID, limit int) (*entity.Leaderboard, error)
}

type ChallengesServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	Complete(ctx context.Context, id, uid uuid.UUID) error
}

type SubscriptionServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.SubscriptionState, error)
	TopUp(ctx context.Context, uid uuid.UUID, n int) (*entity.SubscriptionState, error)
	ChangeTier(ctx context.Context, uid uuid.UUID, tier string) (*entity.SubscriptionState, error)
	GeneratePrompt(ctx context.Context, uid uuid.UUID, mood string) (*GeneratedPrompt, error)
}
