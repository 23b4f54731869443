package entity

import (
	"time"

	"github.com/google/uuid"
)

type AchievementCategory string

const (
	CategoryMilestone   AchievementCategory = "milestone"
	CategoryStreak      AchievementCategory = "streak"
	CategorySocial      AchievementCategory = "social"
	CategoryWriting     AchievementCategory = "writing"
	CategoryConsistency AchievementCategory = "consistency"
)

type UserAchievement struct {
	UserID        uuid.UUID
	AchievementID string
	UnlockedAt    time.Time
}

type AchievementStatus struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	UnlockedAt  *time.Time          `json:"unlockedAt"`
}

type LevelInfo struct {
	Level                 int    `json:"level"`
	LevelName             string `json:"levelName"`
	EntriesUntilNextLevel int    `json:"entriesUntilNextLevel"`
	ProgressToNextLevel   int    `json:"progressToNextLevel"`
}

type ReminderType string

const (
	ReminderNone           ReminderType = "none"
	ReminderFirstEntry     ReminderType = "first_entry"
	ReminderMissedDays     ReminderType = "missed_days"
	ReminderMaintainStreak ReminderType = "maintain_streak"
)

type Reminder struct {
	Type      ReminderType `json:"type"`
	Message   *string      `json:"reminder"`
	DaysSince *int         `json:"daysSince,omitempty"`
	Streak    *int         `json:"streak,omitempty"`
}

type Metric string

const (
	MetricEntries Metric = "entries"
	MetricWords   Metric = "words"
	MetricStreak  Metric = "streak"
)

func (m Metric) Valid() bool {
	return m == MetricEntries || m == MetricWords || m == MetricStreak
}

type Tournament struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Metric       Metric    `json:"metric"`
	Prize        string    `json:"prize"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	Participants int       `json:"participants"`
	Joined       bool      `json:"joined"`
}

type Challenge struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Metric      Metric     `json:"metric"`
	Target      int        `json:"target"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completedAt"`
}

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

type SubscriptionState struct {
	UserID           uuid.UUID `json:"userId"`
	Tier             Tier      `json:"tier"`
	PromptsRemaining int       `json:"promptsRemaining"`
	PeriodStart      time.Time `json:"periodStart"`
	StorageUsed      int64     `json:"storageUsed"`
	StorageLimit     int64     `json:"storageLimit"`
}

type SupportSender string

const (
	SenderUser  SupportSender = "user"
	SenderAgent SupportSender = "agent"
)

type SupportMessage struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"userId"`
	Sender    SupportSender `json:"sender"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
}

const (
	// client -> server
	FrameAuth        = "auth"
	FrameChatMessage = "chat_message"
	FrameTyping      = "typing"

	// server -> client
	FrameAuthOK     = "auth_ok"
	FrameError      = "error"
	FrameNewMessage = "new_message"
)

// SupportFrame is the single envelope exchanged over /ws/support. Only the
// fields relevant to Type are set.
type SupportFrame struct {
	Type    string            `json:"type"`
	Token   string            `json:"token,omitempty"`
	Content string            `json:"content,omitempty"`
	Error   string            `json:"error,omitempty"`
	UserID  string            `json:"userId,omitempty"`
	Message *SupportMessage   `json:"message,omitempty"`
	History []*SupportMessage `json:"history,omitempty"`
}
