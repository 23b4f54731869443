package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	// IANA zone name used to cut calendar days for streaks
	Timezone  string
	CreatedAt time.Time
}

type Mood string

const (
	MoodHappy    Mood = "😊"
	MoodSad      Mood = "😢"
	MoodAngry    Mood = "😡"
	MoodAnxious  Mood = "😰"
	MoodCalm     Mood = "😌"
	MoodExcited  Mood = "🤩"
	MoodTired    Mood = "😴"
	MoodGrateful Mood = "🙏"
)

var Moods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodCalm, MoodExcited, MoodTired, MoodGrateful}

func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

type AttachmentKind string

const (
	AttachmentPhoto   AttachmentKind = "photo"
	AttachmentAudio   AttachmentKind = "audio"
	AttachmentDrawing AttachmentKind = "drawing"
	AttachmentVideo   AttachmentKind = "video"
)

type Attachment struct {
	Kind AttachmentKind `json:"kind"`
	Ref  string         `json:"ref"`
}

type JournalEntry struct {
	ID          uuid.UUID    `json:"id"`
	AuthorID    uuid.UUID    `json:"authorId"`
	Content     string       `json:"content"`
	Mood        Mood         `json:"mood"`
	WordCount   int          `json:"wordCount"`
	Tags        []string     `json:"tags"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// EntryActivity is the slice of a journal entry the scoring code works on.
type EntryActivity struct {
	UserID    uuid.UUID
	Username  string
	Timezone  string
	CreatedAt time.Time
	WordCount int
	Mood      Mood
}

type StreakState struct {
	CurrentStreak   int
	LongestStreak   int
	LastEntryDate   *time.Time
	DaysUntilBroken int
	NextMilestone   int
}

type LeaderboardEntry struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Rank     int       `json:"rank"`
	Badge    string    `json:"badge,omitempty"`
}

type Leaderboard struct {
	Board        string              `json:"board"`
	Entries      []*LeaderboardEntry `json:"entries"`
	UserPosition *LeaderboardEntry   `json:"userPosition,omitempty"`
	TotalUsers   int                 `json:"totalUsers"`
}
