package repository

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/limbo/journowl/internal/repository UsersRepositoryI,EntriesRepositoryI,AchievementsRepositoryI,SubscriptionsRepositoryI,TournamentsRepositoryI,ChallengesRepositoryI,SupportRepositoryI

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/journowl/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name, password hash and timezone
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Saves a new entry. AuthorID, Content, Mood and WordCount are necessary
	Create(ctx context.Context, entry *entity.JournalEntry) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error)
	// Lists author's entries, newest first. Requires pagination params provided
	GetByAuthor(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.JournalEntry, error)
	// Rewrites content, mood, word count, tags and attachments of entry with ID
	Update(ctx context.Context, entry *entity.JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Whole activity history of one user
	ListUserActivity(ctx context.Context, uid uuid.UUID) ([]entity.EntryActivity, error)
	// Activity of every user created at or after since
	ListActivity(ctx context.Context, since time.Time) ([]entity.EntryActivity, error)
	// Activity of tournament participants inside [from, to]
	ListTournamentActivity(ctx context.Context, tournamentID uuid.UUID, from, to time.Time) ([]entity.EntryActivity, error)
}

type AchievementsRepositoryI interface {
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error)
	// Stores an unlock. Existing unlocks are never overwritten
	Unlock(ctx context.Context, ua entity.UserAchievement) error
}

type SubscriptionsRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.SubscriptionState, error)
	// Inserts the state unless the user already has one
	Create(ctx context.Context, state *entity.SubscriptionState) error
	// Starts period with the given allowance if the stored period is older and
	// the tier is still tier. Returns ErrPeriodCurrent when nothing changed
	RollPeriod(ctx context.Context, uid uuid.UUID, tier entity.Tier, period time.Time, prompts int) (*entity.SubscriptionState, error)
	// Sets tier and storage limit, raising the balance to at least prompts
	ChangeTier(ctx context.Context, uid uuid.UUID, tier entity.Tier, storageLimit int64, prompts int) (*entity.SubscriptionState, error)
	// Takes one prompt if any is left. Returns the prompts left after it
	ConsumePrompt(ctx context.Context, uid uuid.UUID) (int, error)
	// Adds n prompts. Returns the new balance
	AddPrompts(ctx context.Context, uid uuid.UUID, n int) (int, error)
}

type TournamentsRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error)
	// Tournaments not ended at now, with participants count and uid's membership
	ListActive(ctx context.Context, now time.Time, uid uuid.UUID) ([]*entity.Tournament, error)
	Join(ctx context.Context, id, uid uuid.UUID) error
	ListJoinedIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error)
}

type ChallengesRepositoryI interface {
	// Challenge with uid's completion time, if any
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
	ListActive(ctx context.Context, now time.Time, uid uuid.UUID) ([]*entity.Challenge, error)
	Complete(ctx context.Context, id, uid uuid.UUID) error
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
}

type SupportRepositoryI interface {
	Save(ctx context.Context, msg *entity.SupportMessage) (*entity.SupportMessage, error)
	// Last limit messages of the conversation, oldest first
	ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.SupportMessage, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
