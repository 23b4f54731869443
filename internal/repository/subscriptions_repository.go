package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/pkg/entity"
)

type SubscriptionsRepository struct {
	conn PgConnection
}

func NewSubscriptionsRepoWithConn(conn PgConnection) *SubscriptionsRepository {
	mustPing(conn, "subscriptionsRepo")
	return &SubscriptionsRepository{
		conn: conn,
	}
}

const subscriptionColumns = `user_id, tier, prompts_remaining, period_start, storage_used, storage_limit`

func scanSubscription(row pgx.Row) (*entity.SubscriptionState, error) {
	var (
		s    entity.SubscriptionState
		tier string
	)
	if err := row.Scan(&s.UserID, &tier, &s.PromptsRemaining, &s.PeriodStart, &s.StorageUsed, &s.StorageLimit); err != nil {
		return nil, err
	}
	s.Tier = entity.Tier(tier)
	return &s, nil
}

func (sr *SubscriptionsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.SubscriptionState, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1;`, uid)
	state, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSubscriptionNotFound
		}
		return nil, errors.New("getting subscription error: " + err.Error())
	}
	return state, nil
}

func (sr *SubscriptionsRepository) Create(ctx context.Context, state *entity.SubscriptionState) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO subscriptions (user_id, tier, prompts_remaining, period_start, storage_used, storage_limit)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id) DO NOTHING;`,
		state.UserID,
		string(state.Tier),
		state.PromptsRemaining,
		state.PeriodStart,
		state.StorageUsed,
		state.StorageLimit,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating subscription error: " + err.Error())
	}
	return nil
}

// RollPeriod resets the balance in the same statement that checks the period,
// so a top-up or a consumed prompt landing after the read is not overwritten.
func (sr *SubscriptionsRepository) RollPeriod(ctx context.Context, uid uuid.UUID, tier entity.Tier, period time.Time, prompts int) (*entity.SubscriptionState, error) {
	row := sr.conn.QueryRow(ctx, `UPDATE subscriptions SET prompts_remaining = $1, period_start = $2, updated_at = NOW()
		WHERE user_id = $3 AND tier = $4 AND period_start < $2 RETURNING `+subscriptionColumns+`;`,
		prompts, period, uid, string(tier))
	state, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPeriodCurrent
		}
		return nil, errors.New("rolling subscription period error: " + err.Error())
	}
	return state, nil
}

func (sr *SubscriptionsRepository) ChangeTier(ctx context.Context, uid uuid.UUID, tier entity.Tier, storageLimit int64, prompts int) (*entity.SubscriptionState, error) {
	row := sr.conn.QueryRow(ctx, `UPDATE subscriptions SET tier = $1, storage_limit = $2, prompts_remaining = GREATEST(prompts_remaining, $3), updated_at = NOW()
		WHERE user_id = $4 RETURNING `+subscriptionColumns+`;`,
		string(tier), storageLimit, prompts, uid)
	state, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSubscriptionNotFound
		}
		return nil, errors.New("changing tier error: " + err.Error())
	}
	return state, nil
}

// ConsumePrompt decrements in one statement so concurrent requests can not
// take the balance below zero.
func (sr *SubscriptionsRepository) ConsumePrompt(ctx context.Context, uid uuid.UUID) (int, error) {
	var left int
	row := sr.conn.QueryRow(ctx, `UPDATE subscriptions SET prompts_remaining = prompts_remaining - 1, updated_at = NOW()
		WHERE user_id = $1 AND prompts_remaining > 0 RETURNING prompts_remaining;`, uid)
	if err := row.Scan(&left); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrNoPromptsLeft
		}
		return 0, errors.New("consuming prompt error: " + err.Error())
	}
	return left, nil
}

func (sr *SubscriptionsRepository) AddPrompts(ctx context.Context, uid uuid.UUID, n int) (int, error) {
	var balance int
	row := sr.conn.QueryRow(ctx, `UPDATE subscriptions SET prompts_remaining = prompts_remaining + $1, updated_at = NOW()
		WHERE user_id = $2 RETURNING prompts_remaining;`, n, uid)
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrSubscriptionNotFound
		}
		if pgCode(err) == pgCheckViolation {
			return 0, errorvalues.ErrInvalidTopUp
		}
		return 0, errors.New("adding prompts error: " + err.Error())
	}
	return balance, nil
}
