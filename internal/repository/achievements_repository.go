package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	mustPing(conn, "achievementsRepo")
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error) {
	unlocked := make([]entity.UserAchievement, 0)
	rows, err := ar.conn.Query(ctx, `SELECT user_id, achievement_id, unlocked_at FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at;`, uid)
	if err != nil {
		return nil, errors.New("getting achievements error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var ua entity.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.UnlockedAt); err != nil {
			return nil, errors.New("unmarshalling achievement error: " + err.Error())
		}
		unlocked = append(unlocked, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return unlocked, nil
}

func (ar *AchievementsRepository) Unlock(ctx context.Context, ua entity.UserAchievement) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO user_achievements (user_id, achievement_id, unlocked_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING;`, ua.UserID, ua.AchievementID, ua.UnlockedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("unlocking achievement error: " + err.Error())
	}
	return nil
}
