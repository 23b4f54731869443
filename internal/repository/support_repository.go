package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/pkg/entity"
)

type SupportRepository struct {
	conn PgConnection
}

func NewSupportRepoWithConn(conn PgConnection) *SupportRepository {
	mustPing(conn, "supportRepo")
	return &SupportRepository{
		conn: conn,
	}
}

func (sr *SupportRepository) Save(ctx context.Context, msg *entity.SupportMessage) (*entity.SupportMessage, error) {
	saved := *msg
	row := sr.conn.QueryRow(ctx, `INSERT INTO support_messages (user_id, sender, content) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		msg.UserID, string(msg.Sender), msg.Content)
	if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("saving support message error: " + err.Error())
	}
	return &saved, nil
}

func (sr *SupportRepository) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.SupportMessage, error) {
	messages := make([]*entity.SupportMessage, 0)
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, sender, content, created_at FROM support_messages
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting support messages error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			m      entity.SupportMessage
			sender string
		)
		if err := rows.Scan(&m.ID, &m.UserID, &sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling support message error: " + err.Error())
		}
		m.Sender = entity.SupportSender(sender)
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	slices.Reverse(messages)
	return messages, nil
}
