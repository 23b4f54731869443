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

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	mustPing(conn, "entriesRepo")
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.JournalEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO journal_entries (author_id, content, mood, word_count, tags, attachments)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		entry.AuthorID,
		entry.Content,
		string(entry.Mood),
		entry.WordCount,
		nonNilTags(entry.Tags),
		nonNilAttachments(entry.Attachments),
	)
	if err := row.Scan(&id); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrAuthorMissing
		}
		return uuid.Nil, errors.New("creating entry db error: " + err.Error())
	}
	return id, nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	row := er.conn.QueryRow(ctx, `SELECT id, author_id, content, mood, word_count, tags, attachments, created_at, updated_at
		FROM journal_entries WHERE id = $1;`, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return entry, nil
}

func (er *EntriesRepository) GetByAuthor(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.JournalEntry, error) {
	entries := make([]*entity.JournalEntry, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, author_id, content, mood, word_count, tags, attachments, created_at, updated_at
		FROM journal_entries WHERE author_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting entries by author error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.New("unmarshalling entry error: " + err.Error())
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return entries, nil
}

func (er *EntriesRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	ct, err := er.conn.Exec(ctx, `UPDATE journal_entries SET content = $1, mood = $2, word_count = $3, tags = $4, attachments = $5, updated_at = NOW()
		WHERE id = $6;`,
		entry.Content,
		string(entry.Mood),
		entry.WordCount,
		nonNilTags(entry.Tags),
		nonNilAttachments(entry.Attachments),
		entry.ID,
	)
	if err != nil {
		return errors.New("updating entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

const activitySelect = `SELECT e.author_id, u.name, u.timezone, e.created_at, e.word_count, e.mood
	FROM journal_entries e JOIN users u ON u.id = e.author_id `

func (er *EntriesRepository) ListUserActivity(ctx context.Context, uid uuid.UUID) ([]entity.EntryActivity, error) {
	return er.queryActivity(ctx, activitySelect+`WHERE e.author_id = $1 ORDER BY e.created_at;`, uid)
}

func (er *EntriesRepository) ListActivity(ctx context.Context, since time.Time) ([]entity.EntryActivity, error) {
	return er.queryActivity(ctx, activitySelect+`WHERE e.created_at >= $1 ORDER BY e.created_at;`, since)
}

func (er *EntriesRepository) ListTournamentActivity(ctx context.Context, tournamentID uuid.UUID, from, to time.Time) ([]entity.EntryActivity, error) {
	return er.queryActivity(ctx, activitySelect+`JOIN tournament_participants p ON p.user_id = e.author_id
	WHERE p.tournament_id = $1 AND e.created_at >= $2 AND e.created_at <= $3 ORDER BY e.created_at;`, tournamentID, from, to)
}

func (er *EntriesRepository) queryActivity(ctx context.Context, query string, args ...any) ([]entity.EntryActivity, error) {
	activity := make([]entity.EntryActivity, 0)
	rows, err := er.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting activity error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			a    entity.EntryActivity
			mood string
		)
		if err := rows.Scan(&a.UserID, &a.Username, &a.Timezone, &a.CreatedAt, &a.WordCount, &mood); err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		a.Mood = entity.Mood(mood)
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return activity, nil
}

func scanEntry(row pgx.Row) (*entity.JournalEntry, error) {
	var (
		e    entity.JournalEntry
		mood string
	)
	err := row.Scan(&e.ID, &e.AuthorID, &e.Content, &mood, &e.WordCount, &e.Tags, &e.Attachments, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Mood = entity.Mood(mood)
	e.Tags = nonNilTags(e.Tags)
	e.Attachments = nonNilAttachments(e.Attachments)
	return &e, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func nonNilAttachments(att []entity.Attachment) []entity.Attachment {
	if att == nil {
		return []entity.Attachment{}
	}
	return att
}
