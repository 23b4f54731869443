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

type TournamentsRepository struct {
	conn PgConnection
}

func NewTournamentsRepoWithConn(conn PgConnection) *TournamentsRepository {
	mustPing(conn, "tournamentsRepo")
	return &TournamentsRepository{
		conn: conn,
	}
}

func (tr *TournamentsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	var (
		t      entity.Tournament
		metric string
	)
	row := tr.conn.QueryRow(ctx, `SELECT t.id, t.name, t.metric, t.prize, t.starts_at, t.ends_at,
		(SELECT COUNT(*) FROM tournament_participants p WHERE p.tournament_id = t.id)
		FROM tournaments t WHERE t.id = $1;`, id)
	if err := row.Scan(&t.ID, &t.Name, &metric, &t.Prize, &t.StartsAt, &t.EndsAt, &t.Participants); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTournamentNotFound
		}
		return nil, errors.New("getting tournament error: " + err.Error())
	}
	t.Metric = entity.Metric(metric)
	return &t, nil
}

func (tr *TournamentsRepository) ListActive(ctx context.Context, now time.Time, uid uuid.UUID) ([]*entity.Tournament, error) {
	tournaments := make([]*entity.Tournament, 0)
	rows, err := tr.conn.Query(ctx, `SELECT t.id, t.name, t.metric, t.prize, t.starts_at, t.ends_at,
		(SELECT COUNT(*) FROM tournament_participants p WHERE p.tournament_id = t.id),
		EXISTS(SELECT 1 FROM tournament_participants p WHERE p.tournament_id = t.id AND p.user_id = $2)
		FROM tournaments t WHERE t.ends_at > $1 ORDER BY t.ends_at;`, now, uid)
	if err != nil {
		return nil, errors.New("getting tournaments error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			t      entity.Tournament
			metric string
		)
		if err := rows.Scan(&t.ID, &t.Name, &metric, &t.Prize, &t.StartsAt, &t.EndsAt, &t.Participants, &t.Joined); err != nil {
			return nil, errors.New("unmarshalling tournament error: " + err.Error())
		}
		t.Metric = entity.Metric(metric)
		tournaments = append(tournaments, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tournaments, nil
}

func (tr *TournamentsRepository) Join(ctx context.Context, id, uid uuid.UUID) error {
	_, err := tr.conn.Exec(ctx, `INSERT INTO tournament_participants (tournament_id, user_id) VALUES ($1, $2);`, id, uid)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrAlreadyJoined
		case pgForeignKeyViolation:
			return errorvalues.ErrTournamentNotFound
		}
		return errors.New("joining tournament error: " + err.Error())
	}
	return nil
}

func (tr *TournamentsRepository) ListJoinedIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	rows, err := tr.conn.Query(ctx, `SELECT tournament_id FROM tournament_participants WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting joined tournaments error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling tournament id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return ids, nil
}

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	mustPing(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	var (
		c      entity.Challenge
		metric string
	)
	row := cr.conn.QueryRow(ctx, `SELECT c.id, c.title, c.description, c.metric, c.target, c.starts_at, c.ends_at, cc.completed_at
		FROM challenges c LEFT JOIN challenge_completions cc ON cc.challenge_id = c.id AND cc.user_id = $2
		WHERE c.id = $1;`, id, uid)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &metric, &c.Target, &c.StartsAt, &c.EndsAt, &c.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge error: " + err.Error())
	}
	c.Metric = entity.Metric(metric)
	return &c, nil
}

func (cr *ChallengesRepository) ListActive(ctx context.Context, now time.Time, uid uuid.UUID) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT c.id, c.title, c.description, c.metric, c.target, c.starts_at, c.ends_at, cc.completed_at
		FROM challenges c LEFT JOIN challenge_completions cc ON cc.challenge_id = c.id AND cc.user_id = $2
		WHERE c.starts_at <= $1 AND c.ends_at > $1 ORDER BY c.ends_at;`, now, uid)
	if err != nil {
		return nil, errors.New("getting challenges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			c      entity.Challenge
			metric string
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &metric, &c.Target, &c.StartsAt, &c.EndsAt, &c.CompletedAt); err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		c.Metric = entity.Metric(metric)
		challenges = append(challenges, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) Complete(ctx context.Context, id, uid uuid.UUID) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO challenge_completions (challenge_id, user_id) VALUES ($1, $2);`, id, uid)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrChallengeCompleted
		case pgForeignKeyViolation:
			return errorvalues.ErrChallengeNotFound
		}
		return errors.New("completing challenge error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM challenge_completions WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting completed challenges error: " + err.Error())
	}
	return count, nil
}
