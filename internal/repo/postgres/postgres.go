package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/pollwise/poll-service/internal/entity"
	"github.com/pollwise/poll-service/internal/repo"
)

type Storage struct {
	db *sql.DB
}

func New(postgresURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// SavePoll inserts a poll together with its options in one transaction, so a
// failed option insert never leaves an orphaned poll behind.
func (s *Storage) SavePoll(ctx context.Context, title string, creatorID *uuid.UUID, optionTexts []string) (uuid.UUID, error) {
	const op = "storage.postgres.SavePoll"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	pollID := uuid.New()

	query := `INSERT INTO polls (id, title, creator_id) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, query, pollID, title, creatorID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	optQuery := `INSERT INTO poll_options (id, poll_id, option_text) VALUES ($1, $2, $3)`
	for _, text := range optionTexts {
		if _, err := tx.ExecContext(ctx, optQuery, uuid.New(), pollID, text); err != nil {
			return uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return pollID, nil
}

func (s *Storage) GetPollByID(ctx context.Context, id uuid.UUID) (entity.Poll, error) {
	const op = "storage.postgres.GetPollByID"

	query := `SELECT id, title, creator_id, is_active, created_at, updated_at FROM polls WHERE id = $1`

	var poll entity.Poll
	err := s.db.QueryRowContext(ctx, query, id).Scan(&poll.ID, &poll.Title, &poll.CreatorID, &poll.IsActive, &poll.CreatedAt, &poll.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Poll{}, fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
		}
		return entity.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *Storage) GetPolls(ctx context.Context) ([]entity.Poll, error) {
	const op = "storage.postgres.GetPolls"

	query := `SELECT id, title, creator_id, is_active, created_at, updated_at FROM polls ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var polls []entity.Poll
	for rows.Next() {
		var poll entity.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.CreatorID, &poll.IsActive, &poll.CreatedAt, &poll.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, poll)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return polls, nil
}

func (s *Storage) UpdatePoll(ctx context.Context, id uuid.UUID, title string, isActive bool) error {
	const op = "storage.postgres.UpdatePoll"

	const query = `UPDATE polls SET title = $1, is_active = $2, updated_at = NOW() WHERE id = $3`

	res, err := s.db.ExecContext(ctx, query, title, isActive, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
	}
	return nil
}

func (s *Storage) DeletePoll(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeletePoll"

	query := `DELETE FROM polls WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrPollNotFound
	}

	return nil
}

func (s *Storage) GetOptionsByPollID(ctx context.Context, pollID uuid.UUID) ([]entity.Option, error) {
	const op = "storage.postgres.GetOptionsByPollID"

	query := `SELECT id, poll_id, option_text, votes, created_at FROM poll_options WHERE poll_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var option entity.Option
		if err := rows.Scan(&option.ID, &option.PollID, &option.Text, &option.Votes, &option.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return options, nil
}

// ReplaceOptions drops a poll's option set and inserts a new one. Votes on the
// old options go away with the cascade, so counters restart at zero.
func (s *Storage) ReplaceOptions(ctx context.Context, pollID uuid.UUID, optionTexts []string) error {
	const op = "storage.postgres.ReplaceOptions"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM poll_options WHERE poll_id = $1`, pollID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO poll_options (id, poll_id, option_text) VALUES ($1, $2, $3)`
	for _, text := range optionTexts {
		if _, err := tx.ExecContext(ctx, query, uuid.New(), pollID, text); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveVote runs the whole submission as one transaction: poll check, option
// check, ledger insert, counter increment. The UNIQUE (poll_id, user_id)
// constraint is the serialization point for duplicate submissions; an
// application-level read would race under concurrent requests.
func (s *Storage) SaveVote(ctx context.Context, pollID, optionID uuid.UUID, userID *uuid.UUID) (entity.Vote, error) {
	const op = "storage.postgres.SaveVote"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var isActive bool
	err = tx.QueryRowContext(ctx, `SELECT is_active FROM polls WHERE id = $1`, pollID).Scan(&isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrPollNotFound)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}
	if !isActive {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrPollClosed)
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM poll_options WHERE id = $1 AND poll_id = $2)`, optionID, pollID).Scan(&exists)
	if err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrOptionNotFound)
	}

	vote := entity.Vote{
		ID:       uuid.New(),
		PollID:   pollID,
		OptionID: optionID,
		UserID:   userID,
	}

	query := `INSERT INTO votes (id, poll_id, option_id, user_id) VALUES ($1, $2, $3, $4) RETURNING created_at`
	err = tx.QueryRowContext(ctx, query, vote.ID, pollID, optionID, userID).Scan(&vote.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrAlreadyVoted)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE poll_options SET votes = votes + 1 WHERE id = $1`, optionID); err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

func (s *Storage) GetVotesByPollID(ctx context.Context, pollID uuid.UUID) ([]entity.Vote, error) {
	const op = "storage.postgres.GetVotesByPollID"

	query := `SELECT id, poll_id, option_id, user_id, created_at FROM votes WHERE poll_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var votes []entity.Vote
	for rows.Next() {
		var vote entity.Vote
		if err := rows.Scan(&vote.ID, &vote.PollID, &vote.OptionID, &vote.UserID, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		votes = append(votes, vote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return votes, nil
}

func (s *Storage) SaveLog(ctx context.Context, log *entity.AuditLog) (int64, error) {
	const op = "storage.postgres.SaveLog"

	query := `INSERT INTO logs (user_id, action, poll_id, option_id, vote_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := s.db.QueryRowContext(ctx, query, log.UserID, log.Action, log.PollID, log.OptionID, log.VoteID).Scan(&log.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return log.ID, nil
}

func (s *Storage) GetLogs(ctx context.Context) ([]entity.AuditLog, error) {
	const op = "storage.postgres.GetLogs"

	query := `SELECT id, user_id, action, poll_id, option_id, vote_id, created_at FROM logs ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []entity.AuditLog
	for rows.Next() {
		var log entity.AuditLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.Action, &log.PollID, &log.OptionID, &log.VoteID, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return logs, nil
}
