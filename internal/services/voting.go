package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pollwise/poll-service/internal/entity"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrPermissionDenied = errors.New("permission denied")
)

// MinOptions is the smallest option set a poll can be created or updated with.
const MinOptions = 2

type Polling struct {
	log           *slog.Logger
	pollStorage   PollStorage
	optionStorage OptionStorage
	voteStorage   VoteStorage
	logStorage    LogStorage
}

type PollStorage interface {
	SavePoll(ctx context.Context, title string, creatorID *uuid.UUID, optionTexts []string) (uuid.UUID, error)
	GetPollByID(ctx context.Context, id uuid.UUID) (entity.Poll, error)
	GetPolls(ctx context.Context) ([]entity.Poll, error)
	UpdatePoll(ctx context.Context, id uuid.UUID, title string, isActive bool) error
	DeletePoll(ctx context.Context, id uuid.UUID) error
}

type OptionStorage interface {
	GetOptionsByPollID(ctx context.Context, pollID uuid.UUID) ([]entity.Option, error)
	ReplaceOptions(ctx context.Context, pollID uuid.UUID, optionTexts []string) error
}

type VoteStorage interface {
	SaveVote(ctx context.Context, pollID, optionID uuid.UUID, userID *uuid.UUID) (entity.Vote, error)
	GetVotesByPollID(ctx context.Context, pollID uuid.UUID) ([]entity.Vote, error)
}

type LogStorage interface {
	SaveLog(ctx context.Context, log *entity.AuditLog) (int64, error)
	GetLogs(ctx context.Context) ([]entity.AuditLog, error)
}

func NewPolling(
	log *slog.Logger,
	pollStorage PollStorage,
	optionStorage OptionStorage,
	voteStorage VoteStorage,
	logStorage LogStorage,
) *Polling {
	return &Polling{
		log:           log,
		pollStorage:   pollStorage,
		optionStorage: optionStorage,
		voteStorage:   voteStorage,
		logStorage:    logStorage,
	}
}

// CreatePoll creates an active poll with its options. The storage layer
// inserts both in one transaction, so a failed option insert leaves no poll.
func (p *Polling) CreatePoll(ctx context.Context, title string, optionTexts []string, creatorID uuid.UUID) (entity.Poll, []entity.Option, error) {
	const op = "Polling.CreatePoll"

	title = strings.TrimSpace(title)
	if title == "" {
		return entity.Poll{}, nil, fmt.Errorf("%w: title is empty", ErrValidation)
	}

	options, err := normalizeOptions(optionTexts)
	if err != nil {
		return entity.Poll{}, nil, err
	}

	pollID, err := p.pollStorage.SavePoll(ctx, title, &creatorID, options)
	if err != nil {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	p.audit(ctx, &entity.AuditLog{PollID: &pollID, UserID: &creatorID, Action: op})

	return p.pollWithOptions(ctx, op, pollID)
}

func (p *Polling) GetPoll(ctx context.Context, id uuid.UUID) (entity.Poll, []entity.Option, error) {
	const op = "Polling.GetPoll"
	return p.pollWithOptions(ctx, op, id)
}

func (p *Polling) GetPolls(ctx context.Context) ([]entity.Poll, error) {
	const op = "Polling.GetPolls"

	polls, err := p.pollStorage.GetPolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return polls, nil
}

// UpdatePoll applies a partial update on behalf of the poll's creator. A nil
// title or isActive leaves the current value in place. A non-nil optionTexts
// replaces the option set; votes tied to the removed options are discarded and
// every counter restarts at zero.
func (p *Polling) UpdatePoll(ctx context.Context, id uuid.UUID, title *string, isActive *bool, optionTexts []string, userID uuid.UUID) (entity.Poll, []entity.Option, error) {
	const op = "Polling.UpdatePoll"

	poll, err := p.pollStorage.GetPollByID(ctx, id)
	if err != nil {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if poll.CreatorID == nil || *poll.CreatorID != userID {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	newTitle := poll.Title
	if title != nil {
		newTitle = strings.TrimSpace(*title)
		if newTitle == "" {
			return entity.Poll{}, nil, fmt.Errorf("%w: title is empty", ErrValidation)
		}
	}

	newActive := poll.IsActive
	if isActive != nil {
		newActive = *isActive
	}

	var newOptions []string
	if optionTexts != nil {
		newOptions, err = normalizeOptions(optionTexts)
		if err != nil {
			return entity.Poll{}, nil, err
		}
	}

	if err := p.pollStorage.UpdatePoll(ctx, id, newTitle, newActive); err != nil {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if newOptions != nil {
		if err := p.optionStorage.ReplaceOptions(ctx, id, newOptions); err != nil {
			return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	p.audit(ctx, &entity.AuditLog{PollID: &id, UserID: &userID, Action: op})

	return p.pollWithOptions(ctx, op, id)
}

func (p *Polling) DeletePoll(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	const op = "Polling.DeletePoll"

	poll, err := p.pollStorage.GetPollByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if poll.CreatorID == nil || *poll.CreatorID != userID {
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := p.pollStorage.DeletePoll(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.audit(ctx, &entity.AuditLog{PollID: &id, UserID: &userID, Action: op})

	return nil
}

// SubmitVote records a vote. The storage call is a single transaction that
// validates the poll and option, appends the ledger entry and increments the
// option counter; a duplicate identified vote surfaces as repo.ErrAlreadyVoted.
func (p *Polling) SubmitVote(ctx context.Context, pollID, optionID uuid.UUID, userID *uuid.UUID) (entity.Vote, error) {
	const op = "Polling.SubmitVote"

	vote, err := p.voteStorage.SaveVote(ctx, pollID, optionID, userID)
	if err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	p.audit(ctx, &entity.AuditLog{PollID: &pollID, OptionID: &optionID, VoteID: &vote.ID, UserID: userID, Action: op})

	return vote, nil
}

// ComputeTally derives total votes and per-option percentages from the
// counters. Percentages are plain votes/total*100; they are not corrected to
// sum to exactly 100.
func (p *Polling) ComputeTally(ctx context.Context, pollID uuid.UUID) (entity.Tally, error) {
	const op = "Polling.ComputeTally"

	if _, err := p.pollStorage.GetPollByID(ctx, pollID); err != nil {
		return entity.Tally{}, fmt.Errorf("%s: %w", op, err)
	}

	options, err := p.optionStorage.GetOptionsByPollID(ctx, pollID)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("%s: %w", op, err)
	}

	tally := entity.Tally{PollID: pollID}
	for _, option := range options {
		tally.TotalVotes += option.Votes
	}

	for _, option := range options {
		var percentage float64
		if tally.TotalVotes > 0 {
			percentage = float64(option.Votes) / float64(tally.TotalVotes) * 100
		}
		tally.Options = append(tally.Options, entity.OptionTally{
			OptionID:   option.ID,
			Text:       option.Text,
			Votes:      option.Votes,
			Percentage: percentage,
		})
	}

	return tally, nil
}

func (p *Polling) GetLogs(ctx context.Context) ([]entity.AuditLog, error) {
	const op = "Polling.GetLogs"

	logs, err := p.logStorage.GetLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logs, nil
}

func (p *Polling) pollWithOptions(ctx context.Context, op string, id uuid.UUID) (entity.Poll, []entity.Option, error) {
	poll, err := p.pollStorage.GetPollByID(ctx, id)
	if err != nil {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	options, err := p.optionStorage.GetOptionsByPollID(ctx, id)
	if err != nil {
		return entity.Poll{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return poll, options, nil
}

// audit never fails the calling operation.
func (p *Polling) audit(ctx context.Context, log *entity.AuditLog) {
	if _, err := p.logStorage.SaveLog(ctx, log); err != nil {
		p.log.Warn("failed to save audit log", slog.String("action", log.Action), slog.String("error", err.Error()))
	}
}

func normalizeOptions(optionTexts []string) ([]string, error) {
	options := make([]string, 0, len(optionTexts))
	for _, text := range optionTexts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, text)
	}

	if len(options) < MinOptions {
		return nil, fmt.Errorf("%w: at least %d non-empty options required", ErrValidation, MinOptions)
	}

	return options, nil
}
