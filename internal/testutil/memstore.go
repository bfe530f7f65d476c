// Package testutil provides an in-memory storage used by tests. It mirrors
// the postgres storage semantics: vote submission is atomic under one lock and
// identified duplicates are rejected the way the UNIQUE (poll_id, user_id)
// constraint rejects them.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pollwise/poll-service/internal/entity"
	"github.com/pollwise/poll-service/internal/repo"
)

type MemStorage struct {
	mu      sync.Mutex
	polls   map[uuid.UUID]entity.Poll
	options map[uuid.UUID]*entity.Option
	votes   []entity.Vote
	voters  map[string]struct{}
	logs    []entity.AuditLog
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		polls:   make(map[uuid.UUID]entity.Poll),
		options: make(map[uuid.UUID]*entity.Option),
		voters:  make(map[string]struct{}),
	}
}

func (m *MemStorage) SavePoll(_ context.Context, title string, creatorID *uuid.UUID, optionTexts []string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	poll := entity.Poll{ID: uuid.New(), Title: title, CreatorID: creatorID, IsActive: true, CreatedAt: now, UpdatedAt: now}
	m.polls[poll.ID] = poll
	for i, text := range optionTexts {
		option := &entity.Option{ID: uuid.New(), PollID: poll.ID, Text: text, CreatedAt: now.Add(time.Duration(i) * time.Microsecond)}
		m.options[option.ID] = option
	}
	return poll.ID, nil
}

func (m *MemStorage) GetPollByID(_ context.Context, id uuid.UUID) (entity.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[id]
	if !ok {
		return entity.Poll{}, repo.ErrPollNotFound
	}
	return poll, nil
}

func (m *MemStorage) GetPolls(_ context.Context) ([]entity.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	polls := make([]entity.Poll, 0, len(m.polls))
	for _, poll := range m.polls {
		polls = append(polls, poll)
	}
	return polls, nil
}

func (m *MemStorage) UpdatePoll(_ context.Context, id uuid.UUID, title string, isActive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[id]
	if !ok {
		return repo.ErrPollNotFound
	}
	poll.Title = title
	poll.IsActive = isActive
	poll.UpdatedAt = time.Now()
	m.polls[id] = poll
	return nil
}

func (m *MemStorage) DeletePoll(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.polls[id]; !ok {
		return repo.ErrPollNotFound
	}
	delete(m.polls, id)
	m.dropOptionsLocked(id)
	m.dropVotesLocked(id)
	return nil
}

func (m *MemStorage) GetOptionsByPollID(_ context.Context, pollID uuid.UUID) ([]entity.Option, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var options []entity.Option
	for _, option := range m.options {
		if option.PollID == pollID {
			options = append(options, *option)
		}
	}
	sortOptions(options)
	return options, nil
}

func (m *MemStorage) ReplaceOptions(_ context.Context, pollID uuid.UUID, optionTexts []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropOptionsLocked(pollID)
	m.dropVotesLocked(pollID)
	now := time.Now()
	for i, text := range optionTexts {
		option := &entity.Option{ID: uuid.New(), PollID: pollID, Text: text, CreatedAt: now.Add(time.Duration(i) * time.Microsecond)}
		m.options[option.ID] = option
	}
	return nil
}

func (m *MemStorage) SaveVote(_ context.Context, pollID, optionID uuid.UUID, userID *uuid.UUID) (entity.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[pollID]
	if !ok {
		return entity.Vote{}, repo.ErrPollNotFound
	}
	if !poll.IsActive {
		return entity.Vote{}, repo.ErrPollClosed
	}

	option, ok := m.options[optionID]
	if !ok || option.PollID != pollID {
		return entity.Vote{}, repo.ErrOptionNotFound
	}

	if userID != nil {
		key := voterKey(pollID, *userID)
		if _, dup := m.voters[key]; dup {
			return entity.Vote{}, repo.ErrAlreadyVoted
		}
		m.voters[key] = struct{}{}
	}

	vote := entity.Vote{ID: uuid.New(), PollID: pollID, OptionID: optionID, UserID: userID, CreatedAt: time.Now()}
	m.votes = append(m.votes, vote)
	option.Votes++
	return vote, nil
}

func (m *MemStorage) GetVotesByPollID(_ context.Context, pollID uuid.UUID) ([]entity.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var votes []entity.Vote
	for _, vote := range m.votes {
		if vote.PollID == pollID {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

func (m *MemStorage) SaveLog(_ context.Context, log *entity.AuditLog) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.ID = int64(len(m.logs) + 1)
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return log.ID, nil
}

func (m *MemStorage) GetLogs(_ context.Context) ([]entity.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logs := make([]entity.AuditLog, len(m.logs))
	copy(logs, m.logs)
	return logs, nil
}

func (m *MemStorage) dropOptionsLocked(pollID uuid.UUID) {
	for optionID, option := range m.options {
		if option.PollID == pollID {
			delete(m.options, optionID)
		}
	}
}

func (m *MemStorage) dropVotesLocked(pollID uuid.UUID) {
	kept := m.votes[:0]
	for _, vote := range m.votes {
		if vote.PollID != pollID {
			kept = append(kept, vote)
		} else if vote.UserID != nil {
			delete(m.voters, voterKey(pollID, *vote.UserID))
		}
	}
	m.votes = kept
}

func voterKey(pollID, userID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", pollID, userID)
}

func sortOptions(options []entity.Option) {
	sort.Slice(options, func(i, j int) bool {
		return options[i].CreatedAt.Before(options[j].CreatedAt)
	})
}
