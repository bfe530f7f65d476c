package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/pollwise/poll-service/internal/entity"
)

// Response types are the only place storage entities are translated to the
// API's JSON contract. Storage speaks snake_case columns; the API speaks the
// camelCase fields below.

type PollResponse struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	CreatorID  *string          `json:"creatorId,omitempty"`
	IsActive   bool             `json:"isActive"`
	CreatedAt  time.Time        `json:"createdAt"`
	TotalVotes int64            `json:"totalVotes"`
	Options    []OptionResponse `json:"options"`
}

type PollSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatorID *string   `json:"creatorId,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type OptionResponse struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type ResultsResponse struct {
	PollID     string           `json:"pollId"`
	TotalVotes int64            `json:"totalVotes"`
	Options    []OptionResponse `json:"options"`
}

type LogResponse struct {
	ID        int64     `json:"id"`
	UserID    *string   `json:"userId,omitempty"`
	Action    string    `json:"action"`
	PollID    *string   `json:"pollId,omitempty"`
	OptionID  *string   `json:"optionId,omitempty"`
	VoteID    *string   `json:"voteId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newPollResponse(poll entity.Poll, options []entity.Option) PollResponse {
	var total int64
	for _, option := range options {
		total += option.Votes
	}

	resp := PollResponse{
		ID:         poll.ID.String(),
		Title:      poll.Title,
		CreatorID:  uuidString(poll.CreatorID),
		IsActive:   poll.IsActive,
		CreatedAt:  poll.CreatedAt,
		TotalVotes: total,
		Options:    make([]OptionResponse, 0, len(options)),
	}

	for _, option := range options {
		var percentage float64
		if total > 0 {
			percentage = float64(option.Votes) / float64(total) * 100
		}
		resp.Options = append(resp.Options, OptionResponse{
			ID:         option.ID.String(),
			Text:       option.Text,
			Votes:      option.Votes,
			Percentage: percentage,
		})
	}

	return resp
}

func newPollSummary(poll entity.Poll) PollSummary {
	return PollSummary{
		ID:        poll.ID.String(),
		Title:     poll.Title,
		CreatorID: uuidString(poll.CreatorID),
		IsActive:  poll.IsActive,
		CreatedAt: poll.CreatedAt,
	}
}

func newResultsResponse(tally entity.Tally) ResultsResponse {
	resp := ResultsResponse{
		PollID:     tally.PollID.String(),
		TotalVotes: tally.TotalVotes,
		Options:    make([]OptionResponse, 0, len(tally.Options)),
	}

	for _, option := range tally.Options {
		resp.Options = append(resp.Options, OptionResponse{
			ID:         option.OptionID.String(),
			Text:       option.Text,
			Votes:      option.Votes,
			Percentage: option.Percentage,
		})
	}

	return resp
}

func newLogResponse(log entity.AuditLog) LogResponse {
	return LogResponse{
		ID:        log.ID,
		UserID:    uuidString(log.UserID),
		Action:    log.Action,
		PollID:    uuidString(log.PollID),
		OptionID:  uuidString(log.OptionID),
		VoteID:    uuidString(log.VoteID),
		CreatedAt: log.CreatedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
