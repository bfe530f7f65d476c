package entity

import "github.com/google/uuid"

// Tally is the aggregate view of a poll derived from option counters.
type Tally struct {
	PollID     uuid.UUID
	TotalVotes int64
	Options    []OptionTally
}

type OptionTally struct {
	OptionID   uuid.UUID
	Text       string
	Votes      int64
	Percentage float64
}
