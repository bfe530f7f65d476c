package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a ledger entry. UserID is nil for anonymous voters, in which case
// the one-vote-per-poll constraint does not apply.
type Vote struct {
	ID        uuid.UUID
	PollID    uuid.UUID
	OptionID  uuid.UUID
	UserID    *uuid.UUID
	CreatedAt time.Time
}
