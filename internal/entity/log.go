package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        int64
	UserID    *uuid.UUID
	Action    string
	PollID    *uuid.UUID
	OptionID  *uuid.UUID
	VoteID    *uuid.UUID
	CreatedAt time.Time
}
