package entity

import (
	"time"

	"github.com/google/uuid"
)

type Option struct {
	ID        uuid.UUID
	PollID    uuid.UUID
	Text      string
	Votes     int64
	CreatedAt time.Time
}
