package entity

import (
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID        uuid.UUID
	Title     string
	CreatorID *uuid.UUID
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
