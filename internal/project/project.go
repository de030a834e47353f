package project

import (
	"time"

	"storyreel/internal/brief"
)

// Project is the persisted record owning a brief.
type Project struct {
	ID        string      `json:"id"`
	Brief     brief.Brief `json:"brief"`
	CreatedAt time.Time   `json:"created_at"`
}
