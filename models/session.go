package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one bounded practice conversation in a single language and level.
type Session struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Language     string     `json:"language"`
	Level        string     `json:"level"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	IsActive     bool       `json:"isActive"`
	MessageCount int        `json:"messageCount"`
	// Duration in whole minutes, filled in when the session ends.
	Duration int `json:"duration"`
}
