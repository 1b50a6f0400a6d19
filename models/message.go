package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a single stored turn of a practice session.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	Role      string    `json:"role"` // "user" or "bot"
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	Level     string    `json:"level"`
	Timestamp time.Time `json:"timestamp"`
}
