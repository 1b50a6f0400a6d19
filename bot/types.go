// Package bot contains the response pipeline of the practice chat:
// content filtering, the rule-based canned-response engine and the
// external completion adapter with its fallback policy.
package bot

import "time"

// Language is one of the six supported practice languages.
// The values are the Spanish names the whole platform uses.
type Language string

const (
	Spanish    Language = "español"
	English    Language = "inglés"
	French     Language = "francés"
	German     Language = "alemán"
	Italian    Language = "italiano"
	Portuguese Language = "portugués"
)

// Level is a proficiency tier of a practice session.
type Level string

const (
	Beginner     Level = "principiante"
	Intermediate Level = "intermedio"
	Advanced     Level = "avanzado"
)

// Role attributes a conversation turn to one of the two parties.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// MaxMessageLength caps the text, in characters, on both the input and the
// output path.
const MaxMessageLength = 1000

// historyWindow bounds how many recent turns are sent to the model.
const historyWindow = 10

// ConversationTurn is one past exchange unit, ordered by timestamp ascending.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionContext carries the per-invocation practice settings.
// The pipeline itself is stateless across calls.
type SessionContext struct {
	Language Language
	Level    Level
}

// Strategy records which mechanism produced a response.
type Strategy string

const (
	StrategyModel Strategy = "model"
	StrategyRules Strategy = "rules"
)

// Result is the pipeline output: the reply text plus its origin.
type Result struct {
	Text     string
	Strategy Strategy
}
