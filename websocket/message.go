package websocket

import (
	"encoding/json"

	"github.com/langmatch/langmatchserver/models"
)

// Event is the wire envelope every push uses.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent builds the serialized envelope for a typed payload.
func NewEvent(eventType string, payload interface{}) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Event{
		Type:    eventType,
		Payload: payloadJSON,
	})
}

// NewExchangeEvent announces one completed user/bot exchange.
func NewExchangeEvent(session *models.Session, userMessage, botMessage *models.Message) ([]byte, error) {
	payload := struct {
		Session     *models.Session `json:"session"`
		UserMessage *models.Message `json:"userMessage"`
		BotMessage  *models.Message `json:"botMessage"`
	}{
		Session:     session,
		UserMessage: userMessage,
		BotMessage:  botMessage,
	}

	return NewEvent("new_exchange", payload)
}

// NewSessionEvent announces a started or ended session.
func NewSessionEvent(eventType string, session *models.Session) ([]byte, error) {
	return NewEvent(eventType, session)
}
