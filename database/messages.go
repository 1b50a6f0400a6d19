package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/bot"
	"github.com/langmatch/langmatchserver/models"
)

// AddMessage stores one turn and bumps the session's message counter in a
// single transaction.
func AddMessage(sessionID uuid.UUID, role, text, language, level string) (*models.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	msg := &models.Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		Language:  language,
		Level:     level,
		Timestamp: time.Now(),
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO messages (id, session_id, role, text, language, level, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.SessionID, msg.Role, msg.Text, msg.Language, msg.Level, msg.Timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE sessions SET message_count = message_count + 1 WHERE id = $1", sessionID,
	); err != nil {
		return nil, fmt.Errorf("bump message count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return msg, nil
}

// RecentTurns returns the session's last n messages as pipeline turns,
// ordered oldest first.
func RecentTurns(sessionID uuid.UUID, n int) ([]bot.ConversationTurn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	const q = `
		SELECT role, text, timestamp
		FROM messages
		WHERE session_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`
	rows, err := DB.QueryContext(ctx, q, sessionID, n)
	if err != nil {
		return nil, fmt.Errorf("RecentTurns: %w", err)
	}
	defer rows.Close()

	turns := []bot.ConversationTurn{}
	for rows.Next() {
		var t bot.ConversationTurn
		if err := rows.Scan(&t.Role, &t.Text, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query reads newest first; the pipeline wants ascending order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// ListMessages pages through one session's messages, oldest first.
func ListMessages(sessionID uuid.UUID, page, size int) ([]models.Message, int, error) {
	page, size = clampPage(page, size)

	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	var total int
	if err := DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM messages WHERE session_id = $1", sessionID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	const q = `
		SELECT id, session_id, role, text, language, level, timestamp
		FROM messages
		WHERE session_id = $1
		ORDER BY timestamp ASC
		LIMIT $2 OFFSET $3`
	rows, err := DB.QueryContext(ctx, q, sessionID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("ListMessages: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// MessageFilter narrows UserMessages / AdminListMessages results.
type MessageFilter struct {
	Role      string
	Language  string
	Level     string
	StartDate *time.Time
	EndDate   *time.Time
}

// UserMessages pages through every message of one user's sessions,
// newest first.
func UserMessages(userID uuid.UUID, f MessageFilter, page, size int) ([]models.Message, int, error) {
	where := "WHERE s.user_id = $1"
	args := []interface{}{userID}
	where, args = applyMessageFilter(where, args, f)
	return pagedMessages(where, args, page, size)
}

// AdminListMessages pages through all messages across users.
func AdminListMessages(f MessageFilter, page, size int) ([]models.Message, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	where, args = applyMessageFilter(where, args, f)
	return pagedMessages(where, args, page, size)
}

func applyMessageFilter(where string, args []interface{}, f MessageFilter) (string, []interface{}) {
	if f.Role != "" {
		args = append(args, f.Role)
		where += fmt.Sprintf(" AND m.role = $%d", len(args))
	}
	if f.Language != "" {
		args = append(args, f.Language)
		where += fmt.Sprintf(" AND s.language = $%d", len(args))
	}
	if f.Level != "" {
		args = append(args, f.Level)
		where += fmt.Sprintf(" AND s.level = $%d", len(args))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		where += fmt.Sprintf(" AND m.timestamp >= $%d", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		where += fmt.Sprintf(" AND m.timestamp <= $%d", len(args))
	}
	return where, args
}

func pagedMessages(where string, args []interface{}, page, size int) ([]models.Message, int, error) {
	page, size = clampPage(page, size)

	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	countQ := `
		SELECT COUNT(*)
		FROM messages m
		JOIN sessions s ON s.id = m.session_id ` + where
	var total int
	if err := DB.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	args = append(args, size, (page-1)*size)
	q := fmt.Sprintf(`
		SELECT m.id, m.session_id, m.role, m.text, m.language, m.level, m.timestamp
		FROM messages m
		JOIN sessions s ON s.id = m.session_id %s
		ORDER BY m.timestamp DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(
			&m.ID, &m.SessionID, &m.Role, &m.Text, &m.Language, &m.Level, &m.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
