package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/models"
)

// CreateSession ends the user's previous active sessions and starts a new
// one in a single transaction.
func CreateSession(userID uuid.UUID, language, level string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		UPDATE sessions
		SET is_active = false,
		    ended_at = $1,
		    duration_minutes = CEIL(EXTRACT(EPOCH FROM ($1 - started_at)) / 60)
		WHERE user_id = $2 AND is_active = true`,
		now, userID,
	); err != nil {
		return nil, fmt.Errorf("end previous sessions: %w", err)
	}

	session := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Language:  language,
		Level:     level,
		StartedAt: now,
		IsActive:  true,
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, language, level, started_at, is_active, message_count, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, true, 0, 0)`,
		session.ID, session.UserID, session.Language, session.Level, session.StartedAt,
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return session, nil
}

// GetSession loads one session owned by userID, or ErrNotFound.
func GetSession(id, userID uuid.UUID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	var s models.Session
	var endedAt sql.NullTime

	const q = `
		SELECT id, user_id, language, level, started_at, ended_at, is_active, message_count, duration_minutes
		FROM sessions
		WHERE id = $1 AND user_id = $2`
	if err := DB.QueryRowContext(ctx, q, id, userID).Scan(
		&s.ID, &s.UserID, &s.Language, &s.Level, &s.StartedAt,
		&endedAt, &s.IsActive, &s.MessageCount, &s.Duration,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetSession: %w", err)
	}
	s.EndedAt = nullTimeToPointer(endedAt)
	return &s, nil
}

// ListSessions pages through a user's sessions. status is "all", "active"
// or "completed".
func ListSessions(userID uuid.UUID, status string, page, size int) ([]models.Session, int, error) {
	page, size = clampPage(page, size)

	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	where := "WHERE user_id = $1"
	switch status {
	case "active":
		where += " AND is_active = true"
	case "completed":
		where += " AND is_active = false"
	}

	var total int
	if err := DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions "+where, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	q := `
		SELECT id, user_id, language, level, started_at, ended_at, is_active, message_count, duration_minutes
		FROM sessions ` + where + `
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := DB.QueryContext(ctx, q, userID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("ListSessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// EndSession marks the session completed and records its duration in
// whole minutes.
func EndSession(id, userID uuid.UUID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	now := time.Now()
	res, err := DB.ExecContext(ctx, `
		UPDATE sessions
		SET is_active = false,
		    ended_at = $1,
		    duration_minutes = CEIL(EXTRACT(EPOCH FROM ($1 - started_at)) / 60)
		WHERE id = $2 AND user_id = $3 AND is_active = true`,
		now, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("EndSession: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	return GetSession(id, userID)
}

// DeleteSession removes the session and all of its messages, returning how
// many messages were deleted.
func DeleteSession(id, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var owned bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1 AND user_id = $2)", id, userID,
	).Scan(&owned); err != nil {
		return 0, fmt.Errorf("check session: %w", err)
	}
	if !owned {
		return 0, ErrNotFound
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE session_id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete messages: %w", err)
	}
	deleted, _ := res.RowsAffected()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id); err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return deleted, nil
}

// AdminListSessions pages through all users' sessions with optional
// language/level/status filters.
func AdminListSessions(language, level, status string, page, size int) ([]models.Session, int, error) {
	page, size = clampPage(page, size)

	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	where := "WHERE 1=1"
	args := []interface{}{}
	if language != "" {
		args = append(args, language)
		where += fmt.Sprintf(" AND language = $%d", len(args))
	}
	if level != "" {
		args = append(args, level)
		where += fmt.Sprintf(" AND level = $%d", len(args))
	}
	switch status {
	case "active":
		where += " AND is_active = true"
	case "completed":
		where += " AND is_active = false"
	}

	var total int
	if err := DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	args = append(args, size, (page-1)*size)
	q := fmt.Sprintf(`
		SELECT id, user_id, language, level, started_at, ended_at, is_active, message_count, duration_minutes
		FROM sessions %s
		ORDER BY started_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("AdminListSessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func scanSessions(rows *sql.Rows) ([]models.Session, error) {
	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		var endedAt sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Language, &s.Level, &s.StartedAt,
			&endedAt, &s.IsActive, &s.MessageCount, &s.Duration,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.EndedAt = nullTimeToPointer(endedAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
