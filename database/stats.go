package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GroupStat aggregates sessions/messages/duration under one key
// (a language or a level).
type GroupStat struct {
	Key             string  `json:"key"`
	Sessions        int     `json:"sessions"`
	Messages        int     `json:"messages"`
	TotalDuration   int     `json:"totalDuration"`
	AverageDuration float64 `json:"averageDuration"`
}

// DayCount is one day of message activity.
type DayCount struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
}

// UserOverview summarizes one user's practice history.
type UserOverview struct {
	TotalSessions     int     `json:"totalSessions"`
	ActiveSessions    int     `json:"activeSessions"`
	CompletedSessions int     `json:"completedSessions"`
	TotalDuration     int     `json:"totalDuration"`
	AverageDuration   float64 `json:"averageDuration"`
	TotalMessages     int     `json:"totalMessages"`
	UserMessages      int     `json:"userMessages"`
	BotMessages       int     `json:"botMessages"`
}

// UserStats gathers the per-user dashboard numbers.
func UserStats(userID uuid.UUID) (*UserOverview, []GroupStat, []GroupStat, []DayCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	var o UserOverview
	const overviewQ = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE NOT is_active),
		       COALESCE(SUM(duration_minutes) FILTER (WHERE NOT is_active), 0),
		       COALESCE(AVG(duration_minutes) FILTER (WHERE NOT is_active), 0)
		FROM sessions
		WHERE user_id = $1`
	if err := DB.QueryRowContext(ctx, overviewQ, userID).Scan(
		&o.TotalSessions, &o.ActiveSessions, &o.CompletedSessions,
		&o.TotalDuration, &o.AverageDuration,
	); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("user session overview: %w", err)
	}

	const messagesQ = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE m.role = 'user'),
		       COUNT(*) FILTER (WHERE m.role = 'bot')
		FROM messages m
		JOIN sessions s ON s.id = m.session_id
		WHERE s.user_id = $1`
	if err := DB.QueryRowContext(ctx, messagesQ, userID).Scan(
		&o.TotalMessages, &o.UserMessages, &o.BotMessages,
	); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("user message overview: %w", err)
	}

	byLanguage, err := userGroupStats(ctx, userID, "language")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	byLevel, err := userGroupStats(ctx, userID, "level")
	if err != nil {
		return nil, nil, nil, nil, err
	}

	daily, err := dailyActivity(ctx, "s.user_id = $1", userID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return &o, byLanguage, byLevel, daily, nil
}

// userGroupStats aggregates a user's sessions and messages by language or
// level. column is a fixed identifier, never user input. Message totals come
// from the denormalized per-session counter.
func userGroupStats(ctx context.Context, userID uuid.UUID, column string) ([]GroupStat, error) {
	q := fmt.Sprintf(`
		SELECT %[1]s,
		       COUNT(*),
		       COALESCE(SUM(message_count), 0),
		       COALESCE(SUM(duration_minutes), 0),
		       COALESCE(AVG(duration_minutes), 0)
		FROM sessions
		WHERE user_id = $1
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC`, column)

	rows, err := DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("group stats by %s: %w", column, err)
	}
	defer rows.Close()

	stats := []GroupStat{}
	for rows.Next() {
		var g GroupStat
		if err := rows.Scan(&g.Key, &g.Sessions, &g.Messages, &g.TotalDuration, &g.AverageDuration); err != nil {
			return nil, fmt.Errorf("scan group stat: %w", err)
		}
		stats = append(stats, g)
	}
	return stats, rows.Err()
}

func dailyActivity(ctx context.Context, where string, args ...interface{}) ([]DayCount, error) {
	// The 30-day cutoff takes the placeholder after the caller's args.
	q := `
		SELECT TO_CHAR(m.timestamp::date, 'YYYY-MM-DD'), COUNT(*)
		FROM messages m
		JOIN sessions s ON s.id = m.session_id
		WHERE m.timestamp >= $` + fmt.Sprint(len(args)+1) + `
		  AND ` + where + `
		GROUP BY m.timestamp::date
		ORDER BY m.timestamp::date`

	args = append(args, time.Now().AddDate(0, 0, -30))

	rows, err := DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	defer rows.Close()

	days := []DayCount{}
	for rows.Next() {
		var d DayCount
		if err := rows.Scan(&d.Date, &d.Messages); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// GlobalOverview summarizes platform-wide usage for the admin dashboard.
type GlobalOverview struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalSessions          int     `json:"totalSessions"`
	TotalMessages          int     `json:"totalMessages"`
	ActiveSessions         int     `json:"activeSessions"`
	NewUsers               int     `json:"newUsers"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
}

// ActiveUser is one row of the most-active-users board.
type ActiveUser struct {
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MessageCount int       `json:"messageCount"`
}

// GlobalStats gathers the admin dashboard numbers.
func GlobalStats() (*GlobalOverview, []GroupStat, []GroupStat, []DayCount, []ActiveUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -30)

	var o GlobalOverview
	const overviewQ = `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM sessions),
		       (SELECT COUNT(*) FROM messages),
		       (SELECT COUNT(*) FROM sessions WHERE is_active),
		       (SELECT COUNT(*) FROM users WHERE created_at >= $1),
		       (SELECT COALESCE(AVG(duration_minutes), 0)
		        FROM sessions WHERE NOT is_active AND duration_minutes > 0)`
	if err := DB.QueryRowContext(ctx, overviewQ, cutoff).Scan(
		&o.TotalUsers, &o.TotalSessions, &o.TotalMessages,
		&o.ActiveSessions, &o.NewUsers, &o.AverageSessionDuration,
	); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("global overview: %w", err)
	}

	byLanguage, err := globalGroupStats(ctx, "language")
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	byLevel, err := globalGroupStats(ctx, "level")
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	daily, err := dailyActivity(ctx, "1=1")
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	const activeQ = `
		SELECT u.id, u.name, u.email, COUNT(m.id) AS message_count
		FROM messages m
		JOIN sessions s ON s.id = m.session_id
		JOIN users u ON u.id = s.user_id
		GROUP BY u.id, u.name, u.email
		ORDER BY message_count DESC
		LIMIT 10`
	rows, err := DB.QueryContext(ctx, activeQ)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("most active users: %w", err)
	}
	defer rows.Close()

	active := []ActiveUser{}
	for rows.Next() {
		var a ActiveUser
		if err := rows.Scan(&a.UserID, &a.Name, &a.Email, &a.MessageCount); err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("scan active user: %w", err)
		}
		active = append(active, a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, nil, nil, err
	}

	return &o, byLanguage, byLevel, daily, active, nil
}

func globalGroupStats(ctx context.Context, column string) ([]GroupStat, error) {
	q := fmt.Sprintf(`
		SELECT %[1]s,
		       COUNT(*),
		       COALESCE(SUM(message_count), 0),
		       COALESCE(SUM(duration_minutes), 0),
		       COALESCE(AVG(duration_minutes), 0)
		FROM sessions
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC`, column)

	rows, err := DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("group stats by %s: %w", column, err)
	}
	defer rows.Close()

	stats := []GroupStat{}
	for rows.Next() {
		var g GroupStat
		if err := rows.Scan(&g.Key, &g.Sessions, &g.Messages, &g.TotalDuration, &g.AverageDuration); err != nil {
			return nil, fmt.Errorf("scan group stat: %w", err)
		}
		stats = append(stats, g)
	}
	return stats, rows.Err()
}
