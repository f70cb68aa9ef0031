package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tbreslin/cadence/internal/domain"
)

// RecordSession appends a completed session to the journal.
func (l *sqliteLog) RecordSession(ctx context.Context, record *domain.SessionRecord) error {
	query := `
		INSERT INTO sessions (id, type, seconds, completed_at, git_branch, git_commit)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := l.db.ExecContext(ctx, query,
		record.ID,
		string(record.Type),
		record.Seconds,
		record.CompletedAt,
		record.GitBranch,
		record.GitCommit,
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	return nil
}

// RecordCycle appends a completed full cycle to the journal.
func (l *sqliteLog) RecordCycle(ctx context.Context, completedAt time.Time) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO cycles (completed_at) VALUES (?)", completedAt)
	if err != nil {
		return fmt.Errorf("failed to record cycle: %w", err)
	}

	return nil
}

// RecentSessions retrieves completed sessions since a point in time,
// newest first.
func (l *sqliteLog) RecentSessions(ctx context.Context, since time.Time) ([]*domain.SessionRecord, error) {
	query := `
		SELECT id, type, seconds, completed_at, git_branch, git_commit
		FROM sessions
		WHERE completed_at >= ?
		ORDER BY completed_at DESC
	`

	rows, err := l.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.SessionRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DailyStats returns aggregated statistics for a specific date.
func (l *sqliteLog) DailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	query := `
		SELECT
			COUNT(CASE WHEN type = 'focus' THEN 1 END) AS focus_sessions,
			COUNT(CASE WHEN type IN ('short_break', 'long_break') THEN 1 END) AS breaks,
			COALESCE(SUM(CASE WHEN type = 'focus' THEN seconds END), 0) AS focus_seconds
		FROM sessions
		WHERE completed_at >= ? AND completed_at < ?
	`

	stats := &domain.DailyStats{Date: startOfDay}
	var focusSeconds int64
	err := l.db.QueryRowContext(ctx, query, startOfDay, endOfDay).
		Scan(&stats.FocusSessions, &stats.BreaksTaken, &focusSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	stats.FocusTime = time.Duration(focusSeconds) * time.Second

	err = l.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cycles WHERE completed_at >= ? AND completed_at < ?",
		startOfDay, endOfDay).Scan(&stats.CyclesCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle count: %w", err)
	}

	return stats, nil
}

// scanRecord reads one session row.
func scanRecord(rows *sql.Rows) (*domain.SessionRecord, error) {
	var record domain.SessionRecord
	var sessionType string
	var branch, commit sql.NullString

	err := rows.Scan(&record.ID, &sessionType, &record.Seconds,
		&record.CompletedAt, &branch, &commit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	record.Type = domain.SessionType(sessionType)
	record.GitBranch = branch.String
	record.GitCommit = commit.String

	return &record, nil
}
