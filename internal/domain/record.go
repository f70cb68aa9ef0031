package domain

import "time"

// SessionRecord is an append-only journal entry for a completed session.
// The live timer state is never persisted; only completions are.
type SessionRecord struct {
	ID          string
	Type        SessionType
	Seconds     int
	CompletedAt time.Time
	GitBranch   string
	GitCommit   string
}

// NewSessionRecord creates a journal entry for a session that just
// expired.
func NewSessionRecord(t SessionType, seconds int) *SessionRecord {
	return &SessionRecord{
		ID:          generateID(),
		Type:        t,
		Seconds:     seconds,
		CompletedAt: time.Now(),
	}
}

// SetGitContext tags the record with the repository state it was
// completed in.
func (r *SessionRecord) SetGitContext(branch, commit string) {
	r.GitBranch = branch
	r.GitCommit = commit
}

// DailyStats aggregates journal entries for a single day.
type DailyStats struct {
	Date            time.Time
	FocusSessions   int
	BreaksTaken     int
	CyclesCompleted int
	FocusTime       time.Duration
}
