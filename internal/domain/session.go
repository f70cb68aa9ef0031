// Package domain holds the core timer entities: session types, the
// session pattern, per-mode durations, and the sequencer that walks a
// pattern.
package domain

import "fmt"

// SessionType represents the type of interval in a pattern.
type SessionType string

const (
	SessionTypeFocus      SessionType = "focus"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// SessionTypes lists all valid session types in display order.
var SessionTypes = []SessionType{
	SessionTypeFocus,
	SessionTypeShortBreak,
	SessionTypeLongBreak,
}

// Label returns a human-readable label for the session type.
func (t SessionType) Label() string {
	switch t {
	case SessionTypeFocus:
		return "Focus"
	case SessionTypeShortBreak:
		return "Short Break"
	case SessionTypeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak returns true for either break type.
func (t SessionType) IsBreak() bool {
	return t == SessionTypeShortBreak || t == SessionTypeLongBreak
}

// FormatTime renders a second count as a zero-padded MM:SS string.
// Minutes are not clamped, so durations beyond 99 minutes render with
// three or more minute digits.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
