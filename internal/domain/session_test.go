package domain

import "testing"

func TestSessionType_Label(t *testing.T) {
	tests := []struct {
		sessionType SessionType
		want        string
	}{
		{SessionTypeFocus, "Focus"},
		{SessionTypeShortBreak, "Short Break"},
		{SessionTypeLongBreak, "Long Break"},
		{SessionType("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.sessionType.Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.sessionType, got, tt.want)
		}
	}
}

func TestSessionType_IsBreak(t *testing.T) {
	if SessionTypeFocus.IsBreak() {
		t.Error("IsBreak(focus) = true, want false")
	}
	if !SessionTypeShortBreak.IsBreak() {
		t.Error("IsBreak(short_break) = false, want true")
	}
	if !SessionTypeLongBreak.IsBreak() {
		t.Error("IsBreak(long_break) = false, want true")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{1500, "25:00"},
		{3599, "59:59"},
		{6000, "100:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestNewSessionRecord(t *testing.T) {
	record := NewSessionRecord(SessionTypeFocus, 1500)

	if record.ID == "" {
		t.Error("NewSessionRecord() ID is empty")
	}
	if record.Type != SessionTypeFocus {
		t.Errorf("Type = %v, want %v", record.Type, SessionTypeFocus)
	}
	if record.Seconds != 1500 {
		t.Errorf("Seconds = %d, want 1500", record.Seconds)
	}
	if record.CompletedAt.IsZero() {
		t.Error("CompletedAt is zero")
	}

	record.SetGitContext("main", "abc123")
	if record.GitBranch != "main" || record.GitCommit != "abc123" {
		t.Errorf("git context = (%q, %q), want (main, abc123)", record.GitBranch, record.GitCommit)
	}
}
