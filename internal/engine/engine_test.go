package engine

import (
	"testing"

	"github.com/tbreslin/cadence/internal/domain"
)

// recordingCues counts cue invocations so tests can assert exactly-once
// dispatch around expiries.
type recordingCues struct {
	sessionEnd int
	enterFocus int
	enterBreak int
}

func (c *recordingCues) SessionEnd() { c.sessionEnd++ }
func (c *recordingCues) EnterFocus() { c.enterFocus++ }
func (c *recordingCues) EnterBreak() { c.enterBreak++ }

// tickSeconds drives n elapsed seconds through the engine.
func tickSeconds(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestNew_StartsPausedWithFullCountdown(t *testing.T) {
	e := New(nil, nil, nil)

	if e.Running() {
		t.Error("Running() = true, want false for a new engine")
	}
	if e.Mode() != domain.SessionTypeFocus {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeFocus)
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 25*60)
	}
	if e.StepIndex() != 0 {
		t.Errorf("StepIndex() = %d, want 0", e.StepIndex())
	}
}

func TestTick_PausedIsInert(t *testing.T) {
	e := New(nil, nil, nil)

	tickSeconds(e, 10)

	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d after paused ticks, want %d", e.Remaining(), 25*60)
	}
}

func TestTick_Decrements(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()

	tickSeconds(e, 3)

	if e.Remaining() != 25*60-3 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 25*60-3)
	}
	if !e.Running() {
		t.Error("Running() = false, want true")
	}
}

func TestExpiry_DefaultPatternFirstFocus(t *testing.T) {
	cues := &recordingCues{}
	e := New(nil, nil, cues)
	e.Start()

	// Run the first focus session to completion.
	tickSeconds(e, 25*60)

	counters := e.Counters()
	if counters.FocusSessionsCompleted != 1 {
		t.Errorf("FocusSessionsCompleted = %d, want 1", counters.FocusSessionsCompleted)
	}
	if counters.CyclesCompleted != 0 {
		t.Errorf("CyclesCompleted = %d, want 0", counters.CyclesCompleted)
	}
	if e.Mode() != domain.SessionTypeShortBreak {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeShortBreak)
	}
	if e.Remaining() != 5*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 5*60)
	}
	if !e.Running() {
		t.Error("Running() = false, want true (auto-continue)")
	}
	if e.StepIndex() != 1 {
		t.Errorf("StepIndex() = %d, want 1", e.StepIndex())
	}
	if cues.sessionEnd != 1 {
		t.Errorf("sessionEnd cues = %d, want 1", cues.sessionEnd)
	}
	if cues.enterBreak != 1 {
		t.Errorf("enterBreak cues = %d, want 1", cues.enterBreak)
	}
	if cues.enterFocus != 0 {
		t.Errorf("enterFocus cues = %d, want 0", cues.enterFocus)
	}
}

func TestExpiry_CountersOverManyExpiries(t *testing.T) {
	durations := domain.NewDurations()
	durations.Set(domain.SessionTypeFocus, 1)
	durations.Set(domain.SessionTypeShortBreak, 1)

	pattern := []domain.SessionType{domain.SessionTypeFocus, domain.SessionTypeShortBreak}
	e := New(pattern, durations, nil)
	e.Start()

	// 7 expiries: F S F S F S F -> 4 focus completions, 3 wraps.
	tickSeconds(e, 7*60)

	counters := e.Counters()
	if counters.FocusSessionsCompleted != 4 {
		t.Errorf("FocusSessionsCompleted = %d, want 4", counters.FocusSessionsCompleted)
	}
	if counters.CyclesCompleted != 3 {
		t.Errorf("CyclesCompleted = %d, want 3", counters.CyclesCompleted)
	}
	if e.Mode() != domain.SessionTypeShortBreak {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeShortBreak)
	}
}

func TestExpiry_FullCycleBumpsCycleCounter(t *testing.T) {
	durations := domain.NewDurations()
	durations.Set(domain.SessionTypeFocus, 1)
	durations.Set(domain.SessionTypeShortBreak, 1)
	durations.Set(domain.SessionTypeLongBreak, 1)

	e := New(domain.DefaultPattern(), durations, nil)
	e.Start()

	// Traverse all six steps of the default pattern.
	tickSeconds(e, 6*60)

	counters := e.Counters()
	if counters.FocusSessionsCompleted != 3 {
		t.Errorf("FocusSessionsCompleted = %d, want 3", counters.FocusSessionsCompleted)
	}
	if counters.CyclesCompleted != 1 {
		t.Errorf("CyclesCompleted = %d, want 1", counters.CyclesCompleted)
	}
	if e.Mode() != domain.SessionTypeFocus {
		t.Errorf("Mode() = %v, want %v after wrap", e.Mode(), domain.SessionTypeFocus)
	}
	if e.StepIndex() != 0 {
		t.Errorf("StepIndex() = %d, want 0 after wrap", e.StepIndex())
	}
}

func TestExpiry_OnCompleteHook(t *testing.T) {
	durations := domain.NewDurations()
	durations.Set(domain.SessionTypeFocus, 1)
	durations.Set(domain.SessionTypeShortBreak, 1)

	e := New([]domain.SessionType{domain.SessionTypeFocus, domain.SessionTypeShortBreak}, durations, nil)

	var gotCompleted []domain.SessionType
	var gotWrapped []bool
	e.SetOnComplete(func(completed domain.SessionType, wrapped bool) {
		gotCompleted = append(gotCompleted, completed)
		gotWrapped = append(gotWrapped, wrapped)
	})

	e.Start()
	tickSeconds(e, 2*60)

	if len(gotCompleted) != 2 {
		t.Fatalf("onComplete fired %d times, want 2", len(gotCompleted))
	}
	if gotCompleted[0] != domain.SessionTypeFocus || gotWrapped[0] {
		t.Errorf("first completion = (%v, %v), want (focus, false)", gotCompleted[0], gotWrapped[0])
	}
	if gotCompleted[1] != domain.SessionTypeShortBreak || !gotWrapped[1] {
		t.Errorf("second completion = (%v, %v), want (short_break, true)", gotCompleted[1], gotWrapped[1])
	}
}

func TestExpiry_SameModeNoEntryCue(t *testing.T) {
	durations := domain.NewDurations()
	durations.Set(domain.SessionTypeFocus, 1)

	cues := &recordingCues{}
	e := New([]domain.SessionType{domain.SessionTypeFocus, domain.SessionTypeFocus}, durations, cues)
	e.Start()

	tickSeconds(e, 60)

	if cues.sessionEnd != 1 {
		t.Errorf("sessionEnd cues = %d, want 1", cues.sessionEnd)
	}
	if cues.enterFocus != 0 {
		t.Errorf("enterFocus cues = %d, want 0 when mode is unchanged", cues.enterFocus)
	}
}

func TestReset_Idempotent(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()
	tickSeconds(e, 90)

	e.Reset()

	if e.Running() {
		t.Error("Running() = true after Reset, want false")
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d after Reset, want %d", e.Remaining(), 25*60)
	}

	e.Reset()

	if e.Running() || e.Remaining() != 25*60 {
		t.Errorf("second Reset changed state: running=%v remaining=%d", e.Running(), e.Remaining())
	}
}

func TestToggle(t *testing.T) {
	e := New(nil, nil, nil)

	e.Toggle()
	if !e.Running() {
		t.Error("Running() = false after first Toggle, want true")
	}
	e.Toggle()
	if e.Running() {
		t.Error("Running() = true after second Toggle, want false")
	}
}

func TestSelectMode(t *testing.T) {
	cues := &recordingCues{}
	e := New(nil, nil, cues)
	e.Start()
	tickSeconds(e, 30)

	e.SelectMode(domain.SessionTypeLongBreak)

	if e.Mode() != domain.SessionTypeLongBreak {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeLongBreak)
	}
	if e.StepIndex() != 5 {
		t.Errorf("StepIndex() = %d, want 5", e.StepIndex())
	}
	if e.Remaining() != 15*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 15*60)
	}
	if e.Running() {
		t.Error("Running() = true after SelectMode, want false")
	}
	if cues.sessionEnd != 0 {
		t.Errorf("sessionEnd cues = %d, want 0 for manual switch", cues.sessionEnd)
	}
	if cues.enterBreak != 1 {
		t.Errorf("enterBreak cues = %d, want 1", cues.enterBreak)
	}

	counters := e.Counters()
	if counters.FocusSessionsCompleted != 0 || counters.CyclesCompleted != 0 {
		t.Errorf("manual switch touched counters: %+v", counters)
	}
}

func TestSelectMode_AbsentFromPattern(t *testing.T) {
	e := New([]domain.SessionType{domain.SessionTypeFocus, domain.SessionTypeShortBreak}, nil, nil)

	e.SelectMode(domain.SessionTypeLongBreak)

	if e.Mode() != domain.SessionTypeLongBreak {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeLongBreak)
	}
	if e.StepIndex() != 0 {
		t.Errorf("StepIndex() = %d, want 0 (untouched)", e.StepIndex())
	}
	if e.Remaining() != 15*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 15*60)
	}
}

func TestSetDuration_InactiveModeLeavesCountdown(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()
	tickSeconds(e, 10)

	e.SetDuration(domain.SessionTypeShortBreak, "10")

	if e.Remaining() != 25*60-10 {
		t.Errorf("Remaining() = %d, want %d (live countdown untouched)", e.Remaining(), 25*60-10)
	}
	if !e.Running() {
		t.Error("Running() = false, want true")
	}
	if e.Durations().Minutes(domain.SessionTypeShortBreak) != 10 {
		t.Errorf("Minutes(short_break) = %d, want 10", e.Durations().Minutes(domain.SessionTypeShortBreak))
	}
}

func TestSetDuration_ActiveModeResetsAndStops(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()
	tickSeconds(e, 10)

	e.SetDuration(domain.SessionTypeFocus, "10")

	if e.Remaining() != 10*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 10*60)
	}
	if e.Running() {
		t.Error("Running() = true after active-mode edit, want false")
	}
	// The countdown never exceeds the mode's configured length.
	if e.Remaining() > e.Durations().Seconds(e.Mode()) {
		t.Errorf("Remaining() = %d exceeds configured %d", e.Remaining(), e.Durations().Seconds(e.Mode()))
	}
}

func TestSetDuration_InvalidTextCoercesToZero(t *testing.T) {
	e := New(nil, nil, nil)

	e.SetDuration(domain.SessionTypeFocus, "abc")

	if e.Durations().Minutes(domain.SessionTypeFocus) != 0 {
		t.Errorf("Minutes(focus) = %d, want 0", e.Durations().Minutes(domain.SessionTypeFocus))
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", e.Remaining())
	}

	// A zero-length mode expires on its first running tick.
	e.Start()
	e.Tick()

	if e.Mode() != domain.SessionTypeShortBreak {
		t.Errorf("Mode() = %v, want %v after immediate expiry", e.Mode(), domain.SessionTypeShortBreak)
	}
	if e.Counters().FocusSessionsCompleted != 1 {
		t.Errorf("FocusSessionsCompleted = %d, want 1", e.Counters().FocusSessionsCompleted)
	}
}

func TestReplacePattern(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()
	tickSeconds(e, 30)

	pattern := []domain.SessionType{domain.SessionTypeLongBreak, domain.SessionTypeFocus}
	e.ReplacePattern(pattern)

	if e.StepIndex() != 0 {
		t.Errorf("StepIndex() = %d, want 0", e.StepIndex())
	}
	if e.Mode() != domain.SessionTypeLongBreak {
		t.Errorf("Mode() = %v, want %v", e.Mode(), domain.SessionTypeLongBreak)
	}
	if e.Remaining() != 15*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 15*60)
	}
	if e.Running() {
		t.Error("Running() = true after ReplacePattern, want false")
	}
}

func TestReplacePattern_EmptyIsNoop(t *testing.T) {
	e := New(nil, nil, nil)
	e.Start()
	tickSeconds(e, 5)

	e.ReplacePattern(nil)

	if e.Remaining() != 25*60-5 {
		t.Errorf("Remaining() = %d, want %d (state untouched)", e.Remaining(), 25*60-5)
	}
	if !e.Running() {
		t.Error("Running() = false, want true (state untouched)")
	}
	if len(e.Pattern()) != 6 {
		t.Errorf("len(Pattern()) = %d, want 6", len(e.Pattern()))
	}
}

func TestProgress(t *testing.T) {
	e := New(nil, nil, nil)

	if e.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0 at full countdown", e.Progress())
	}

	e.Start()
	tickSeconds(e, 25*30) // half of a 25 minute focus block

	if got := e.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
}

func TestProgress_ZeroDuration(t *testing.T) {
	e := New(nil, nil, nil)
	e.SetDuration(domain.SessionTypeFocus, "0")

	if e.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1 for zero-length mode", e.Progress())
	}
}
