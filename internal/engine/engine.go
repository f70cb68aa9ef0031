// Package engine implements the countdown state machine: per-second
// ticking, automatic mode transitions, cycle counting, and cue dispatch.
//
// The engine is a plain state container. It is driven from a single
// goroutine (the TUI tick chain or the MCP driver's ticker); it does no
// locking of its own and never blocks.
package engine

import (
	"github.com/tbreslin/cadence/internal/domain"
	"github.com/tbreslin/cadence/internal/ports"
)

// CompletionFunc is invoked after a session expires naturally. completed
// is the mode that just finished and wrapped reports whether the expiry
// closed a full cycle. It fires for natural expiries only, never for
// manual mode switches.
type CompletionFunc func(completed domain.SessionType, wrapped bool)

// Engine owns the full timer state: current mode, remaining seconds,
// running flag, the sequencer, the duration registry, and the counters.
type Engine struct {
	seq       *domain.Sequencer
	durations *domain.Durations
	cues      ports.CuePlayer
	mode      domain.SessionType
	remaining int
	running   bool
	counters  domain.Counters

	onComplete CompletionFunc
}

// New creates a stopped engine positioned at the first step of pattern
// with a full countdown for that mode. A nil cue player disables cues.
func New(pattern []domain.SessionType, durations *domain.Durations, cues ports.CuePlayer) *Engine {
	if durations == nil {
		durations = domain.NewDurations()
	}
	if cues == nil {
		cues = ports.NopCuePlayer{}
	}
	seq := domain.NewSequencer(pattern)
	e := &Engine{
		seq:       seq,
		durations: durations,
		cues:      cues,
		mode:      seq.Current(),
	}
	e.remaining = durations.Seconds(e.mode)
	return e
}

// SetOnComplete installs the natural-expiry hook.
func (e *Engine) SetOnComplete(fn CompletionFunc) {
	e.onComplete = fn
}

// Start begins or resumes ticking. No-op if already running.
func (e *Engine) Start() {
	e.running = true
}

// Pause stops ticking without touching the countdown. No-op if already
// paused.
func (e *Engine) Pause() {
	e.running = false
}

// Toggle flips between running and paused.
func (e *Engine) Toggle() {
	e.running = !e.running
}

// Reset stops the engine and restores the full countdown for the
// current mode. Calling it twice in a row yields the same state as
// calling it once.
func (e *Engine) Reset() {
	e.running = false
	e.remaining = e.durations.Seconds(e.mode)
}

// Tick consumes one elapsed second. While paused it does nothing. When
// the countdown would drop below one second the session expires: the
// focus counter is bumped for focus sessions, the end cue plays, the
// sequencer advances (bumping the cycle counter on wrap), the entry cue
// plays if the mode changed, and the countdown restarts at the next
// mode's full duration with the engine still running.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	if e.remaining > 1 {
		e.remaining--
		return
	}
	e.expire()
}

func (e *Engine) expire() {
	completed := e.mode
	if completed == domain.SessionTypeFocus {
		e.counters.FocusSessionsCompleted++
	}
	e.cues.SessionEnd()

	next, wrapped := e.seq.Advance()
	if wrapped {
		e.counters.CyclesCompleted++
	}
	e.enterMode(next)
	e.remaining = e.durations.Seconds(next)

	if e.onComplete != nil {
		e.onComplete(completed, wrapped)
	}
}

// enterMode updates the current mode, firing the entry cue only when the
// mode actually changes.
func (e *Engine) enterMode(mode domain.SessionType) {
	if mode == e.mode {
		return
	}
	e.mode = mode
	if mode == domain.SessionTypeFocus {
		e.cues.EnterFocus()
	} else {
		e.cues.EnterBreak()
	}
}

// SelectMode switches to mode manually. The step index moves to the
// mode's first occurrence in the pattern when present and stays put
// otherwise. The countdown resets to the mode's full duration and the
// engine stops; manual switches never touch the completion counters.
func (e *Engine) SelectMode(mode domain.SessionType) {
	e.seq.Select(mode)
	e.enterMode(mode)
	e.remaining = e.durations.Seconds(mode)
	e.running = false
}

// SetDuration replaces the minute length of one session type, coercing
// invalid text to 0. Editing the currently active mode resets the live
// countdown to the new full duration and stops the engine, which keeps
// the countdown within the mode's configured bound; other modes pick up
// the new length the next time they are entered.
func (e *Engine) SetDuration(t domain.SessionType, minutesText string) {
	e.durations.SetText(t, minutesText)
	if t == e.mode {
		e.remaining = e.durations.Seconds(t)
		e.running = false
	}
}

// ReplacePattern installs an already-parsed pattern atomically: step
// index 0, current mode pattern[0], full countdown, engine stopped.
func (e *Engine) ReplacePattern(pattern []domain.SessionType) {
	if len(pattern) == 0 {
		return
	}
	e.seq.Replace(pattern)
	e.enterMode(pattern[0])
	e.remaining = e.durations.Seconds(pattern[0])
	e.running = false
}

// Mode returns the current session type.
func (e *Engine) Mode() domain.SessionType { return e.mode }

// Remaining returns the seconds left in the current countdown.
func (e *Engine) Remaining() int { return e.remaining }

// Running reports whether the engine is ticking.
func (e *Engine) Running() bool { return e.running }

// StepIndex returns the sequencer's current step.
func (e *Engine) StepIndex() int { return e.seq.Step() }

// Pattern returns a copy of the active pattern.
func (e *Engine) Pattern() []domain.SessionType { return e.seq.Pattern() }

// Counters returns the completion counters.
func (e *Engine) Counters() domain.Counters { return e.counters }

// Durations exposes the duration registry.
func (e *Engine) Durations() *domain.Durations { return e.durations }

// Progress returns completion of the current countdown in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.durations.Seconds(e.mode)
	if total == 0 {
		return 1
	}
	return float64(total-e.remaining) / float64(total)
}
