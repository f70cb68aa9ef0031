// Package cue plays audible transition cues using the system beeper.
package cue

import (
	"github.com/gen2brain/beeep"
	"github.com/tbreslin/cadence/internal/ports"
)

// Tone frequencies and lengths for the three cues. The focus tone sits
// lower to feel grounding; breaks share a softer, shorter chime.
const (
	endFreq   = 880.0
	endMs     = 350
	focusFreq = 440.0
	focusMs   = 300
	breakFreq = 660.0
	breakMs   = 200
)

// Player implements ports.CuePlayer with gen2brain/beeep. Tones play on
// a separate goroutine and playback errors are dropped: a machine
// without an audio capability still gets a working timer.
type Player struct {
	enabled bool
}

// New creates a cue player. When enabled is false every cue is silent.
func New(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// SetEnabled toggles cue playback at runtime.
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	return p.enabled
}

// SessionEnd plays the end-of-session tone.
func (p *Player) SessionEnd() {
	p.play(endFreq, endMs)
}

// EnterFocus plays the grounding tone for entering a focus session.
func (p *Player) EnterFocus() {
	p.play(focusFreq, focusMs)
}

// EnterBreak plays the softer tone shared by both break modes.
func (p *Player) EnterBreak() {
	p.play(breakFreq, breakMs)
}

func (p *Player) play(freq float64, ms int) {
	if !p.enabled {
		return
	}
	go func() {
		_ = beeep.Beep(freq, ms)
	}()
}

// Ensure Player implements ports.CuePlayer.
var _ ports.CuePlayer = (*Player)(nil)
