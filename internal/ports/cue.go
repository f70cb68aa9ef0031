// Package ports defines the interfaces between the timer core and its
// adapters (audio cues, persistence, git context).
package ports

// CuePlayer plays short audible cues on timer transitions. Each method
// corresponds to one state-machine hook and fires exactly once per
// transition. Implementations must never block the caller and must
// swallow playback failures; a missing audio capability never interrupts
// the timer.
type CuePlayer interface {
	// SessionEnd signals that the running session's countdown expired.
	SessionEnd()

	// EnterFocus plays the grounding tone when the mode changes to focus.
	EnterFocus()

	// EnterBreak plays the softer tone shared by both break modes.
	EnterBreak()
}

// NopCuePlayer is a CuePlayer that plays nothing.
type NopCuePlayer struct{}

func (NopCuePlayer) SessionEnd() {}
func (NopCuePlayer) EnterFocus() {}
func (NopCuePlayer) EnterBreak() {}
