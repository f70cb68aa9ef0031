package domain

// Sequencer owns the session pattern and the current step index. It
// computes the next mode on expiry and detects when a full cycle has
// been traversed.
type Sequencer struct {
	pattern []SessionType
	step    int
}

// NewSequencer creates a sequencer positioned at step 0 of the given
// pattern. A nil or empty pattern falls back to the default cycle.
func NewSequencer(pattern []SessionType) *Sequencer {
	if len(pattern) == 0 {
		pattern = DefaultPattern()
	}
	s := &Sequencer{}
	s.Replace(pattern)
	return s
}

// Advance moves to the next step and returns its mode, along with
// whether the step index wrapped back to 0 (one full cycle completed).
// An empty pattern defensively yields Focus without wrapping.
func (s *Sequencer) Advance() (next SessionType, wrapped bool) {
	if len(s.pattern) == 0 {
		return SessionTypeFocus, false
	}
	s.step = (s.step + 1) % len(s.pattern)
	return s.pattern[s.step], s.step == 0
}

// Select moves the step index to the first occurrence of mode and
// reports whether it was found. When the mode is absent from the
// pattern the step index is left untouched; a manual override does not
// require the chosen mode to belong to the active pattern.
func (s *Sequencer) Select(mode SessionType) bool {
	for i, t := range s.pattern {
		if t == mode {
			s.step = i
			return true
		}
	}
	return false
}

// Replace installs a new pattern and resets the step index to 0.
func (s *Sequencer) Replace(pattern []SessionType) {
	s.pattern = make([]SessionType, len(pattern))
	copy(s.pattern, pattern)
	s.step = 0
}

// Pattern returns a copy of the current pattern.
func (s *Sequencer) Pattern() []SessionType {
	out := make([]SessionType, len(s.pattern))
	copy(out, s.pattern)
	return out
}

// Step returns the current step index.
func (s *Sequencer) Step() int {
	return s.step
}

// Current returns the mode at the current step index.
func (s *Sequencer) Current() SessionType {
	if len(s.pattern) == 0 {
		return SessionTypeFocus
	}
	return s.pattern[s.step]
}

// Len returns the pattern length.
func (s *Sequencer) Len() int {
	return len(s.pattern)
}
