package domain

// Counters tracks session completion totals for the current process.
// FocusSessionsCompleted increments exactly once per focus expiry, never
// on a manual mode switch; CyclesCompleted increments exactly when the
// step index wraps back to 0.
type Counters struct {
	FocusSessionsCompleted int
	CyclesCompleted        int
}
