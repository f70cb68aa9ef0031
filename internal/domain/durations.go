package domain

import (
	"strconv"
	"strings"
)

// Default session lengths in minutes.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Durations maps each session type to its configured length in minutes.
// Entries are independently editable; invalid input coerces to 0 rather
// than being rejected, which makes the next entry of that mode expire on
// its first tick.
type Durations struct {
	minutes map[SessionType]int
}

// NewDurations returns a registry with the standard 25/5/15 defaults.
func NewDurations() *Durations {
	return &Durations{minutes: map[SessionType]int{
		SessionTypeFocus:      DefaultFocusMinutes,
		SessionTypeShortBreak: DefaultShortBreakMinutes,
		SessionTypeLongBreak:  DefaultLongBreakMinutes,
	}}
}

// Set replaces the length of one session type. Negative values coerce
// to 0.
func (d *Durations) Set(t SessionType, minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	d.minutes[t] = minutes
}

// SetText parses minutesText as an integer minute count and stores it.
// Non-numeric or empty input coerces to 0.
func (d *Durations) SetText(t SessionType, minutesText string) {
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil {
		minutes = 0
	}
	d.Set(t, minutes)
}

// Minutes returns the configured length of a session type.
func (d *Durations) Minutes(t SessionType) int {
	return d.minutes[t]
}

// Seconds returns the configured length of a session type in seconds.
func (d *Durations) Seconds(t SessionType) int {
	return d.minutes[t] * 60
}
