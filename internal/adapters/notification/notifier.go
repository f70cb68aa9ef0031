// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/tbreslin/cadence/internal/config"
	"github.com/tbreslin/cadence/internal/domain"
)

// Notifier handles desktop notifications for session completions.
type Notifier struct {
	cfg *config.CuesConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.CuesConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifySessionComplete announces a natural session expiry and the mode
// the timer rolled into.
func (n *Notifier) NotifySessionComplete(completed, next domain.SessionType) error {
	var title, message string
	if completed == domain.SessionTypeFocus {
		title = "Focus complete"
		message = fmt.Sprintf("Nice work. Rolling into %s.", next.Label())
	} else {
		title = fmt.Sprintf("%s over", completed.Label())
		message = fmt.Sprintf("Back to it: %s is starting.", next.Label())
	}
	return n.Notify(title, message)
}

// IsEnabled returns true if desktop notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Notify
}
