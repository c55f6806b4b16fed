package verification

import "time"

const (
	DefaultOpen  = 3 * time.Hour
	DefaultGrace = 1 * time.Hour
)

// Window bounds when a code may be issued and how long it stays valid,
// both relative to the booking's scheduled start.
type Window struct {
	Open  time.Duration
	Grace time.Duration
}

func NewWindow(open, grace time.Duration) (Window, error) {
	if open < 0 || grace < 0 {
		return Window{}, ErrInvalidWindow
	}
	return Window{Open: open, Grace: grace}, nil
}

func DefaultWindow() Window {
	return Window{Open: DefaultOpen, Grace: DefaultGrace}
}

// CanIssue reports whether now falls in [start-Open, start].
func (w Window) CanIssue(start, now time.Time) bool {
	return !now.Before(start.Add(-w.Open)) && !now.After(start)
}

func (w Window) ExpiresAt(start time.Time) time.Time {
	return start.Add(w.Grace)
}
