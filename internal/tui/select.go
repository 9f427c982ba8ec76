package tui

import "log"

// SelectFunc receives the name of a pressed row. It stands in for navigation
// to a hike detail view, which does not exist yet.
type SelectFunc func(name string)

// LogSelection returns a SelectFunc that traces presses to l, or to the
// standard logger when l is nil.
func LogSelection(l *log.Logger) SelectFunc {
	if l == nil {
		l = log.Default()
	}
	return func(name string) {
		l.Printf("Pressed: %s", name)
	}
}
