package valtree

import (
	"fmt"
	"strings"
)

// Errors collects path-qualified diagnostics during a validation walk. Each
// message is anchored to the path of the value being validated, rendered as
// "[/segment/segment] message".
//
// The path is an explicit stack: composites push a segment before walking
// their children, relabel it per key or index, and pop it on every exit path.
// The push/set/pop protocol assumes strict call-stack nesting, so one Errors
// value must never be shared by concurrent validations.
type Errors struct {
	messages []string
	path     []string
}

// NewErrors returns an empty collector.
func NewErrors() *Errors { return &Errors{} }

// Count returns the number of collected diagnostics.
func (e *Errors) Count() int { return len(e.messages) }

// Messages returns the collected diagnostics in the order they were added.
func (e *Errors) Messages() []string {
	return append([]string(nil), e.messages...)
}

// Add appends a diagnostic anchored to the current path.
func (e *Errors) Add(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.messages = append(e.messages, "[/"+strings.Join(e.path, "/")+"] "+msg)
}

// Rollback drops the last n diagnostics. Alternative selection uses it to
// discard messages logged by candidates that lost the selection.
func (e *Errors) Rollback(n int) {
	if n > 0 {
		e.messages = e.messages[:len(e.messages)-n]
	}
}

// pushPath opens a new path segment. Composites relabel it with setPath once
// the concrete key or index is known.
func (e *Errors) pushPath(label string) {
	if label == "" {
		label = "?"
	}
	e.path = append(e.path, label)
}

// setPath relabels the most recently opened segment.
func (e *Errors) setPath(label string) {
	if len(e.path) == 0 {
		panic("valtree: setPath without an open path segment")
	}
	e.path[len(e.path)-1] = label
}

// popPath closes the most recently opened segment. An unmatched pop is a
// defect in rule code, not bad input, and panics.
func (e *Errors) popPath() {
	if len(e.path) == 0 {
		panic("valtree: popPath without an open path segment")
	}
	e.path = e.path[:len(e.path)-1]
}
