package engine

// EventKind distinguishes what the caller should do with an emitted event.
type EventKind int

const (
	// EventLog is appended to the adventure log by the service.
	EventLog EventKind = iota
	// EventNotify is a user-facing toast; the view layer decides how to
	// render it, the engine never prints.
	EventNotify
)

// Event is a side effect emitted by an engine operation. Operations return
// the full list instead of writing anywhere themselves, so any front end
// (CLI, TUI) can render them its own way.
type Event struct {
	Kind EventKind
	Text string
}

func logEvent(text string) Event    { return Event{Kind: EventLog, Text: text} }
func notifyEvent(text string) Event { return Event{Kind: EventNotify, Text: text} }

// Notifications filters the user-facing subset.
func Notifications(events []Event) []string {
	var out []string
	for _, e := range events {
		if e.Kind == EventNotify {
			out = append(out, e.Text)
		}
	}
	return out
}
