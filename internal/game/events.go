package game

// Event is one discrete input event from the platform layer. The core
// consumes these; it never touches the keyboard itself.
type Event int

const (
	EventUp Event = iota
	EventDown
	EventLeft
	EventRight
	// EventQuit asks the driver to terminate the loop. Quitting is a
	// value checked after each input drain, not an exception.
	EventQuit
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}
