package types

// Chart is a server-side renderer that turns the current mixer state into an SVG document.
// Render derives a fresh frame; SVG returns the most recently rendered frame without
// recomputing, which is what the HTTP layer serves between broadcasts.
type Chart interface {
	Render() ([]byte, error)
	SVG() []byte
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
