package types

// Sensor is the broadcast surface of the system. Components that mutate or derive state
// (the mixer, the chart renderers) invoke sensor callbacks; anything interested in those
// events registers callbacks against a sensor and connects it to the producing component.
//
// Unlike a catch-all "any event" channel, every notification carries an explicit payload:
// observers are told what changed (a signal was added, removed, or updated; a frame was
// rendered) rather than being left to re-derive it.
type Sensor interface {
	// RegisterOnSignalAdded registers callbacks invoked after a signal joins the mixer.
	RegisterOnSignalAdded(callback ...func(c ComponentMetadata, s SignalSnapshot))

	// RegisterOnSignalRemoved registers callbacks invoked after a signal leaves the mixer.
	RegisterOnSignalRemoved(callback ...func(c ComponentMetadata, s SignalSnapshot))

	// RegisterOnSignalUpdated registers callbacks invoked after a signal's parameters change.
	RegisterOnSignalUpdated(callback ...func(c ComponentMetadata, before SignalSnapshot, after SignalSnapshot))

	// RegisterOnFrameRendered registers callbacks invoked after a chart produces a frame.
	RegisterOnFrameRendered(callback ...func(c ComponentMetadata, chart string, bytes int))

	// RegisterOnError registers callbacks invoked when a component fails to derive or render.
	RegisterOnError(callback ...func(c ComponentMetadata, err error))

	// InvokeOnSignalAdded triggers the OnSignalAdded callbacks.
	InvokeOnSignalAdded(c ComponentMetadata, s SignalSnapshot)

	// InvokeOnSignalRemoved triggers the OnSignalRemoved callbacks.
	InvokeOnSignalRemoved(c ComponentMetadata, s SignalSnapshot)

	// InvokeOnSignalUpdated triggers the OnSignalUpdated callbacks.
	InvokeOnSignalUpdated(c ComponentMetadata, before SignalSnapshot, after SignalSnapshot)

	// InvokeOnFrameRendered triggers the OnFrameRendered callbacks.
	InvokeOnFrameRendered(c ComponentMetadata, chart string, bytes int)

	// InvokeOnError triggers the OnError callbacks.
	InvokeOnError(c ComponentMetadata, err error)

	// ConnectLogger attaches loggers for sensor-level event logging.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a log message to all attached loggers at the given level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the sensor's metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the sensor's name and id.
	SetComponentMetadata(name string, id string)
}
