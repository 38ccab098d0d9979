package reactive

// Listener is anything that can be notified when a dependency changes.
// The session implements Listener: MarkDirty schedules a re-render flush.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication when the same listener subscribes twice.
	ID() uint64
}

// Dispatcher runs functions on a serialized event loop.
// Timer callbacks and any off-loop work must go through Dispatch so that
// signal writes are never concurrent with rendering.
type Dispatcher interface {
	Dispatch(fn func())
}

// Cleanup cancels a scheduled timer or subscription.
type Cleanup func()
