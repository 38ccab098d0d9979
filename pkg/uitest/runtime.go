package uitest

import "sync/atomic"

var runtimeIDs atomic.Uint64

// Runtime is a fake session for component tests. Dispatch runs callbacks
// inline, frame callbacks queue until FlushFrames, and MarkDirty only
// counts. It satisfies toast.Runtime and reactive.Dispatcher.
type Runtime struct {
	id     uint64
	frames []func()
	dirty  int
}

// NewRuntime creates a fake runtime.
func NewRuntime() *Runtime {
	return &Runtime{id: runtimeIDs.Add(1)}
}

// Dispatch runs fn immediately on the calling goroutine.
func (r *Runtime) Dispatch(fn func()) {
	fn()
}

// NextFrame queues fn until the next FlushFrames.
func (r *Runtime) NextFrame(fn func()) {
	r.frames = append(r.frames, fn)
}

// FlushFrames runs all queued frame callbacks. Callbacks queued while
// flushing run in the same flush, matching the session's post-render
// behavior.
func (r *Runtime) FlushFrames() {
	for len(r.frames) > 0 {
		fns := r.frames
		r.frames = nil
		for _, fn := range fns {
			fn()
		}
	}
}

// MarkDirty records an invalidation.
func (r *Runtime) MarkDirty() {
	r.dirty++
}

// DirtyCount reports how many times MarkDirty was called.
func (r *Runtime) DirtyCount() int {
	return r.dirty
}

// PendingFrames reports how many frame callbacks are queued.
func (r *Runtime) PendingFrames() int {
	return len(r.frames)
}

// ID implements reactive.Listener.
func (r *Runtime) ID() uint64 {
	return r.id
}
