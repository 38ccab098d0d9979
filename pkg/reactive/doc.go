// Package reactive provides the minimal reactive primitives the toast kit
// is built on: Signal values with subscriber notification, the Listener
// interface implemented by anything that re-renders when state changes, and
// timer helpers that marshal their callbacks onto a single-threaded
// Dispatcher (the session event loop).
//
// The model is deliberately small. A Signal does not track readers
// implicitly; the session subscribes itself to the signals it renders from.
// All signal writes in a running application happen on the session loop, so
// consumers observe a consistent snapshot between flushes.
package reactive
