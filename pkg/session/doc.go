// Package session implements the per-connection runtime for toastkit
// applications.
//
// A Session owns a single-goroutine event loop. Everything that mutates UI
// state runs on that loop: client events forwarded over the WebSocket,
// functions queued with Dispatch (timer callbacks, off-loop work), and the
// render flush that pushes an HTML patch to the client whenever state
// changed. Because the loop is the only writer, components never see a
// half-updated snapshot.
//
// The Session is also the reactive sink: it implements reactive.Listener,
// so subscribing it to a signal makes any write to that signal schedule a
// re-render.
//
// NextFrame registers a one-shot callback that runs right after the next
// flush reaches the client. It is the server-side analog of an animation
// frame callback and is what drives the toast cards' mount transition: the
// card renders unmounted, the patch ships, and the callback flips it to
// mounted so the client animates the difference.
package session
