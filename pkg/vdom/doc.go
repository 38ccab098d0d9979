// Package vdom provides the virtual DOM node model the toast kit renders
// through: VNode trees, element constructors, attribute helpers (including
// the ARIA attributes the notification cards rely on), and event-handler
// constructors for the pointer and mouse events the drag-to-dismiss gesture
// consumes.
//
// Components build trees with the element constructors:
//
//	vdom.Div(
//	    vdom.Class("toast-card"),
//	    vdom.Role("status"),
//	    vdom.OnPointerDown(func(e vdom.PointerEvent) { ... }),
//	    vdom.Text("Saved."),
//	)
//
// Trees are rendered to HTML by package render; event handlers are collected
// during rendering and invoked by the session when the client forwards the
// corresponding browser event.
package vdom
