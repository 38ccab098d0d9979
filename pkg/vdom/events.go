package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// Pointer events
//
// The drag-to-dismiss gesture is built entirely on pointer events so that
// mouse, touch, and pen input share one code path. The client captures the
// pointer on pointerdown, giving the originating card exclusive delivery of
// the rest of the gesture.

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerMove handles pointermove events.
func OnPointerMove(handler any) EventHandler { return event("pointermove", handler) }

// OnPointerUp handles pointerup events.
func OnPointerUp(handler any) EventHandler { return event("pointerup", handler) }

// OnPointerCancel handles pointercancel events.
func OnPointerCancel(handler any) EventHandler { return event("pointercancel", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// Form events

// OnChange handles change events (fired when a value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }
