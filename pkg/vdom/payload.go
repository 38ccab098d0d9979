package vdom

// Event payload types. These mirror the browser event fields the thin
// client forwards to the server.

// MouseEvent represents a mouse event with position and modifiers.
type MouseEvent struct {
	// Position relative to viewport
	ClientX int `json:"clientX"`
	ClientY int `json:"clientY"`

	// Button that triggered the event (0=left, 1=middle, 2=right)
	Button int `json:"button"`

	// Modifier keys
	CtrlKey  bool `json:"ctrlKey"`
	ShiftKey bool `json:"shiftKey"`
	AltKey   bool `json:"altKey"`
	MetaKey  bool `json:"metaKey"`
}

// PointerEvent represents a pointer event (mouse, touch, or pen).
type PointerEvent struct {
	// PointerID identifies the physical pointer for the lifetime of a
	// gesture. The browser guarantees capture exclusivity per pointer ID,
	// so two elements never process the same gesture concurrently.
	PointerID int `json:"pointerId"`

	// Position relative to viewport
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`

	// Bitmask of currently pressed buttons
	Buttons int `json:"buttons"`

	// PointerType is "mouse", "touch", or "pen".
	PointerType string `json:"pointerType"`
}

// KeyboardEvent represents a keyboard event with key and modifiers.
type KeyboardEvent struct {
	// The key value (e.g., "Enter", "a", "Escape")
	Key string `json:"key"`

	// Modifier keys
	CtrlKey  bool `json:"ctrlKey"`
	ShiftKey bool `json:"shiftKey"`
	AltKey   bool `json:"altKey"`
	MetaKey  bool `json:"metaKey"`
}

// ChangeEvent represents a committed input value change.
type ChangeEvent struct {
	// Current value of the input
	Value string `json:"value"`
}
