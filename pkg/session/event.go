package session

import (
	"encoding/json"
	"fmt"

	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// Event is a browser event forwarded by the thin client.
type Event struct {
	// HID is the handler ID stamped on the element during render.
	HID string `json:"hid"`

	// Name is the handler key, e.g. "onclick" or "onpointermove".
	Name string `json:"event"`

	// Payload carries the event fields, decoded per handler signature.
	Payload json.RawMessage `json:"payload"`

	// Session is the session the event arrived on.
	Session *Session `json:"-"`
}

// EventFunc processes one client event.
type EventFunc func(*Event)

// Middleware wraps event processing; see package middleware for the
// metrics and tracing implementations.
type Middleware func(next EventFunc) EventFunc

// invokeHandler calls a registered handler with a payload decoded to match
// its signature. Unknown handler shapes are reported once and dropped; a
// malformed payload degrades to the zero event rather than failing the
// session.
func invokeHandler(handler any, payload json.RawMessage) error {
	switch h := handler.(type) {
	case func():
		h()
	case func(vdom.MouseEvent):
		var e vdom.MouseEvent
		decodePayload(payload, &e)
		h(e)
	case func(vdom.PointerEvent):
		var e vdom.PointerEvent
		decodePayload(payload, &e)
		h(e)
	case func(vdom.KeyboardEvent):
		var e vdom.KeyboardEvent
		decodePayload(payload, &e)
		h(e)
	case func(vdom.ChangeEvent):
		var e vdom.ChangeEvent
		decodePayload(payload, &e)
		h(e)
	default:
		return fmt.Errorf("unsupported handler type %T", handler)
	}
	return nil
}

func decodePayload(payload json.RawMessage, dst any) {
	if len(payload) == 0 {
		return
	}
	// Decode errors leave dst at its zero value on purpose.
	_ = json.Unmarshal(payload, dst)
}
