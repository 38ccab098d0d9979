package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	HID      string    // Handler ID (assigned during render)
}

// Props holds attributes and event handlers.
// Event handler keys start with "on" (e.g., "onclick", "onpointerdown").
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler bound to an element.
type EventHandler struct {
	Event   string // "onclick", "onpointerdown", etc.
	Handler any    // Function to call
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// ModifiedHandler wraps a handler with client-side event modifiers.
// The renderer emits the modifiers as data attributes so the thin client
// applies them before forwarding the event to the server.
type ModifiedHandler struct {
	Handler         any
	PreventDefault  bool
	StopPropagation bool
}

// Unwrap returns the underlying handler function.
func (m ModifiedHandler) Unwrap() any {
	return m.Handler
}

// StopPropagation wraps a handler so the event does not bubble past the
// element. The toast card's close button uses this to keep its click from
// reaching the card's own click and drag handling.
func StopPropagation(handler any) ModifiedHandler {
	if m, ok := handler.(ModifiedHandler); ok {
		m.StopPropagation = true
		return m
	}
	return ModifiedHandler{Handler: handler, StopPropagation: true}
}

// PreventDefault wraps a handler to suppress the default browser behavior.
func PreventDefault(handler any) ModifiedHandler {
	if m, ok := handler.(ModifiedHandler); ok {
		m.PreventDefault = true
		return m
	}
	return ModifiedHandler{Handler: handler, PreventDefault: true}
}
