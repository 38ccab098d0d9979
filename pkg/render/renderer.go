package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer is not safe for concurrent use; the session owns one and
// renders only on its event loop.
type Renderer struct {
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		handlers: make(map[string]any),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// Handlers returns the handler registry collected during rendering.
// The keys are in the format "hid:eventname" (e.g., "h1:onclick").
func (r *Renderer) Handlers() map[string]any {
	return r.handlers
}

// Reset clears the HID counter and handler registry for reuse.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// HandlerKey builds a registry key from a HID and event name.
func HandlerKey(hid, event string) string {
	return hid + ":" + event
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render())
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.IsInteractive() {
		hid := r.nextHID()
		node.HID = hid
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		if err := r.registerHandlers(w, hid, node); err != nil {
			return err
		}
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// renderAttributes writes non-event props in sorted order for deterministic
// output.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		if strings.HasPrefix(key, "on") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := writeAttr(w, key, node.Props[key]); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w io.Writer, key string, value any) error {
	switch v := value.(type) {
	case bool:
		// Boolean attributes render bare when true, not at all when false.
		if v {
			_, err := io.WriteString(w, " "+key)
			return err
		}
		return nil
	case string:
		_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(v))
		return err
	case int:
		_, err := fmt.Fprintf(w, ` %s="%d"`, key, v)
		return err
	case float64:
		_, err := fmt.Fprintf(w, ` %s="%s"`, key, strconv.FormatFloat(v, 'f', -1, 64))
		return err
	default:
		_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(fmt.Sprintf("%v", v)))
		return err
	}
}

// registerHandlers records the element's event handlers under its HID and
// emits modifier data attributes for the client.
func (r *Renderer) registerHandlers(w io.Writer, hid string, node *vdom.VNode) error {
	events := make([]string, 0, 2)
	for key := range node.Props {
		if strings.HasPrefix(key, "on") {
			events = append(events, key)
		}
	}
	sort.Strings(events)

	for _, event := range events {
		handler := node.Props[event]
		if m, ok := handler.(vdom.ModifiedHandler); ok {
			if m.StopPropagation {
				if _, err := fmt.Fprintf(w, ` data-stop-%s`, strings.TrimPrefix(event, "on")); err != nil {
					return err
				}
			}
			if m.PreventDefault {
				if _, err := fmt.Fprintf(w, ` data-prevent-%s`, strings.TrimPrefix(event, "on")); err != nil {
					return err
				}
			}
			handler = m.Unwrap()
		}
		r.handlers[HandlerKey(hid, event)] = handler
	}
	return nil
}

func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}
