// Package render turns vdom trees into HTML.
//
// Rendering does two jobs at once: it writes escaped HTML to a writer, and
// it collects the event handlers found on interactive nodes into a registry
// keyed by handler ID (HID). The session uses that registry to route events
// forwarded by the thin client back to the Go functions that were attached
// to the tree.
//
// Interactive elements are stamped with a data-hid attribute; handler
// modifiers (stop-propagation, prevent-default) become data attributes the
// client honors before forwarding.
package render
