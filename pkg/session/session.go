package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/toastkit-go/toastkit/pkg/reactive"
	"github.com/toastkit-go/toastkit/pkg/render"
	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// Config configures a Session.
type Config struct {
	// Logger receives session-scoped log records. Defaults to slog.Default.
	Logger *slog.Logger

	// MaxEventQueue bounds the pending event and dispatch channels.
	MaxEventQueue int

	// ReadTimeout is the WebSocket read deadline.
	ReadTimeout time.Duration

	// WriteTimeout is the WebSocket write deadline.
	WriteTimeout time.Duration

	// Middleware wraps event processing, outermost first.
	Middleware []Middleware
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MaxEventQueue <= 0 {
		c.MaxEventQueue = 64
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
}

var sessionIDCounter atomic.Uint64

// Session is a single client connection and its event loop.
type Session struct {
	id     string
	config Config
	logger *slog.Logger

	// conn is nil for detached sessions (tests, prerender).
	conn    *websocket.Conn
	writeMu sync.Mutex

	listenerID uint64

	eventCh    chan *Event
	dispatchCh chan func()

	// Loop-owned state. Only the loop goroutine touches these.
	root     vdom.Component
	renderer *render.Renderer
	handlers map[string]any
	lastHTML string
	frameFns []func()

	// dirty is set by MarkDirty from any goroutine; wakeCh nudges an idle
	// loop so the flush happens promptly.
	dirty  atomic.Bool
	wakeCh chan struct{}

	// values holds tree-scoped context values (providers).
	values   map[any]any
	valuesMu sync.RWMutex

	process EventFunc

	closed  atomic.Bool
	done    chan struct{}
	stopped chan struct{}
}

// New creates a session attached to a WebSocket connection.
// Call Start to launch the event loop and ReadLoop to pump the connection.
func New(conn *websocket.Conn, config Config) *Session {
	config.defaults()

	s := &Session{
		id:         fmt.Sprintf("s%d", sessionIDCounter.Add(1)),
		config:     config,
		conn:       conn,
		listenerID: reactive.NextID(),
		eventCh:    make(chan *Event, config.MaxEventQueue),
		dispatchCh: make(chan func(), config.MaxEventQueue),
		renderer:   render.NewRenderer(),
		handlers:   make(map[string]any),
		values:     make(map[any]any),
		wakeCh:     make(chan struct{}, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	s.logger = config.Logger.With("session", s.id)

	// Compose the event pipeline, outermost middleware first.
	core := s.invoke
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}
	s.process = core

	return s
}

// NewDetached creates a session without a client connection.
// Patches are rendered but not sent; used by tests and prerendering.
func NewDetached(config Config) *Session {
	return New(nil, config)
}

// ID returns the session identifier.
func (s *Session) ID() uint64 { return s.listenerID }

// Name returns the human-readable session id used in logs.
func (s *Session) Name() string { return s.id }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// MarkDirty schedules a render flush. Implements reactive.Listener.
// Safe to call from the loop (signal writes during event handling) and from
// off-loop goroutines (which should prefer Dispatch).
func (s *Session) MarkDirty() {
	s.dirty.Store(true)
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// Dispatch queues fn to run on the event loop.
// Blocks if the queue is full; returns immediately if the session closed.
func (s *Session) Dispatch(fn func()) {
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	}
}

// QueueEvent queues a client event for processing.
func (s *Session) QueueEvent(ev *Event) {
	ev.Session = s
	select {
	case s.eventCh <- ev:
	case <-s.done:
	}
}

// MountRoot installs the root component and renders it.
func (s *Session) MountRoot(c vdom.Component) {
	s.Dispatch(func() {
		s.root = c
		s.dirty.Store(true)
	})
}

// NextFrame registers fn to run once, immediately after the next flush is
// sent to the client. Must be called on the loop (i.e. from a render, an
// event handler, or a dispatched function).
func (s *Session) NextFrame(fn func()) {
	if fn == nil {
		return
	}
	s.frameFns = append(s.frameFns, fn)
}

// SetValue stores a tree-scoped value (provider side of the hook pattern).
func (s *Session) SetValue(key, value any) {
	s.valuesMu.Lock()
	s.values[key] = value
	s.valuesMu.Unlock()
}

// Value retrieves a tree-scoped value, or nil if absent.
func (s *Session) Value(key any) any {
	s.valuesMu.RLock()
	defer s.valuesMu.RUnlock()
	return s.values[key]
}

// Emit sends a custom event to the client.
func (s *Session) Emit(name string, data any) {
	s.send(outFrame{Type: "emit", Name: name, Data: data})
}

// Start launches the event loop goroutine.
func (s *Session) Start() {
	go s.loop()
}

// Close shuts the session down. Idempotent.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)
	if s.conn != nil {
		s.conn.Close()
	}
}

// Done returns a channel closed when the session shuts down.
func (s *Session) Done() <-chan struct{} { return s.done }

// Stopped returns a channel closed once the event loop has drained.
func (s *Session) Stopped() <-chan struct{} { return s.stopped }

// loop is the session event loop. It is the only goroutine that renders or
// mutates loop-owned state.
func (s *Session) loop() {
	defer close(s.stopped)

	for {
		select {
		case fn := <-s.dispatchCh:
			s.run(fn)
		case ev := <-s.eventCh:
			s.run(func() { s.process(ev) })
		case <-s.wakeCh:
		case <-s.done:
			return
		}

		s.flush()
	}
}

// run executes one unit of work, converting panics into log records so a
// misbehaving handler cannot take the session down.
func (s *Session) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in session loop", "panic", r)
		}
	}()
	fn()
}

// flush re-renders the root if anything marked the session dirty, pushes
// the patch, then runs pending frame callbacks. Frame callbacks commonly
// dirty the session again (mount transitions), so flushing repeats until
// quiescent.
func (s *Session) flush() {
	for {
		wasDirty := s.dirty.Swap(false)
		if !wasDirty && len(s.frameFns) == 0 {
			return
		}

		if wasDirty && s.root != nil {
			s.renderServe()
		}

		frames := s.frameFns
		s.frameFns = nil
		for _, fn := range frames {
			s.run(fn)
		}
	}
}

func (s *Session) renderServe() {
	html, err := s.RenderRoot()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	if html == s.lastHTML {
		return
	}
	s.lastHTML = html
	s.send(outFrame{Type: "patch", HTML: html})
}

// RenderRoot renders the current root tree and refreshes the handler
// registry. Loop-only.
func (s *Session) RenderRoot() (string, error) {
	s.renderer.Reset()
	html, err := s.renderer.RenderToString(s.root.Render())
	if err != nil {
		return "", fmt.Errorf("render root: %w", err)
	}
	s.handlers = s.renderer.Handlers()
	return html, nil
}

// invoke routes an event to its registered handler. Unknown HIDs are
// ignored: they are usually events that raced a re-render that removed the
// element.
func (s *Session) invoke(ev *Event) {
	handler, ok := s.handlers[render.HandlerKey(ev.HID, ev.Name)]
	if !ok {
		s.logger.Debug("no handler for event", "hid", ev.HID, "event", ev.Name)
		return
	}
	if err := invokeHandler(handler, ev.Payload); err != nil {
		s.logger.Error("handler invocation failed", "hid", ev.HID, "event", ev.Name, "error", err)
	}
}

// outFrame is a server-to-client message.
type outFrame struct {
	Type string `json:"type"`           // "patch" or "emit"
	HTML string `json:"html,omitempty"` // for "patch"
	Name string `json:"name,omitempty"` // for "emit"
	Data any    `json:"data,omitempty"` // for "emit"
}

func (s *Session) send(frame outFrame) {
	if s.conn == nil {
		return
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		s.logger.Error("frame encode failed", "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		s.logger.Error("write failed", "error", err)
		s.Close()
	}
}
