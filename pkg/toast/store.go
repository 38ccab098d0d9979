package toast

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/toastkit-go/toastkit/pkg/pref"
	"github.com/toastkit-go/toastkit/pkg/reactive"
)

// modePrefKey is the persisted slot remembering the last chosen mode.
const modePrefKey = "toast:mode"

// toastIDCounter generates process-unique notification ids.
var toastIDCounter atomic.Uint64

// Store is the notification state container. It owns the ordered list of
// live notifications and the theme mode; every mutation goes through its
// operations, and consumers only read snapshots.
//
// All operations must run on the store's dispatcher loop. The store's own
// timers already do; off-loop producers wrap calls in Dispatch.
type Store struct {
	disp   reactive.Dispatcher
	cfg    Config
	logger *slog.Logger

	notifications *reactive.Signal[[]Notification]
	mode          *reactive.Signal[Mode]
	modePref      *pref.Pref[string]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithConfig sets the tunable constants. Zero fields keep their defaults.
func WithConfig(cfg Config) StoreOption {
	return func(s *Store) {
		s.cfg = cfg.withDefaults()
	}
}

// WithPrefStore sets the key-value backend persisting the theme mode.
// Defaults to an in-memory store.
func WithPrefStore(store pref.Store) StoreOption {
	return func(s *Store) {
		s.modePref = pref.New(store, modePrefKey, string(ModeLight))
	}
}

// WithLogger sets the store's logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store whose timers run on the given dispatcher.
func NewStore(disp reactive.Dispatcher, opts ...StoreOption) *Store {
	s := &Store{
		disp:          disp,
		cfg:           DefaultConfig(),
		logger:        slog.Default(),
		notifications: reactive.NewSignal([]Notification(nil)),
		mode:          reactive.NewSignal(ModeLight),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.modePref == nil {
		s.modePref = pref.New(pref.NewMemoryStore(), modePrefKey, string(ModeLight))
	}

	// Restore the last chosen mode; anything unrecognized starts light.
	if stored := Mode(s.modePref.Get()); stored == ModeDark {
		s.mode.Set(ModeDark)
	}

	return s
}

// Config returns the store's tuning.
func (s *Store) Config() Config {
	return s.cfg
}

// Bind subscribes a listener (typically the session) to the store's state,
// so notification and mode changes schedule a re-render.
func (s *Store) Bind(l reactive.Listener) {
	s.notifications.Subscribe(l)
	s.mode.Subscribe(l)
}

// Unbind removes a previously bound listener.
func (s *Store) Unbind(l reactive.Listener) {
	s.notifications.Unsubscribe(l)
	s.mode.Unsubscribe(l)
}

// Notify appends a notification and schedules its auto-dismiss.
//
// The input's ID and IsExiting are overwritten; Type, Colored, and Duration
// default when zero. Returns the assigned id.
func (s *Store) Notify(n Notification) string {
	n.ID = s.nextID()
	n.IsExiting = false

	if n.Type == "" {
		n.Type = TypeNone
	}
	if n.Colored == "" {
		n.Colored = ColoredFull
	}
	n.Anchor = n.Anchor.Normalize()

	duration := time.Duration(n.Duration) * time.Millisecond
	if n.Duration == 0 {
		duration = s.cfg.DefaultDuration
	}

	s.notifications.Update(func(list []Notification) []Notification {
		out := make([]Notification, len(list), len(list)+1)
		copy(out, list)
		return append(out, n)
	})

	if duration >= 0 {
		id := n.ID
		reactive.Timeout(s.disp, duration, func() {
			s.Exit(id)
		})
	}

	return n.ID
}

// Success shows a success toast.
func (s *Store) Success(message string) string {
	return s.notify(TypeSuccess, message)
}

// Error shows an error toast.
func (s *Store) Error(message string) string {
	return s.notify(TypeError, message)
}

// Info shows an info toast.
func (s *Store) Info(message string) string {
	return s.notify(TypeInfo, message)
}

// Alert shows an alert toast.
func (s *Store) Alert(message string) string {
	return s.notify(TypeAlert, message)
}

func (s *Store) notify(typ Type, message string) string {
	return s.Notify(Notification{
		Message:  message,
		Type:     typ,
		HasIcon:  true,
		CanClose: true,
	})
}

// Exit initiates dismissal: the entry is marked exiting and removed after
// the exit grace period. Idempotent; unknown or already-exiting ids are
// no-ops, which is what makes late auto-dismiss timers harmless.
func (s *Store) Exit(id string) {
	marked := false
	s.notifications.Update(func(list []Notification) []Notification {
		for i := range list {
			if list[i].ID != id || list[i].IsExiting {
				continue
			}
			out := make([]Notification, len(list))
			copy(out, list)
			out[i].IsExiting = true
			marked = true
			return out
		}
		return list
	})

	if !marked {
		return
	}

	reactive.Timeout(s.disp, s.cfg.ExitGrace, func() {
		s.remove(id)
	})
}

// remove drops the entry entirely. Missing ids are no-ops.
func (s *Store) remove(id string) {
	s.notifications.Update(func(list []Notification) []Notification {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			out := make([]Notification, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
		return list
	})
}

// ToggleMode flips light/dark and persists the new value.
func (s *Store) ToggleMode() {
	next := s.mode.Get().Toggle()
	s.mode.Set(next)
	if err := s.modePref.Set(string(next)); err != nil {
		s.logger.Error("persist mode failed", "mode", next, "error", err)
	}
}

// Notifications returns the ordered snapshot of live notifications.
func (s *Store) Notifications() []Notification {
	return s.notifications.Get()
}

// Mode returns the current theme mode.
func (s *Store) Mode() Mode {
	return s.mode.Get()
}

// Palette returns the palette for a mode.
func (s *Store) Palette(mode Mode) Palette {
	return DefaultPalette(mode)
}

func (s *Store) nextID() string {
	return fmt.Sprintf("t%d", toastIDCounter.Add(1))
}
