package toast

import "time"

// Type classifies a notification and drives its default icon and theme.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeAlert   Type = "alert"
	TypeNone    Type = "none"
)

// ColoredMode controls how much of the effective theme a card applies.
type ColoredMode string

const (
	// ColoredFull applies background, border, and font from the effective
	// theme.
	ColoredFull ColoredMode = "full"

	// ColoredBorder keeps the neutral background and applies only border
	// and font from the effective theme.
	ColoredBorder ColoredMode = "border"

	// ColoredNone renders entirely neutral; any theme override is ignored.
	ColoredNone ColoredMode = "none"
)

// Vertical is the vertical half of a screen anchor.
type Vertical string

const (
	Top    Vertical = "top"
	Bottom Vertical = "bottom"
)

// Horizontal is the horizontal third of a screen anchor.
type Horizontal string

const (
	Left   Horizontal = "left"
	Middle Horizontal = "middle"
	Right  Horizontal = "right"
)

// Anchor names one of the six screen regions a notification stacks in.
// The zero value means "unspecified" and resolves to top-middle.
type Anchor struct {
	V Vertical
	H Horizontal
}

// Normalize resolves unspecified components to the default anchor.
func (a Anchor) Normalize() Anchor {
	if a.V == "" {
		a.V = Top
	}
	if a.H == "" {
		a.H = Middle
	}
	return a
}

// String returns the "vertical-horizontal" form used in data attributes and
// stylesheet selectors, e.g. "top-middle".
func (a Anchor) String() string {
	a = a.Normalize()
	return string(a.V) + "-" + string(a.H)
}

// AnchorOrder is the fixed order buckets are processed in. It has no
// visible effect beyond deterministic render order.
var AnchorOrder = []Anchor{
	{Top, Left}, {Top, Middle}, {Top, Right},
	{Bottom, Left}, {Bottom, Middle}, {Bottom, Right},
}

// Notification is one toast entry.
//
// Producers fill the content and presentation fields and pass it to
// Store.Notify, which assigns ID and applies defaults. IsExiting is
// transient render state owned by the store; producers leave it false.
type Notification struct {
	// ID uniquely identifies the entry for its lifetime.
	// Assigned by the store; any caller-provided value is replaced.
	ID string

	// Message is the primary text.
	Message string

	// SubMessage is optional secondary text.
	SubMessage string

	// Icon is an optional custom icon asset path. Empty means the type's
	// default icon.
	Icon string

	// Type drives the default icon and theme. Empty defaults to TypeNone.
	Type Type

	// Theme optionally overrides the type's palette entry.
	Theme *Theme

	// Colored controls how much of the theme is applied.
	// Empty defaults to ColoredFull.
	Colored ColoredMode

	// Anchor is the screen region; zero value means top-middle.
	Anchor Anchor

	// CanClose shows the dismiss button.
	CanClose bool

	// HasIcon shows the icon.
	HasIcon bool

	// Duration is the auto-dismiss delay in milliseconds. Zero defaults to
	// the store's DefaultDuration; any negative value disables
	// auto-dismiss.
	Duration int

	// OnClick fires when the card is clicked, unless the interaction was
	// classified as a drag.
	OnClick func()

	// IsExiting is true once dismissal has been initiated and the card is
	// playing its departure animation.
	IsExiting bool
}

// Config holds the kit's tunable constants. The defaults are the behavior
// the stylesheet and gesture feel were calibrated against; treat them as
// configuration, not invariants.
type Config struct {
	// MaxVisiblePerAnchor caps how many cards render per anchor bucket.
	// Overflow stays queued in the list until earlier entries are removed.
	MaxVisiblePerAnchor int

	// ExitGrace is how long an exiting entry stays in the list so its
	// departure animation can play.
	ExitGrace time.Duration

	// DefaultDuration is the auto-dismiss delay applied when a
	// notification is created with Duration zero.
	DefaultDuration time.Duration

	// DragActivateThreshold is the movement (px) past which a pointer
	// interaction counts as a drag and suppresses the following click.
	DragActivateThreshold float64

	// ReleaseThreshold is the displacement (px) at or past which a drag
	// dismisses the card.
	ReleaseThreshold float64

	// AxisFlingThreshold is the per-axis offset (px) past which the
	// dismissal adds an outward push on that axis.
	AxisFlingThreshold float64

	// FlingDistance is the sign-preserving outward push (px) added on
	// dismissal to axes past AxisFlingThreshold.
	FlingDistance float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		MaxVisiblePerAnchor:   7,
		ExitGrace:             250 * time.Millisecond,
		DefaultDuration:       3 * time.Second,
		DragActivateThreshold: 4,
		ReleaseThreshold:      100,
		AxisFlingThreshold:    6,
		FlingDistance:         120,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxVisiblePerAnchor <= 0 {
		c.MaxVisiblePerAnchor = d.MaxVisiblePerAnchor
	}
	if c.ExitGrace <= 0 {
		c.ExitGrace = d.ExitGrace
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = d.DefaultDuration
	}
	if c.DragActivateThreshold <= 0 {
		c.DragActivateThreshold = d.DragActivateThreshold
	}
	if c.ReleaseThreshold <= 0 {
		c.ReleaseThreshold = d.ReleaseThreshold
	}
	if c.AxisFlingThreshold <= 0 {
		c.AxisFlingThreshold = d.AxisFlingThreshold
	}
	if c.FlingDistance <= 0 {
		c.FlingDistance = d.FlingDistance
	}
	return c
}

// Runtime is what the toast components need from their host session:
// a serialized event loop, a post-flush frame callback, and the dirty
// marking that schedules a re-render. session.Session implements it.
type Runtime interface {
	// Dispatch queues fn on the event loop.
	Dispatch(fn func())

	// NextFrame runs fn once, after the next flush reaches the client.
	NextFrame(fn func())

	// MarkDirty schedules a re-render.
	MarkDirty()

	// ID identifies the runtime as a reactive listener.
	ID() uint64
}
