package toast

import (
	"fmt"
	"math"

	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// cardState is the transient per-card UI state that must survive
// re-renders: the mount transition and the drag gesture. The manager owns
// one per live id and drops it when the id leaves the live set.
type cardState struct {
	mounted        bool
	mountScheduled bool

	// suppressClick is set once a pointer interaction qualifies as a drag,
	// and consumed (reset) by the next click.
	suppressClick bool

	drag dragState
}

// dragState tracks one pointer gesture.
type dragState struct {
	active    bool
	pointerID int
	startX    float64
	startY    float64
	offsetX   float64
	offsetY   float64

	// closed is set when the gesture crossed the release threshold
	// mid-move and already triggered the exit; the following up event
	// must not decide again.
	closed bool
}

// Card renders one notification.
type Card struct {
	rt      Runtime
	store   *Store
	n       Notification
	index   int
	state   *cardState
	onClose func(id string)
}

// Render implements vdom.Component.
func (c *Card) Render() *vdom.VNode {
	colors := ComputeColors(c.n.Colored, c.n.Type, c.n.Theme, c.store.Palette(c.store.Mode()))

	// One-shot mount transition: first render ships unmounted, the frame
	// callback flips it so the client animates the difference.
	if !c.state.mounted && !c.state.mountScheduled {
		c.state.mountScheduled = true
		st := c.state
		rt := c.rt
		rt.NextFrame(func() {
			st.mounted = true
			rt.MarkDirty()
		})
	}

	role, live := "status", "polite"
	if c.n.Type == TypeAlert || c.n.Type == TypeError {
		role, live = "alert", "assertive"
	}

	classes := []string{"toast-card", "toast-" + string(c.n.Type)}
	if c.state.mounted {
		classes = append(classes, "mounted")
	}
	if c.n.IsExiting {
		classes = append(classes, "exiting")
	}

	children := []*vdom.VNode{
		vdom.When(c.n.HasIcon, func() *vdom.VNode { return c.renderIcon() }),
		c.renderBody(),
		vdom.When(c.n.CanClose && c.onClose != nil, func() *vdom.VNode { return c.renderClose() }),
	}

	return vdom.Div(
		vdom.Class(classes...),
		vdom.Role(role),
		vdom.AriaLive(live),
		vdom.AriaAtomic(true),
		vdom.Data("index", fmt.Sprintf("%d", c.index)),
		vdom.Data("anchor", c.n.Anchor.String()),
		vdom.StyleAttr(c.style(colors)),
		vdom.OnPointerDown(c.pointerDown),
		vdom.OnPointerMove(c.pointerMove),
		vdom.OnPointerUp(c.pointerUp),
		vdom.OnPointerCancel(c.pointerCancel),
		vdom.OnClick(c.clicked),
		children,
	)
}

func (c *Card) renderIcon() *vdom.VNode {
	icon := c.n.Icon
	if icon == "" {
		icon = DefaultIcon(c.n.Type)
	}
	return vdom.Img(
		vdom.Class("toast-icon"),
		vdom.Src(icon),
		vdom.Alt(""),
		vdom.AriaHidden(true),
	)
}

func (c *Card) renderBody() *vdom.VNode {
	return vdom.Div(
		vdom.Class("toast-body"),
		vdom.Span(vdom.Class("toast-message"), vdom.Text(c.n.Message)),
		vdom.When(c.n.SubMessage != "", func() *vdom.VNode {
			return vdom.Span(vdom.Class("toast-submessage"), vdom.Text(c.n.SubMessage))
		}),
	)
}

// renderClose renders the dismiss button. Propagation stops on both the
// click and the pointer-down so closing never starts a drag or triggers
// the card's own click handling.
func (c *Card) renderClose() *vdom.VNode {
	id := c.n.ID
	return vdom.Button(
		vdom.Class("toast-close"),
		vdom.AriaLabel("Dismiss notification"),
		vdom.OnPointerDown(vdom.StopPropagation(func(vdom.PointerEvent) {})),
		vdom.OnClick(vdom.StopPropagation(func() { c.onClose(id) })),
	)
}

func (c *Card) style(colors Theme) string {
	style := fmt.Sprintf(
		"background-color:%s;border-color:%s;color:%s;",
		colors.Background, colors.Border, colors.Font,
	)
	d := &c.state.drag
	if d.offsetX != 0 || d.offsetY != 0 {
		style += fmt.Sprintf("transform:translate(%.0fpx,%.0fpx);", d.offsetX, d.offsetY)
	}
	return style
}

// Pointer gesture.
//
// One pointer at a time: the client captures the pointer on the card on
// pointerdown, so the whole gesture is delivered here and nowhere else.
// Stray move/up/cancel events without a prior down (or from a different
// pointer) are no-ops.

func (c *Card) pointerDown(e vdom.PointerEvent) {
	d := &c.state.drag
	*d = dragState{
		active:    true,
		pointerID: e.PointerID,
		startX:    e.ClientX,
		startY:    e.ClientY,
	}
	c.state.suppressClick = false
}

func (c *Card) pointerMove(e vdom.PointerEvent) {
	d := &c.state.drag
	if !d.active || e.PointerID != d.pointerID {
		return
	}

	cfg := c.store.Config()
	d.offsetX = e.ClientX - d.startX
	d.offsetY = e.ClientY - d.startY

	moved := math.Hypot(d.offsetX, d.offsetY)
	if moved > cfg.DragActivateThreshold {
		c.state.suppressClick = true
	}

	if !d.closed && moved > cfg.ReleaseThreshold {
		// Crossing the threshold mid-drag dismisses immediately; the rest
		// of this gesture is ignored.
		d.closed = true
		d.active = false
		c.finalizeExit()
	}

	c.rt.MarkDirty()
}

func (c *Card) pointerUp(e vdom.PointerEvent) {
	d := &c.state.drag
	if !d.active || e.PointerID != d.pointerID {
		return
	}
	d.active = false

	if math.Hypot(d.offsetX, d.offsetY) >= c.store.Config().ReleaseThreshold {
		c.finalizeExit()
	} else {
		d.offsetX, d.offsetY = 0, 0
	}
	c.rt.MarkDirty()
}

func (c *Card) pointerCancel(e vdom.PointerEvent) {
	d := &c.state.drag
	if !d.active || e.PointerID != d.pointerID {
		return
	}
	d.active = false
	d.offsetX, d.offsetY = 0, 0
	c.rt.MarkDirty()
}

// finalizeExit flings the card outward along any axis it was dragged past
// the axis threshold on, then starts the normal exit path.
func (c *Card) finalizeExit() {
	cfg := c.store.Config()
	d := &c.state.drag

	if math.Abs(d.offsetX) > cfg.AxisFlingThreshold {
		d.offsetX += math.Copysign(cfg.FlingDistance, d.offsetX)
	}
	if math.Abs(d.offsetY) > cfg.AxisFlingThreshold {
		d.offsetY += math.Copysign(cfg.FlingDistance, d.offsetY)
	}

	c.onClose(c.n.ID)
}

// clicked consults and resets the suppression flag, then runs the
// notification's click handler if the interaction was a plain click.
func (c *Card) clicked() {
	suppressed := c.state.suppressClick
	c.state.suppressClick = false
	if suppressed {
		return
	}
	if c.n.OnClick != nil {
		c.n.OnClick()
	}
}
