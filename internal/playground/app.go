package playground

import (
	"github.com/toastkit-go/toastkit/pkg/toast"
	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// App is the playground root component.
type App struct {
	store   *toast.Store
	manager *toast.Manager
}

// NewApp wires the root component for one session: the store is provided to
// the tree, bound to the session for re-renders, and mounted under a
// Manager.
func NewApp(sess toast.Runtime, ctx toast.ValueContext, store *toast.Store) *App {
	toast.Provide(ctx, store)
	return &App{
		store:   store,
		manager: toast.NewManager(sess, store),
	}
}

// Render implements vdom.Component.
func (a *App) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("playground"),
		vdom.Data("mode", string(a.store.Mode())),
		a.renderHeader(),
		a.renderControls(),
		a.manager,
	)
}

func (a *App) renderHeader() *vdom.VNode {
	label := "Switch to dark"
	if a.store.Mode() == toast.ModeDark {
		label = "Switch to light"
	}
	return vdom.Div(
		vdom.Class("header"),
		vdom.H1(vdom.Text("toastkit playground")),
		vdom.Button(
			vdom.Class("mode-toggle"),
			vdom.OnClick(a.store.ToggleMode),
			vdom.Text(label),
		),
	)
}

func (a *App) renderControls() *vdom.VNode {
	return vdom.Div(
		vdom.Class("controls"),
		a.typeSection(),
		a.anchorSection(),
		a.coloredSection(),
		a.behaviorSection(),
	)
}

func (a *App) typeSection() *vdom.VNode {
	return section("Types",
		producer("Success", func() { a.store.Success("Changes saved") }),
		producer("Error", func() { a.store.Error("Could not reach the server") }),
		producer("Info", func() { a.store.Info("A new version is available") }),
		producer("Alert", func() { a.store.Alert("Storage almost full") }),
	)
}

func (a *App) anchorSection() *vdom.VNode {
	buttons := make([]*vdom.VNode, 0, len(toast.AnchorOrder))
	for _, anchor := range toast.AnchorOrder {
		anchor := anchor
		buttons = append(buttons, producer(anchor.String(), func() {
			a.store.Notify(toast.Notification{
				Message:  "Anchored at " + anchor.String(),
				Type:     toast.TypeInfo,
				Anchor:   anchor,
				HasIcon:  true,
				CanClose: true,
			})
		}))
	}
	return section("Anchors", buttons...)
}

func (a *App) coloredSection() *vdom.VNode {
	modes := []toast.ColoredMode{toast.ColoredFull, toast.ColoredBorder, toast.ColoredNone}
	buttons := make([]*vdom.VNode, 0, len(modes)+1)
	for _, mode := range modes {
		mode := mode
		buttons = append(buttons, producer(string(mode), func() {
			a.store.Notify(toast.Notification{
				Message:  "Colored mode: " + string(mode),
				Type:     toast.TypeSuccess,
				Colored:  mode,
				HasIcon:  true,
				CanClose: true,
			})
		}))
	}
	buttons = append(buttons, producer("custom theme", func() {
		a.store.Notify(toast.Notification{
			Message:  "Custom colors",
			Theme:    &toast.Theme{Background: "#1a0b2e", Border: "#a855f7", Font: "#e9d5ff"},
			CanClose: true,
		})
	}))
	return section("Colors", buttons...)
}

func (a *App) behaviorSection() *vdom.VNode {
	return section("Behavior",
		producer("sticky", func() {
			a.store.Notify(toast.Notification{
				Message:    "I stay until dismissed",
				SubMessage: "Drag me away or use the close button",
				Type:       toast.TypeAlert,
				Duration:   -1,
				HasIcon:    true,
				CanClose:   true,
			})
		}),
		producer("clickable", func() {
			a.store.Notify(toast.Notification{
				Message:    "Click me",
				SubMessage: "Produces a follow-up toast",
				Type:       toast.TypeInfo,
				HasIcon:    true,
				OnClick: func() {
					a.store.Success("Toast clicked")
				},
			})
		}),
		producer("flood", func() {
			// One past the per-anchor cap, so the last entry queues.
			for i := 0; i < 8; i++ {
				a.store.Notify(toast.Notification{
					Message:  "Flood",
					Type:     toast.TypeNone,
					Anchor:   toast.Anchor{V: toast.Bottom, H: toast.Right},
					CanClose: true,
				})
			}
		}),
	)
}

func section(title string, buttons ...*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		vdom.Class("section"),
		vdom.H2(vdom.Text(title)),
		vdom.Div(vdom.Class("buttons"), buttons),
	)
}

func producer(label string, fn func()) *vdom.VNode {
	return vdom.Button(
		vdom.Class("producer"),
		vdom.OnClick(fn),
		vdom.Text(label),
	)
}
