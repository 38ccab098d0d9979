package toast

import (
	"github.com/toastkit-go/toastkit/pkg/vdom"
)

// Manager renders the notification stacks. It is mounted once at the
// application root, takes no props, and reads everything from the store.
type Manager struct {
	rt    Runtime
	store *Store

	// prevIndex remembers the last stacking index per id so an exiting
	// card keeps its slot while the stack re-indexes underneath it.
	prevIndex map[string]int

	// cards holds per-card transient UI state (mount flag, drag gesture)
	// across re-renders.
	cards map[string]*cardState
}

// NewManager creates a Manager bound to a runtime and store.
func NewManager(rt Runtime, store *Store) *Manager {
	return &Manager{
		rt:        rt,
		store:     store,
		prevIndex: make(map[string]int),
		cards:     make(map[string]*cardState),
	}
}

// Render implements vdom.Component.
func (m *Manager) Render() *vdom.VNode {
	snapshot := m.store.Notifications()

	// Bucket by anchor, preserving insertion order within each bucket.
	buckets := make(map[Anchor][]Notification, len(AnchorOrder))
	for _, n := range snapshot {
		a := n.Anchor.Normalize()
		buckets[a] = append(buckets[a], n)
	}

	m.prune(snapshot)

	regions := make([]*vdom.VNode, 0, len(AnchorOrder))
	for _, anchor := range AnchorOrder {
		entries := buckets[anchor]
		if len(entries) == 0 {
			continue
		}
		if max := m.store.Config().MaxVisiblePerAnchor; len(entries) > max {
			entries = entries[:max]
		}
		regions = append(regions, m.renderRegion(anchor, entries))
	}

	return vdom.Div(
		vdom.Class("toast-root"),
		vdom.Data("mode", string(m.store.Mode())),
		regions,
	)
}

func (m *Manager) renderRegion(anchor Anchor, entries []Notification) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(entries))

	// Non-exiting entries are stacked in insertion order; an exiting entry
	// keeps the index it held when its exit began, so the departing card
	// does not jump while the rest of the stack closes up.
	counter := 0
	for _, n := range entries {
		index := counter
		if n.IsExiting {
			if prev, ok := m.prevIndex[n.ID]; ok {
				index = prev
			}
		} else {
			m.prevIndex[n.ID] = index
			counter++
		}

		card := &Card{
			rt:      m.rt,
			store:   m.store,
			n:       n,
			index:   index,
			state:   m.cardState(n.ID),
			onClose: m.store.Exit,
		}
		cards = append(cards, vdom.Div(
			vdom.Key(n.ID),
			vdom.Class("toast-slot"),
			card,
		))
	}

	return vdom.Div(
		vdom.Class("toast-region"),
		vdom.Data("anchor", anchor.String()),
		cards,
	)
}

// cardState returns the transient state for an id, creating it on first
// render.
func (m *Manager) cardState(id string) *cardState {
	if st, ok := m.cards[id]; ok {
		return st
	}
	st := &cardState{}
	m.cards[id] = st
	return st
}

// prune drops side-table entries for ids that left the live set.
func (m *Manager) prune(live []Notification) {
	alive := make(map[string]struct{}, len(live))
	for _, n := range live {
		alive[n.ID] = struct{}{}
	}
	for id := range m.prevIndex {
		if _, ok := alive[id]; !ok {
			delete(m.prevIndex, id)
		}
	}
	for id := range m.cards {
		if _, ok := alive[id]; !ok {
			delete(m.cards, id)
		}
	}
}
