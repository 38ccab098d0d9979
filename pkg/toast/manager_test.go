package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/toastkit-go/toastkit/pkg/uitest"
)

// stickyStore returns a store whose notifications never auto-dismiss and
// whose exits linger, so manager tests control the lifecycle explicitly.
func stickyStore(rt *uitest.Runtime) *Store {
	return NewStore(rt, WithConfig(Config{
		DefaultDuration: time.Hour,
		ExitGrace:       time.Hour,
	}))
}

func sticky(anchor Anchor, message string) Notification {
	return Notification{Message: message, Anchor: anchor, Duration: -1}
}

func TestManagerRendersEmptyRoot(t *testing.T) {
	rt := uitest.NewRuntime()
	m := NewManager(rt, stickyStore(rt))

	html := uitest.RenderToString(m.Render())
	if !strings.Contains(html, `class="toast-root"`) {
		t.Fatalf("missing root container: %s", html)
	}
	if strings.Contains(html, "toast-region") {
		t.Errorf("empty store must render no regions: %s", html)
	}
}

func TestManagerBucketsByAnchor(t *testing.T) {
	rt := uitest.NewRuntime()
	s := stickyStore(rt)
	m := NewManager(rt, s)

	s.Notify(sticky(Anchor{Top, Left}, "tl"))
	s.Notify(sticky(Anchor{Bottom, Right}, "br-1"))
	s.Notify(sticky(Anchor{Bottom, Right}, "br-2"))
	s.Notify(sticky(Anchor{}, "defaulted"))

	html := uitest.RenderToString(m.Render())

	for _, anchor := range []string{"top-left", "top-middle", "bottom-right"} {
		if !strings.Contains(html, `data-anchor="`+anchor+`"`) {
			t.Errorf("missing region for %s: %s", anchor, html)
		}
	}
	for _, anchor := range []string{"top-right", "bottom-left", "bottom-middle"} {
		if strings.Contains(html, `data-anchor="`+anchor+`"`) {
			t.Errorf("unexpected empty region for %s", anchor)
		}
	}

	if n := strings.Count(html, "toast-region"); n != 3 {
		t.Errorf("region count = %d, want 3", n)
	}
	if !strings.Contains(html, "br-1") || !strings.Contains(html, "br-2") {
		t.Error("bottom-right entries missing from output")
	}
	if strings.Index(html, "br-1") > strings.Index(html, "br-2") {
		t.Error("bucket must preserve insertion order")
	}
}

func TestManagerOnePerAnchorFillsAllRegions(t *testing.T) {
	rt := uitest.NewRuntime()
	s := stickyStore(rt)
	m := NewManager(rt, s)

	for _, anchor := range AnchorOrder {
		s.Notify(sticky(anchor, "at "+anchor.String()))
	}

	html := uitest.RenderToString(m.Render())

	if n := strings.Count(html, "toast-region"); n != 6 {
		t.Fatalf("region count = %d, want 6", n)
	}
	for _, anchor := range AnchorOrder {
		region := `class="toast-region" data-anchor="` + anchor.String() + `"`
		if strings.Count(html, region) != 1 {
			t.Errorf("anchor %s should have exactly one region", anchor)
		}
	}
	// Each card landed in its own region, so every card has index 0.
	if n := strings.Count(html, `data-index="0"`); n != 6 {
		t.Errorf("cards at index 0 = %d, want 6", n)
	}
}

func TestManagerRendersModeAttribute(t *testing.T) {
	rt := uitest.NewRuntime()
	s := stickyStore(rt)
	m := NewManager(rt, s)

	html := uitest.RenderToString(m.Render())
	if !strings.Contains(html, `data-mode="light"`) {
		t.Fatalf("missing light mode attribute: %s", html)
	}

	s.ToggleMode()
	html = uitest.RenderToString(m.Render())
	if !strings.Contains(html, `data-mode="dark"`) {
		t.Fatalf("missing dark mode attribute: %s", html)
	}
}

func TestManagerCapsVisiblePerAnchor(t *testing.T) {
	rt := uitest.NewRuntime()
	s := NewStore(rt, WithConfig(Config{
		DefaultDuration: time.Hour,
		ExitGrace:       10 * time.Millisecond,
	}))
	m := NewManager(rt, s)

	ids := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		ids = append(ids, s.Notify(sticky(Anchor{Top, Right}, "msg-"+string(rune('a'+i)))))
	}

	html := uitest.RenderToString(m.Render())
	if n := strings.Count(html, "toast-slot"); n != 7 {
		t.Fatalf("visible cards = %d, want 7", n)
	}
	if strings.Contains(html, "msg-h") {
		t.Fatal("eighth entry rendered while the bucket is full")
	}

	// Removing one earlier entry promotes the queued eighth.
	s.Exit(ids[0])
	waitFor(t, func() bool {
		_, ok := find(s.Notifications(), ids[0])
		return !ok
	}, "first entry to be removed")

	html = uitest.RenderToString(m.Render())
	if n := strings.Count(html, "toast-slot"); n != 7 {
		t.Fatalf("visible cards after removal = %d, want 7", n)
	}
	if !strings.Contains(html, "msg-h") {
		t.Error("queued entry did not surface after removal")
	}
}

func TestManagerExitingCardKeepsIndex(t *testing.T) {
	rt := uitest.NewRuntime()
	s := stickyStore(rt)
	m := NewManager(rt, s)

	s.Notify(sticky(Anchor{Top, Left}, "first"))
	mid := s.Notify(sticky(Anchor{Top, Left}, "second"))
	s.Notify(sticky(Anchor{Top, Left}, "third"))

	// Establish indices, then start the middle card's exit.
	uitest.RenderToString(m.Render())
	s.Exit(mid)

	html := uitest.RenderToString(m.Render())

	// The departing card holds index 1 while the third card closes up
	// into the same slot underneath it.
	exiting := regionCardAttrs(html, "second")
	if !strings.Contains(exiting, `data-index="1"`) {
		t.Errorf("exiting card attrs = %q, want index 1", exiting)
	}
	if !strings.Contains(exiting, "exiting") {
		t.Errorf("exiting card attrs = %q, want exiting class", exiting)
	}
	if third := regionCardAttrs(html, "third"); !strings.Contains(third, `data-index="1"`) {
		t.Errorf("third card attrs = %q, want index 1", third)
	}
	if first := regionCardAttrs(html, "first"); !strings.Contains(first, `data-index="0"`) {
		t.Errorf("first card attrs = %q, want index 0", first)
	}
}

// regionCardAttrs extracts the opening tag of the card containing message.
func regionCardAttrs(html, message string) string {
	at := strings.Index(html, message)
	if at < 0 {
		return ""
	}
	start := strings.LastIndex(html[:at], "toast-card")
	if start < 0 {
		return ""
	}
	end := strings.Index(html[start:], ">")
	if end < 0 {
		return html[start:]
	}
	return html[start : start+end]
}

func TestManagerPrunesTransientState(t *testing.T) {
	rt := uitest.NewRuntime()
	s := NewStore(rt, WithConfig(Config{
		DefaultDuration: time.Hour,
		ExitGrace:       10 * time.Millisecond,
	}))
	m := NewManager(rt, s)

	id := s.Notify(sticky(Anchor{Bottom, Left}, "ephemeral"))
	keep := s.Notify(sticky(Anchor{Bottom, Left}, "keeper"))

	uitest.RenderToString(m.Render())
	if _, ok := m.cards[id]; !ok {
		t.Fatal("render did not create card state")
	}

	s.Exit(id)
	waitFor(t, func() bool {
		_, ok := find(s.Notifications(), id)
		return !ok
	}, "entry to be removed")

	uitest.RenderToString(m.Render())

	if _, ok := m.cards[id]; ok {
		t.Error("card state not pruned after removal")
	}
	if _, ok := m.prevIndex[id]; ok {
		t.Error("index entry not pruned after removal")
	}
	if _, ok := m.cards[keep]; !ok {
		t.Error("live card state was pruned")
	}
}
