package playground

import (
	"strings"
	"testing"
	"time"

	"github.com/toastkit-go/toastkit/pkg/session"
	"github.com/toastkit-go/toastkit/pkg/toast"
	"github.com/toastkit-go/toastkit/pkg/uitest"
)

func newDetachedApp(t *testing.T) (*App, *session.Session, *toast.Store) {
	t.Helper()
	sess := session.NewDetached(session.Config{})
	t.Cleanup(sess.Close)

	store := toast.NewStore(sess, toast.WithConfig(toast.Config{
		DefaultDuration: time.Hour,
		ExitGrace:       time.Hour,
	}))
	app := NewApp(sess, sess, store)
	return app, sess, store
}

func TestAppRendersControls(t *testing.T) {
	app, _, _ := newDetachedApp(t)
	html := uitest.RenderToString(app.Render())

	for _, want := range []string{
		"toastkit playground",
		"mode-toggle",
		"Success", "Error", "Info", "Alert",
		"top-left", "bottom-right",
		"full", "border", "none",
		"sticky", "clickable", "flood",
		"toast-root",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered app missing %q", want)
		}
	}
}

func TestAppProvidesStore(t *testing.T) {
	_, sess, store := newDetachedApp(t)
	if got := toast.Use(sess); got != store {
		t.Fatal("app did not provide its store to the session")
	}
}

func TestAppReflectsNotifications(t *testing.T) {
	app, _, store := newDetachedApp(t)

	store.Success("it worked")
	html := uitest.RenderToString(app.Render())

	if !strings.Contains(html, "it worked") {
		t.Fatalf("notification missing from render: %s", html)
	}
	if !strings.Contains(html, "toast-success") {
		t.Error("success type class missing")
	}
}

func TestAppModeToggleChangesAttribute(t *testing.T) {
	app, _, store := newDetachedApp(t)

	html := uitest.RenderToString(app.Render())
	if !strings.Contains(html, `data-mode="light"`) {
		t.Fatal("initial mode attribute missing")
	}

	store.ToggleMode()
	html = uitest.RenderToString(app.Render())
	if !strings.Contains(html, `data-mode="dark"`) {
		t.Fatal("dark mode attribute missing after toggle")
	}
	if !strings.Contains(html, "Switch to light") {
		t.Error("toggle label did not flip")
	}
}
