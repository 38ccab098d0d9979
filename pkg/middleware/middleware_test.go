package middleware

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/toastkit-go/toastkit/pkg/session"
)

func TestMetricsCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Metrics(WithRegistry(reg), WithNamespace("test"))

	handled := 0
	fn := mw(func(ev *session.Event) { handled++ })

	fn(&session.Event{HID: "h1", Name: "onclick"})
	fn(&session.Event{HID: "h1", Name: "onclick"})
	fn(&session.Event{HID: "h2", Name: "onpointerup"})

	if handled != 3 {
		t.Fatalf("expected 3 handled events, got %d", handled)
	}

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var sawCounter, sawHistogram bool
	for _, mf := range metrics {
		switch {
		case strings.HasSuffix(mf.GetName(), "events_total"):
			sawCounter = true
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			if total != 3 {
				t.Errorf("expected events_total 3, got %v", total)
			}
		case strings.HasSuffix(mf.GetName(), "event_duration_seconds"):
			sawHistogram = true
		}
	}
	if !sawCounter || !sawHistogram {
		t.Errorf("missing metrics: counter=%v histogram=%v", sawCounter, sawHistogram)
	}
}

func TestSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := SessionGauge(WithRegistry(reg))

	g.Inc()
	g.Inc()
	g.Dec()

	if got := testutil.ToFloat64(g); got != 1 {
		t.Errorf("expected gauge 1, got %v", got)
	}
}

func TestOTelPassesThrough(t *testing.T) {
	mw := OTel(WithTracerName("test"))

	handled := false
	fn := mw(func(ev *session.Event) { handled = true })
	fn(&session.Event{HID: "h1", Name: "onclick"})

	if !handled {
		t.Error("traced event did not reach handler")
	}
}

func TestOTelFilterSkips(t *testing.T) {
	skipped := 0
	mw := OTel(WithFilter(func(ev *session.Event) bool {
		skipped++
		return false
	}))

	handled := false
	fn := mw(func(ev *session.Event) { handled = true })
	fn(&session.Event{HID: "h1", Name: "onpointermove"})

	if !handled {
		t.Error("filtered event must still reach handler")
	}
	if skipped != 1 {
		t.Errorf("filter called %d times, expected 1", skipped)
	}
}
