package render

import (
	"strings"
	"testing"

	"github.com/toastkit-go/toastkit/pkg/vdom"
)

func TestRenderSimpleElement(t *testing.T) {
	r := NewRenderer()
	html, err := r.RenderToString(vdom.Div(vdom.Class("toast-card"), vdom.Text("Saved")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := `<div class="toast-card">Saved</div>`
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderEscapesText(t *testing.T) {
	r := NewRenderer()
	html, err := r.RenderToString(vdom.Span(vdom.Text(`<script>"&'`)))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("text not escaped: %q", html)
	}
	if !strings.Contains(html, `&lt;script&gt;"&amp;'`) {
		t.Errorf("unexpected escaping: %q", html)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	r := NewRenderer()
	html, err := r.RenderToString(vdom.Div(vdom.Data("msg", `a"b<c`)))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, `data-msg="a&quot;b&lt;c"`) {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	r := NewRenderer()
	html, err := r.RenderToString(vdom.Div(
		vdom.AriaAtomic(true),
		vdom.AriaHidden(false),
	))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, " aria-atomic") {
		t.Errorf("true boolean attr missing: %q", html)
	}
	if strings.Contains(html, "aria-hidden") {
		t.Errorf("false boolean attr must be omitted: %q", html)
	}
}

func TestRenderAssignsHIDAndCollectsHandlers(t *testing.T) {
	r := NewRenderer()
	clicked := false
	node := vdom.Button(vdom.OnClick(func() { clicked = true }))

	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, `data-hid="h1"`) {
		t.Errorf("interactive element missing data-hid: %q", html)
	}

	h, ok := r.Handlers()[HandlerKey("h1", "onclick")]
	if !ok {
		t.Fatal("handler not registered")
	}
	h.(func())()
	if !clicked {
		t.Error("registered handler is not the attached function")
	}
}

func TestRenderStopPropagationDataAttr(t *testing.T) {
	r := NewRenderer()
	node := vdom.Button(vdom.OnClick(vdom.StopPropagation(func() {})))

	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, "data-stop-click") {
		t.Errorf("stop-propagation modifier not emitted: %q", html)
	}
	if _, ok := r.Handlers()[HandlerKey("h1", "onclick")].(func()); !ok {
		t.Error("modified handler not unwrapped in registry")
	}
}

func TestRenderVoidElement(t *testing.T) {
	r := NewRenderer()
	html, err := r.RenderToString(vdom.Img(vdom.Src("/icon.svg"), vdom.Alt("")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := `<img alt="" src="/icon.svg">`
	if html != want {
		t.Errorf("expected %q, got %q", want, html)
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	r := NewRenderer()
	comp := vdom.Func(func() *vdom.VNode { return vdom.Span("inner") })
	node := vdom.Fragment(vdom.Div("a"), comp)

	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if html != "<div>a</div><span>inner</span>" {
		t.Errorf("unexpected output: %q", html)
	}
}

func TestResetClearsState(t *testing.T) {
	r := NewRenderer()
	if _, err := r.RenderToString(vdom.Button(vdom.OnClick(func() {}))); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	r.Reset()
	if len(r.Handlers()) != 0 {
		t.Error("Reset did not clear handlers")
	}

	html, err := r.RenderToString(vdom.Button(vdom.OnClick(func() {})))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `data-hid="h1"`) {
		t.Errorf("HID counter not reset: %q", html)
	}
}
