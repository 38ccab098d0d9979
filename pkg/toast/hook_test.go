package toast

import "testing"

// mapContext is a minimal ValueContext for hook tests.
type mapContext map[any]any

func (m mapContext) SetValue(key, value any) { m[key] = value }
func (m mapContext) Value(key any) any       { return m[key] }

func TestUseReturnsProvidedStore(t *testing.T) {
	ctx := mapContext{}
	s := newTestStore(t)

	Provide(ctx, s)
	if got := Use(ctx); got != s {
		t.Fatal("Use returned a different store than was provided")
	}
}

func TestUseWithoutProvideMemoizesDetachedStore(t *testing.T) {
	ctx := mapContext{}

	first := Use(ctx)
	if first == nil {
		t.Fatal("Use returned nil without a provided store")
	}
	if second := Use(ctx); second != first {
		t.Fatal("detached store must be memoized per context")
	}

	// The detached store is fully functional, its output just has no
	// manager to render it.
	id := first.Notify(Notification{Message: "orphan", Duration: -1})
	if _, ok := find(first.Notifications(), id); !ok {
		t.Error("detached store dropped the notification")
	}
}
