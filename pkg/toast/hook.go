package toast

// storeKey is the context key the store is provided under.
var storeKey = &struct{ name string }{"toast.Store"}

// ValueContext is the slice of the session the hook needs: tree-scoped
// value storage. session.Session implements it.
type ValueContext interface {
	SetValue(key, value any)
	Value(key any) any
}

// Provide installs the store into the session's value context so any
// component in the tree can reach it with Use.
func Provide(ctx ValueContext, store *Store) {
	ctx.SetValue(storeKey, store)
}

// Use returns the store provided to this tree.
//
// When no store was provided, Use returns a detached store running on an
// inline dispatcher. That keeps producer code working in isolation (tests,
// storybook-style harnesses) without nil checks; its notifications simply
// render nowhere.
func Use(ctx ValueContext) *Store {
	if s, ok := ctx.Value(storeKey).(*Store); ok {
		return s
	}
	detached := NewStore(inlineDispatcher{})
	Provide(ctx, detached)
	return detached
}

// inlineDispatcher runs functions immediately. Detached stores only; a
// connected session must serialize through its loop instead.
type inlineDispatcher struct{}

func (inlineDispatcher) Dispatch(fn func()) { fn() }
