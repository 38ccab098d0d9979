// Package toast provides feedback notifications for toastkit applications.
//
// The package is built from four pieces:
//
//   - Store: the state container. It owns the ordered list of live
//     notifications and the theme mode, and is the only write path for
//     both. All timers (auto-dismiss, exit grace) belong to the store, so
//     cards never need to cancel anything when they unmount.
//   - Use/Provide: the accessor pair that exposes one Store to a component
//     tree through the session's value context.
//   - Manager: the renderer. It buckets notifications by screen anchor,
//     caps the visible count per bucket, assigns stable stacking indices,
//     and renders one Card per visible entry.
//   - Card: a single notification. It computes themed colors, plays a
//     mount-in transition, and implements the pointer drag-to-dismiss
//     gesture.
//
// # Lifecycle
//
// A notification moves through exactly three states, in order and never
// backwards: live, exiting, removed. Notify appends a live entry and, for a
// non-negative duration, schedules the transition to exiting after the
// duration and removal one exit-grace period later. Manual close and
// drag-dismiss take the same path through Store.Exit, which is idempotent:
// a late auto-dismiss timer firing for an already-exiting or removed id is
// a no-op.
//
// # Usage
//
//	store := toast.NewStore(sess)
//	store.Bind(sess)
//	toast.Provide(sess, store)
//	sess.MountRoot(root) // root renders toast.NewManager(sess, store)
//
// Producers anywhere in the tree:
//
//	toast.Use(sess).Success("Changes saved")
//	toast.Use(sess).Notify(toast.Notification{
//	    Message:  "Copied to clipboard",
//	    Type:     toast.TypeInfo,
//	    Duration: 1500,
//	    Anchor:   toast.Anchor{V: toast.Bottom, H: toast.Right},
//	})
package toast
