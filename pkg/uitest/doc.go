// Package uitest provides test helpers for toastkit components: a fake
// runtime standing in for a session, and assertions on rendered HTML.
package uitest
