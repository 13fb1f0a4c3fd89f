// Package navigation is the screen router.
//
// The whole flow is a flat transition table keyed by (screen, action). Each
// entry names a target screen and, for the few transitions that change the
// session flags, an effect applied to the session copy. Apply is pure: it
// takes a session by value and returns the next one.
//
// Two rules sit outside the table:
//
//   - When the sidebar is visible (logged in, not on an auth screen) the
//     sidebar entries are reachable from every screen.
//   - Resolve maps any tag to a screen and never fails; unknown tags land on
//     the dashboard.
package navigation
