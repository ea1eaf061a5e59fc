// Package ui contains the Bubble Tea program that powers the locale and
// keyboard layout menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, one at a time.
//     Messages are routed through a typed handler registry so each tea.Msg is
//     handled by a focused function (key presses, window resizes).
//   - Navigation helpers (navigation.go) move the cursor, toggle and collapse
//     groups and trigger refreshes. Leaf actions (commands.go) run through the
//     internal/ui/command bus to completion inside Update, so a slow system
//     command blocks the loop until it returns.
//
// State ownership:
//   - The flattened menu, cursor and viewport offset live in
//     internal/ui/state.Level. Group expansion lives in menu.Registry and the
//     current locale and layout in a menu.Status snapshot.
//   - The entry list is rebuilt from scratch after every toggle, action and
//     refresh. The cursor keeps its index across rebuilds, except that a
//     toggle moves it onto the toggled group's header.
//
// Rendering (view.go) measures how many entries fit into the terminal on every
// frame and reclamps the viewport before drawing.
package ui
