// Package console implements the interactive state machine behind the
// terminal console.
//
// The machine knows nothing about terminals or HTTP. It consumes key events
// and results, and exposes the state a renderer needs to draw a frame.
//
// # Screens
//
//   - ScreenMain: list browsing across the Config, Service and Namespace menus
//   - ScreenNamespaceAdd: a Form with id, name and description
//   - ScreenNamespaceEdit: a Form with name and description, pre-filled
//   - ScreenNamespaceDeleteConfirm: a yes/no gate over the highlighted namespace
//   - ScreenConfigView: read-only content of one config entry
//   - ScreenQuitting: terminal, no further input is processed
//
// # Transitions
//
// There are exactly two:
//
//	intent := machine.HandleKey(sess, keyMsg) // pure, may raise an Intent
//	res := dispatcher.Run(ctx, intent)        // I/O, runs in a tea.Cmd
//	next := machine.Apply(sess, res)          // pure, updates session caches
//
// A non-nil next is run the same way. Apply raises one when the namespace whose
// configs are cached disappears, to fetch the configs of the first namespace.
//
// While an intent is pending the machine ignores input, so remote calls never
// overlap. Session caches are changed only by Apply and only after the remote
// call succeeded; a failed call leaves the screen and caches as they were and
// sets Err.
//
// # Forms
//
// Form fields are addressed by FieldKey, not by position. FormAdd carries
// id, name and description; FormEdit carries name and description. An empty
// id on the add form is replaced by a generated UUID before the intent is
// raised, so the new namespace can be edited and deleted later.
package console
