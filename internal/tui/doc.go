// Package tui is the interactive console.
//
// Model adapts console.Machine to bubbletea. Key presses go to
// Machine.HandleKey; an intent it returns runs inside a tea.Cmd and its
// result comes back as a message that Update hands to Machine.Apply. The
// machine and the session are only touched from Update, so no locking is
// needed.
//
// Every screen is drawn through renderContainer (header, content,
// footer) except the form and delete modals, which use placeModal.
//
// Config content on the viewer screen is highlighted with chroma according
// to the entry's type.
package tui
