// Package history keeps a local audit log of admin actions.
//
// Every create, update and delete issued from the console or the one-shot
// commands is appended to a SQLite database (modernc.org/sqlite, no cgo),
// together with its outcome. The log is read back by `nacos-tui history`.
//
// A history failure never blocks the action itself; callers log it and
// carry on.
package history
