// Package session holds the state of a logged-in console run.
//
// A Session is created by Bootstrap (one login, one namespace listing and
// one config listing) and is passed explicitly into every console transition.
// Nothing in this package keeps package-level state.
package session
