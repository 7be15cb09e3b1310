package models

// Principal is the authenticated identity attached to a request. It is
// resolved once by the auth middleware and passed explicitly into every
// service call instead of being read from ambient session state.
type Principal struct {
	ID      uint
	IsAdmin bool
}
