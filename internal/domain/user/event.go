package user

// Event is a domain event raised by the auth flow.
type Event interface{ Type() string }

// EventDispatcher fans an event out to subscribed handlers. Dispatch is
// best-effort from the caller's perspective; handler errors must not fail the
// operation that raised the event.
type EventDispatcher interface {
	Dispatch(event Event) error
}

// SignedIn fires when an identity becomes available for a browser session,
// on both sign-in and sign-up. SessionID scopes the session whose cart the
// snapshot handler should persist.
type SignedIn struct {
	User      User
	SessionID string
}

func (e SignedIn) Type() string { return "UserSignedIn" }
