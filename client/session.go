package client

// Session is the client-side session value. Transitions are pure: each
// returns a new Session rather than mutating shared state, so the owner
// of the Store decides where the current value lives.
type Session struct {
	User          *User
	Token         string
	Authenticated bool
	Hydrated      bool
}

// hydrated is the result of loading persisted state at startup. Any
// token at all counts as authenticated; the server re-verifies it on
// every request, so an expired token just fails there. The session is
// marked hydrated regardless of what was found so dependent code can
// proceed.
func (s Session) hydrated(user *User, token string) Session {
	return Session{
		User:          user,
		Token:         token,
		Authenticated: token != "",
		Hydrated:      true,
	}
}

// authenticated is the result of a successful login, registration, or
// profile update.
func (s Session) authenticated(user User, token string) Session {
	return Session{
		User:          &user,
		Token:         token,
		Authenticated: true,
		Hydrated:      true,
	}
}

// cleared is the result of logout.
func (s Session) cleared() Session {
	return Session{Hydrated: true}
}
