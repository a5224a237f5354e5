// Package session holds runtime state shared by the HTTP API and control connections.
package session

import "sync"

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	Profile       string
	Connections   int
	Gestures      int
}

// Session holds authentication and profile state for the remote viewer.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	profile       string
	connections   int
	gestures      int
}

// New returns an initialized session with the given password. An empty
// password disables authentication.
func New(password string) *Session {
	return &Session{
		password:      password,
		authenticated: password == "",
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.password == "" {
		s.authenticated = true
		return true
	}
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state. Without a password it has no effect.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = s.password == ""
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetProfile records the profile new control connections start with.
func (s *Session) SetProfile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = name
}

// Profile returns the selected profile name, empty for the base configuration.
func (s *Session) Profile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// ConnOpened counts a new control connection.
func (s *Session) ConnOpened() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections++
}

// ConnClosed releases a control connection.
func (s *Session) ConnClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connections > 0 {
		s.connections--
	}
}

// GestureStarted counts a started gesture.
func (s *Session) GestureStarted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures++
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		Profile:       s.profile,
		Connections:   s.connections,
		Gestures:      s.gestures,
	}
}
