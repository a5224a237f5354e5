package control

import (
	"log"
	"net/http"
	"sync"

	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/profile"
	"github.com/frudas24/boxclip/internal/session"
	"github.com/gorilla/websocket"
)

// Server handles websocket control input. Every connection gets its own engine.
type Server struct {
	upgrader websocket.Upgrader
	session  *session.Session
	profiles []profile.Profile

	mu   sync.RWMutex
	base clipper.Config
}

// NewServer creates a control websocket server starting connections from base.
func NewServer(sess *session.Session, base clipper.Config, profiles []profile.Profile) *Server {
	return &Server{
		session:  sess,
		base:     base,
		profiles: profiles,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h, err := s.newHandler()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.session.ConnOpened()
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := conn.WriteJSON(h.handle(msg)); err != nil {
			return
		}
	}
}

// Base returns the configuration new connections start from.
func (s *Server) Base() clipper.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// SetBase replaces the configuration for connections opened afterwards.
// Open connections keep their engines.
func (s *Server) SetBase(cfg clipper.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.base = cfg
	s.mu.Unlock()
	return nil
}

// Profiles returns the loaded profiles.
func (s *Server) Profiles() []profile.Profile {
	out := make([]profile.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// newHandler builds the per-connection engine from the selected profile.
func (s *Server) newHandler() (*handler, error) {
	base := s.Base()
	cfg := base
	if name := s.session.Profile(); name != "" {
		if p, ok := profile.Find(s.profiles, name); ok {
			applied, err := p.Apply(base)
			if err != nil {
				log.Printf("control: profile %q ignored: %v", name, err)
			} else {
				cfg = applied
			}
		}
	}
	engine, err := clipper.New(cfg)
	if err != nil {
		return nil, err
	}
	return &handler{server: s, engine: engine}, nil
}

// cleanupConn releases the connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.session.ConnClosed()
	_ = conn.Close()
}
