// Package app wires HTTP routes, the session, and the control server together.
package app

import (
	"errors"

	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/config"
	"github.com/frudas24/boxclip/internal/control"
	"github.com/frudas24/boxclip/internal/profile"
	"github.com/frudas24/boxclip/internal/session"
)

// App coordinates the HTTP API and the control websocket.
type App struct {
	cfg     config.Config
	session *session.Session
	control *control.Server
	// defaults is the engine configuration loaded at startup, used by reset.
	defaults clipper.Config
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, profiles []profile.Profile) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &App{
		cfg:      cfg,
		session:  sess,
		control:  control.NewServer(sess, cfg.Engine, profiles),
		defaults: cfg.Engine,
	}, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
