package app

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/geom"
	"github.com/frudas24/boxclip/internal/profile"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/profiles", a.handleProfiles)
	mux.HandleFunc("/api/config", a.handleConfig)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool           `json:"authenticated"`
	Profile       string         `json:"profile,omitempty"`
	Connections   int            `json:"connections"`
	Gestures      int            `json:"gestures"`
	Engine        clipper.Config `json:"engine"`
}

// configRequest carries a partial engine configuration; reset restores startup values.
type configRequest struct {
	Reset        bool     `json:"reset"`
	Scale        *float64 `json:"scale"`
	Rotation     *int     `json:"rotation"`
	AspectRatio  *float64 `json:"ratio"`
	MinWidth     *float64 `json:"minWidth"`
	MinHeight    *float64 `json:"minHeight"`
	HandleRadius *float64 `json:"handleRadius"`
}

type configResponse struct {
	Applied bool           `json:"applied"`
	Engine  clipper.Config `json:"engine"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the session snapshot and the engine defaults.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	_ = json.NewEncoder(w).Encode(stateResponse{
		Authenticated: snap.Authenticated,
		Profile:       snap.Profile,
		Connections:   snap.Connections,
		Gestures:      snap.Gestures,
		Engine:        a.control.Base(),
	})
}

// handleProfiles returns the loaded profiles.
func (a *App) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	list := a.control.Profiles()
	if list == nil {
		list = []profile.Profile{}
	}
	_ = json.NewEncoder(w).Encode(list)
}

// handleConfig reports or updates the engine defaults for new connections.
func (a *App) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(configResponse{Engine: a.control.Base()})
		return
	case http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	next, err := req.apply(a.control.Base(), a.defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := a.control.SetBase(next); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("config: engine defaults updated ratio=%g min=%gx%g radius=%g", next.AspectRatio, next.MinWidth, next.MinHeight, next.HandleRadius)
	_ = json.NewEncoder(w).Encode(configResponse{Applied: true, Engine: next})
}

// apply overlays the request on cur, or returns defaults on reset.
func (req configRequest) apply(cur, defaults clipper.Config) (clipper.Config, error) {
	if req.Reset {
		return defaults, nil
	}
	next := cur
	if req.Scale != nil {
		next.Scale = *req.Scale
	}
	if req.Rotation != nil {
		rot, err := geom.ParseRotation(*req.Rotation)
		if err != nil {
			return cur, err
		}
		next.Rotation = rot
	}
	if req.AspectRatio != nil {
		next.AspectRatio = *req.AspectRatio
	}
	if req.MinWidth != nil {
		next.MinWidth = *req.MinWidth
	}
	if req.MinHeight != nil {
		next.MinHeight = *req.MinHeight
	}
	if req.HandleRadius != nil {
		next.HandleRadius = *req.HandleRadius
	}
	return next, nil
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
