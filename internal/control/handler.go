package control

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frudas24/boxclip/internal/clipper"
	"github.com/frudas24/boxclip/internal/geom"
	"github.com/frudas24/boxclip/internal/profile"
)

var errNoRects = errors.New("clip and bound are required")

// handler serves one control connection with its own engine.
type handler struct {
	server *Server
	engine *clipper.Engine
}

// handle dispatches a single control message.
func (h *handler) handle(msg Message) Reply {
	switch msg.T {
	case MsgConfigure:
		return h.handleConfigure(msg)
	case MsgRects:
		return h.handleRects(msg)
	case MsgStart:
		return h.handleStart(msg)
	case MsgMove:
		return h.handleMove(msg)
	case MsgEnd:
		h.engine.EndGesture()
		r, _ := h.engine.Rect()
		return rectReply(r, false)
	case MsgCancel:
		return rectReply(h.engine.CancelGesture(), true)
	case MsgRemap:
		return h.handleRemap(msg)
	case MsgHit:
		return Reply{T: ReplyHandle, Handle: h.engine.HitTest(msg.point()).String()}
	default:
		return errorReply(fmt.Errorf("unknown message type %q", msg.T))
	}
}

// handleConfigure applies a profile or a partial configuration.
func (h *handler) handleConfigure(msg Message) Reply {
	cfg := h.engine.Config()
	if msg.Profile != "" {
		p, ok := profile.Find(h.server.profiles, msg.Profile)
		if !ok {
			return errorReply(fmt.Errorf("profile %q not found", msg.Profile))
		}
		applied, err := p.Apply(h.server.Base())
		if err != nil {
			return errorReply(err)
		}
		cfg = applied
	}
	if len(msg.Config) > 0 {
		if err := json.Unmarshal(msg.Config, &cfg); err != nil {
			return errorReply(fmt.Errorf("config: %w", err))
		}
		rot, err := geom.ParseRotation(int(cfg.Rotation))
		if err != nil {
			return errorReply(err)
		}
		cfg.Rotation = rot
	}
	if err := h.engine.Configure(cfg); err != nil {
		return errorReply(err)
	}
	if msg.Profile != "" {
		h.server.session.SetProfile(msg.Profile)
	}
	return Reply{T: ReplyOK}
}

// handleRects replaces the clip rectangle and bound and echoes both normalized.
func (h *handler) handleRects(msg Message) Reply {
	if msg.Clip == nil || msg.Bound == nil {
		return errorReply(errNoRects)
	}
	h.engine.SetRects(*msg.Clip, *msg.Bound)
	r, _ := h.engine.Rect()
	bound, _ := h.engine.Bound()
	reply := rectReply(r, true)
	reply.Bound = &bound
	return reply
}

// handleStart begins a gesture.
func (h *handler) handleStart(msg Message) Reply {
	p2, err := msg.second()
	if err != nil {
		return errorReply(err)
	}
	handle := h.engine.StartGesture(msg.point(), p2)
	if h.engine.Active() {
		h.server.session.GestureStarted()
	}
	return Reply{T: ReplyHandle, Handle: handle.String()}
}

// handleMove applies one gesture update.
func (h *handler) handleMove(msg Message) Reply {
	p2, err := msg.second()
	if err != nil {
		return errorReply(err)
	}
	r, applied := h.engine.MoveGesture(msg.point(), p2)
	return rectReply(r, applied)
}

// handleRemap relabels a rectangle for the given or configured rotation.
func (h *handler) handleRemap(msg Message) Reply {
	if msg.Clip == nil {
		return errorReply(errors.New("clip is required"))
	}
	if msg.Rotation == nil {
		return rectReply(h.engine.RemapForRotation(*msg.Clip), true)
	}
	rot, err := geom.ParseRotation(*msg.Rotation)
	if err != nil {
		return errorReply(err)
	}
	return rectReply(geom.Remap(*msg.Clip, rot), true)
}
