// Package control carries the clip engine's call surface over a websocket.
package control

import (
	"encoding/json"
	"errors"

	"github.com/frudas24/boxclip/internal/geom"
)

// Message types sent by the client.
const (
	MsgConfigure = "configure"
	MsgRects     = "rects"
	MsgStart     = "start"
	MsgMove      = "move"
	MsgEnd       = "end"
	MsgCancel    = "cancel"
	MsgRemap     = "remap"
	MsgHit       = "hit"
)

// Reply types sent by the server.
const (
	ReplyOK     = "ok"
	ReplyRect   = "rect"
	ReplyHandle = "handle"
	ReplyError  = "error"
)

// Message is a control websocket payload. The second contact is present
// only when both x2 and y2 are sent; (0,0) is a valid position.
type Message struct {
	T        string          `json:"t"`
	X        float64         `json:"x,omitempty"`
	Y        float64         `json:"y,omitempty"`
	X2       *float64        `json:"x2,omitempty"`
	Y2       *float64        `json:"y2,omitempty"`
	Clip     *geom.Rect      `json:"clip,omitempty"`
	Bound    *geom.Rect      `json:"bound,omitempty"`
	Rotation *int            `json:"rotation,omitempty"`
	Profile  string          `json:"profile,omitempty"`
	Config   json.RawMessage `json:"config,omitempty"`
}

// Reply is the server's answer to one message.
type Reply struct {
	T       string     `json:"t"`
	Rect    *geom.Rect `json:"rect,omitempty"`
	Bound   *geom.Rect `json:"bound,omitempty"`
	Applied bool       `json:"applied,omitempty"`
	Handle  string     `json:"handle,omitempty"`
	Error   string     `json:"error,omitempty"`
}

var errHalfContact = errors.New("x2 and y2 must be sent together")

// point returns the primary contact.
func (m Message) point() geom.Point {
	return geom.Point{X: m.X, Y: m.Y}
}

// second returns the optional second contact.
func (m Message) second() (*geom.Point, error) {
	switch {
	case m.X2 == nil && m.Y2 == nil:
		return nil, nil
	case m.X2 == nil || m.Y2 == nil:
		return nil, errHalfContact
	default:
		return &geom.Point{X: *m.X2, Y: *m.Y2}, nil
	}
}

// rectReply wraps a rectangle reply.
func rectReply(r geom.Rect, applied bool) Reply {
	return Reply{T: ReplyRect, Rect: &r, Applied: applied}
}

// errorReply wraps an error reply.
func errorReply(err error) Reply {
	return Reply{T: ReplyError, Error: err.Error()}
}
