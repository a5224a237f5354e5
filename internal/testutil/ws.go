// Package testutil holds helpers shared by package tests.
package testutil

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// DialWS opens a websocket to path on srv and closes it when the test ends.
func DialWS(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("dial %s failed (status %d): %v", url, status, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// RoundTrip writes msg as JSON and decodes the next JSON message into reply.
func RoundTrip(t *testing.T, conn *websocket.Conn, msg any, reply any) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.ReadJSON(reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}
}
