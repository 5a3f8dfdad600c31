// Package wsframe builds the byte-exact WebSocket constructs spec.md
// §6 requires: the canonical data-frame header, and the RFC 6455 §4
// client/server handshake header sets.
package wsframe

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"

	"github.com/joshuafuller/pathod/internal/reftable"
)

// ComputeAcceptKey derives Sec-WebSocket-Accept from a client's
// Sec-WebSocket-Key per RFC 6455 §1.3: base64(sha1(key + magic GUID)).
func ComputeAcceptKey(clientKey string) string {
	h := sha1.New()
	h.Write([]byte(clientKey))
	h.Write([]byte(reftable.WebSocketGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// HeaderPair is an ordered header name/value, used instead of a map so
// callers can append handshake headers in a fixed, reproducible order.
type HeaderPair struct {
	Name  string
	Value string
}

// ServerHandshakeHeaders returns the headers a pathod-hosted server
// appends to a WS response once it knows the client's handshake key
// (spec.md §4.3 step 2, resolver).
func ServerHandshakeHeaders(clientKey string) []HeaderPair {
	return []HeaderPair{
		{reftable.HeaderUpgrade, "websocket"},
		{reftable.HeaderConnection, "Upgrade"},
		{reftable.HeaderSecWebSocketAccept, ComputeAcceptKey(clientKey)},
	}
}

// NewClientKey generates a fresh Sec-WebSocket-Key per RFC 6455 §4.1:
// 16 random bytes, base64-encoded. Settings.WebsocketKey is the server
// side's concern (computing Sec-WebSocket-Accept against a key the
// engine did not choose); an outgoing client handshake always mints
// its own, the way the original engine's client_handshake_headers()
// takes no settings argument at all.
func NewClientKey() string {
	raw := make([]byte, 16)
	_, _ = rand.Read(raw) // crypto/rand.Read on the standard Reader never errs in practice
	return base64.StdEncoding.EncodeToString(raw)
}

// ClientHandshakeHeaders returns the headers a pathod-crafted WS
// request appends when the user spec only says "ws" (spec.md §4.3 step
// 2), using a freshly generated client key.
func ClientHandshakeHeaders() []HeaderPair {
	return []HeaderPair{
		{reftable.HeaderUpgrade, "websocket"},
		{reftable.HeaderConnection, "Upgrade"},
		{reftable.HeaderSecWebSocketKey, NewClientKey()},
		{reftable.HeaderSecWebSocketVersion, reftable.WebSocketVersion},
	}
}
