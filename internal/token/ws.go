package token

import "github.com/joshuafuller/pathod/internal/settings"

// WS marks a Response as a websocket handshake response: the resolver
// synthesizes Upgrade/Connection/Sec-WebSocket-Accept headers from the
// message's Settings.WebsocketKey instead of Content-Length (spec.md
// §4.3 step 2, §6 "WS handshake header synthesis").
type WS struct{}

func (WS) Spec() string { return "ws" }

func (WS) Values(s *settings.Settings) ([]Value, error) { return nil, nil }
