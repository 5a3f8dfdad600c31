// Package resolve implements the message resolution pipeline: auto-header
// synthesis and offset resolution (spec.md §4.3).
package resolve

import (
	"strconv"

	"errors"

	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/token"
	"github.com/joshuafuller/pathod/internal/wsframe"
)

var errNoWebsocketKey = errors.New("settings.WebsocketKey is required to resolve a WS response")

// Resolve rewrites msg per the five-step algorithm: WebSocket handshake
// header synthesis, Content-Length/Host synthesis, then per-token
// offset resolution against the resulting message (spec.md §4.3).
// Resolution is idempotent: resolving an already-resolved message
// returns an equivalent structure.
func Resolve(msg *token.Message, s *settings.Settings) (*token.Message, error) {
	if s == nil {
		s = settings.New()
	}

	tokens := append([]token.Token(nil), msg.Tokens...)
	intermediate := &token.Message{Kind: msg.Kind, Tokens: tokens}

	if intermediate.HasWS() {
		var err error
		intermediate, err = synthesizeWebsocket(intermediate, s)
		if err != nil {
			return nil, err
		}
	}

	if !intermediate.Raw() && !intermediate.HasWS() {
		// Both message kinds get Content-Length synthesized, 0 absent a
		// body (spec.md §8 scenario: a bodyless GET still gets
		// "Content-Length: 0" — the distilled spec widens the source's
		// request-only-with-body rule to both kinds uniformly). A WS
		// handshake gets its Upgrade/Connection/Sec-WebSocket-* headers
		// instead and is excluded here the same way Raw is (spec.md §8).
		intermediate = synthesizeContentLength(intermediate, s)
		if intermediate.Kind == token.KindRequest {
			intermediate = synthesizeHost(intermediate, s)
		}
	}

	return intermediate.Resolve(s)
}

func hasHeaderKey(msg *token.Message, key string) bool {
	for _, h := range msg.Headers() {
		if headerKeyText(h) == key {
			return true
		}
	}
	return false
}

// headerKeyText reports the literal key text of a header-shaped
// component, for the handful of fixed-key shortcuts as well as the
// general Header token.
func headerKeyText(c token.Component) string {
	switch h := c.(type) {
	case *token.Header:
		return string(rawLiteralBytes(h.Key))
	case *token.ContentType:
		return "Content-Type"
	case *token.Location:
		return "Location"
	case *token.UserAgent:
		return "User-Agent"
	default:
		return ""
	}
}

func rawLiteralBytes(v *token.ValueExpr) []byte {
	b, err := v.Generator(settings.New())
	if err != nil {
		return nil
	}
	return b.Slice(0, b.Len())
}

func header(key, value string) *token.Header {
	return &token.Header{
		Key:   token.NewLiteralValue([]byte(key), false, '\''),
		Value: token.NewLiteralValue([]byte(value), false, '\''),
	}
}

func synthesizeContentLength(msg *token.Message, s *settings.Settings) *token.Message {
	if hasHeaderKey(msg, "Content-Length") {
		return msg
	}
	length := 0
	if b := msg.Body(); b != nil {
		if n, err := b.Value.Len(s); err == nil {
			length = n
		}
	}
	out := append([]token.Token(nil), msg.Tokens...)
	out = append(out, header("Content-Length", strconv.Itoa(length)))
	return &token.Message{Kind: msg.Kind, Tokens: out}
}

func synthesizeHost(msg *token.Message, s *settings.Settings) *token.Message {
	if s.RequestHost == "" || hasHeaderKey(msg, "Host") {
		return msg
	}
	out := append([]token.Token(nil), msg.Tokens...)
	out = append(out, header("Host", s.RequestHost))
	return &token.Message{Kind: msg.Kind, Tokens: out}
}

func synthesizeWebsocket(msg *token.Message, s *settings.Settings) (*token.Message, error) {
	switch msg.Kind {
	case token.KindResponse:
		return synthesizeWebsocketResponse(msg, s)
	case token.KindRequest:
		return synthesizeWebsocketRequest(msg, s)
	default:
		return msg, nil
	}
}

func synthesizeWebsocketResponse(msg *token.Message, s *settings.Settings) (*token.Message, error) {
	if s.WebsocketKey == "" {
		return nil, &pathoderrors.RenderError{Operation: "websocket handshake headers", Err: errNoWebsocketKey}
	}

	out := append([]token.Token(nil), msg.Tokens...)
	if msg.Code() == nil {
		out = append([]token.Token{&token.Code{Code: 101}}, out...)
	}
	updated := &token.Message{Kind: msg.Kind, Tokens: out}

	for _, hp := range wsframe.ServerHandshakeHeaders(s.WebsocketKey) {
		if !hasHeaderKey(updated, hp.Name) {
			out = append(out, header(hp.Name, hp.Value))
		}
	}
	return &token.Message{Kind: msg.Kind, Tokens: out}, nil
}

func synthesizeWebsocketRequest(msg *token.Message, s *settings.Settings) (*token.Message, error) {
	out := append([]token.Token(nil), msg.Tokens...)
	if msg.Method() == nil {
		withMethod := make([]token.Token, 0, len(out)+1)
		withMethod = append(withMethod, out[0])
		withMethod = append(withMethod, token.NewMethodKeyword("get"))
		withMethod = append(withMethod, out[1:]...)
		out = withMethod
	}
	updated := &token.Message{Kind: msg.Kind, Tokens: out}

	for _, hp := range wsframe.ClientHandshakeHeaders() {
		if !hasHeaderKey(updated, hp.Name) {
			out = append(out, header(hp.Name, hp.Value))
		}
	}
	return &token.Message{Kind: msg.Kind, Tokens: out}, nil
}
