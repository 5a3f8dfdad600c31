package token

import (
	"fmt"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
	"github.com/joshuafuller/pathod/internal/wsframe"
)

// MessageKind distinguishes the three message shapes the grammar
// produces (spec.md §3.3).
type MessageKind int

const (
	KindRequest MessageKind = iota
	KindResponse
	KindWebsocketFrame
)

func (k MessageKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	case KindWebsocketFrame:
		return "websocket_frame"
	default:
		return "unknown"
	}
}

// Message is the parsed AST for one spec-language line: a flat ordered
// list of tokens plus the kind that decides how they're assembled into
// bytes (spec.md §3.3).
type Message struct {
	Kind   MessageKind
	Tokens []Token
}

// Raw reports whether this message carries a Raw token, which the
// resolver uses to skip auto-header synthesis entirely (spec.md §4.3
// step 2).
func (m *Message) Raw() bool {
	for _, t := range m.Tokens {
		if _, ok := t.(Raw); ok {
			return true
		}
	}
	return false
}

// HasWS reports whether this message carries a WS token (websocket
// handshake response marker).
func (m *Message) HasWS() bool {
	for _, t := range m.Tokens {
		if _, ok := t.(WS); ok {
			return true
		}
	}
	return false
}

// HasWF reports whether this message carries a WF token (raw websocket
// frame-header marker).
func (m *Message) HasWF() bool {
	for _, t := range m.Tokens {
		if _, ok := t.(WF); ok {
			return true
		}
	}
	return false
}

// Actions returns the message's pause/disconnect/inject tokens, in the
// order they appeared in the spec.
func (m *Message) Actions() []Token {
	var out []Token
	for _, t := range m.Tokens {
		switch t.(type) {
		case *PauseAt, *DisconnectAt, *InjectAt:
			out = append(out, t)
		}
	}
	return out
}

// Headers returns the message's header-shaped component tokens
// (spec.md §3.3 "headers").
func (m *Message) Headers() []Component {
	var out []Component
	for _, t := range m.Tokens {
		switch v := t.(type) {
		case *Header:
			out = append(out, v)
		case *ContentType:
			out = append(out, v)
		case *Location:
			out = append(out, v)
		case *UserAgent:
			out = append(out, v)
		}
	}
	return out
}

// Body returns the message's first Body token, or nil if it has none.
func (m *Message) Body() *Body {
	for _, t := range m.Tokens {
		if b, ok := t.(*Body); ok {
			return b
		}
	}
	return nil
}

// Code returns the message's status code token, or nil for a request.
func (m *Message) Code() *Code {
	for _, t := range m.Tokens {
		if c, ok := t.(*Code); ok {
			return c
		}
	}
	return nil
}

// Reason returns the message's reason-phrase token, or nil if absent.
func (m *Message) Reason() *Reason {
	for _, t := range m.Tokens {
		if r, ok := t.(*Reason); ok {
			return r
		}
	}
	return nil
}

// Method returns the message's verb token, or nil for a response.
func (m *Message) Method() *Method {
	for _, t := range m.Tokens {
		if mt, ok := t.(*Method); ok {
			return mt
		}
	}
	return nil
}

// Path returns the message's path token, or nil for a response.
func (m *Message) Path() *Path {
	for _, t := range m.Tokens {
		if p, ok := t.(*Path); ok {
			return p
		}
	}
	return nil
}

// PathodSpec returns the message's embedded spec token ("s'...'"), or
// nil if it has none (spec.md §4.5: a request's embedded spec text is
// rendered immediately after its path, with no separator).
func (m *Message) PathodSpec() *PathodSpec {
	for _, t := range m.Tokens {
		if p, ok := t.(*PathodSpec); ok {
			return p
		}
	}
	return nil
}

// Spec renders the message back to one line of spec-language text:
// each token's own Spec, colon-joined in declaration order (spec.md §8
// law: parse then Spec reproduces an equivalent spec).
func (m *Message) Spec() string {
	s := ""
	for i, t := range m.Tokens {
		if i > 0 {
			s += ":"
		}
		s += t.Spec()
	}
	return s
}

// Values returns the ordered byte generators that together make up the
// wire-exact rendering of this message: preamble, headers (including
// ones the resolver synthesized), a blank-line separator, and body
// (spec.md §4.5, "message-specific preamble assembly").
func (m *Message) Values(s *settings.Settings) ([]Value, error) {
	var out []Value
	preamble, err := m.preambleValues(s)
	if err != nil {
		return nil, err
	}
	out = append(out, preamble...)

	for _, h := range m.Headers() {
		vs, err := h.Values(s)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	if m.Kind != KindWebsocketFrame {
		out = append(out, values.NewLiteral([]byte("\r\n")))
	}

	if b := m.Body(); b != nil {
		vs, err := b.Values(s)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

func (m *Message) preambleValues(s *settings.Settings) ([]Value, error) {
	switch m.Kind {
	case KindRequest:
		var out []Value
		method := m.Method()
		if method == nil {
			method = NewMethodKeyword("get")
		}
		mv, err := method.Values(s)
		if err != nil {
			return nil, err
		}
		out = append(out, mv...)

		path := m.Path()
		if path == nil {
			path = &Path{Value: NewLiteralValue([]byte("/"), true, 0)}
		}
		pg, err := path.Value.Generator(s)
		if err != nil {
			return nil, err
		}
		out = append(out, pg)
		if ps := m.PathodSpec(); ps != nil {
			// An embedded spec's rendered bytes splice in immediately
			// after the path, with no separator (spec.md §4.5).
			sv, err := ps.Values(s)
			if err != nil {
				return nil, err
			}
			out = append(out, sv...)
		}
		out = append(out, values.NewLiteral([]byte(" HTTP/1.1\r\n")))
		return out, nil

	case KindResponse:
		var out []Value
		out = append(out, values.NewLiteral([]byte("HTTP/1.1 ")))
		code := m.Code()
		if code == nil {
			code = &Code{Code: 200}
		}
		cv, err := code.Values(s)
		if err != nil {
			return nil, err
		}
		out = append(out, cv...)

		reason := m.Reason()
		if reason == nil || reason.Value == nil {
			reason = &Reason{Value: defaultReason(code.Code)}
		}
		rv, err := reason.Values(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rv...)
		out = append(out, values.NewLiteral([]byte("\r\n")))
		return out, nil

	case KindWebsocketFrame:
		return []Value{values.NewLiteral(wsframe.Header())}, nil

	default:
		return nil, fmt.Errorf("pathod: unknown message kind %v", m.Kind)
	}
}

// Length is the sum of this message's rendered byte generators,
// excluding bytes an InjectAt splices in out-of-band (spec.md §3.3
// "length").
func (m *Message) Length(s *settings.Settings) (int, error) {
	vs, err := m.Values(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, v := range vs {
		total += v.Len()
	}
	return total, nil
}

// MaximumLength is Length plus every InjectAt's payload size: an upper
// bound on the bytes one emission of the message writes (spec.md §3.3
// "maximum_length").
func (m *Message) MaximumLength(s *settings.Settings) (int, error) {
	total, err := m.Length(s)
	if err != nil {
		return 0, err
	}
	for _, t := range m.Actions() {
		inj, ok := t.(*InjectAt)
		if !ok {
			continue
		}
		n, err := inj.Value.Len(s)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// PreviewSafe returns a copy of this message with every PauseAt token
// removed, for callers that want to inspect the would-be bytes without
// actually waiting out its pauses (spec.md §3.3 "preview_safe").
func (m *Message) PreviewSafe() *Message {
	out := &Message{Kind: m.Kind}
	for _, t := range m.Tokens {
		if _, ok := t.(*PauseAt); ok {
			continue
		}
		out.Tokens = append(out.Tokens, t)
	}
	return out
}

// Resolve applies the resolver's per-action pass, replacing each
// action token's symbolic offset with a numeric one (spec.md §4.3
// step 5). Auto-header synthesis lives in internal/resolve, which
// calls this after inserting any synthesized headers.
func (m *Message) Resolve(s *settings.Settings) (*Message, error) {
	out := &Message{Kind: m.Kind}
	for _, t := range m.Tokens {
		if r, ok := t.(resolvable); ok {
			rt, err := r.Resolve(s, m)
			if err != nil {
				return nil, err
			}
			out.Tokens = append(out.Tokens, rt)
			continue
		}
		out.Tokens = append(out.Tokens, t)
	}
	return out, nil
}

// freeze realizes every value-bearing token's content, producing a
// message with no Generate or File values left (spec.md §8 law 10).
func (m *Message) freeze(s *settings.Settings) (*Message, error) {
	out := &Message{Kind: m.Kind}
	for _, t := range m.Tokens {
		if f, ok := t.(freezable); ok {
			ft, err := f.FreezeToken(s)
			if err != nil {
				return nil, err
			}
			out.Tokens = append(out.Tokens, ft)
			continue
		}
		out.Tokens = append(out.Tokens, t)
	}
	return out, nil
}

// Freeze is the exported form of freeze, for callers outside this
// package that need a stable, re-emittable snapshot of a resolved
// message. Neither internal/resolve nor internal/emit calls it.
func (m *Message) Freeze(s *settings.Settings) (*Message, error) {
	return m.freeze(s)
}
