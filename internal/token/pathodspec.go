package token

import (
	"fmt"

	"github.com/joshuafuller/pathod/internal/settings"
)

// specParserHook is populated by internal/parser's init() so this
// package can eagerly sub-parse an embedded PathodSpec token without
// importing the parser package directly — internal/parser already
// imports internal/token to build its own Message, so the reverse
// import would cycle (spec.md §9, resolved open question: PathodSpec
// text is parsed eagerly at construction, not deferred to resolve).
var specParserHook func(text string) (*Message, error)

// RegisterSpecParser installs the parser used to eagerly parse an
// embedded PathodSpec's text. internal/parser calls this from its
// own init().
func RegisterSpecParser(parse func(text string) (*Message, error)) {
	specParserHook = parse
}

// PathodSpec embeds another full spec-language message inline; it is
// produced by a request's "s" atom (spec.md §3.2, "PathodSpec
// component token").
type PathodSpec struct {
	Text   string
	Parsed *Message
}

// NewPathodSpec parses text immediately using the registered parser
// hook, failing fast rather than deferring the parse error to resolve
// or emit time.
func NewPathodSpec(text string) (*PathodSpec, error) {
	if specParserHook == nil {
		return nil, fmt.Errorf("pathod: no spec parser registered")
	}
	msg, err := specParserHook(text)
	if err != nil {
		return nil, err
	}
	return &PathodSpec{Text: text, Parsed: msg}, nil
}

func (p *PathodSpec) Spec() string { return "s" + quoteString([]byte(p.Text), '\'') }

func (p *PathodSpec) Values(s *settings.Settings) ([]Value, error) {
	return p.Parsed.Values(s)
}

func (p *PathodSpec) FreezeToken(s *settings.Settings) (Token, error) {
	frozen, err := p.Parsed.freeze(s)
	if err != nil {
		return nil, err
	}
	return &PathodSpec{Text: p.Text, Parsed: frozen}, nil
}
