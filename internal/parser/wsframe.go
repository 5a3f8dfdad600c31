package parser

import "github.com/joshuafuller/pathod/internal/token"

// ParseWebsocketFrame parses one line of spec-language text describing
// a raw websocket frame (spec.md §4.1 "wsframe").
//
// wsframe := wf (":" atom)*
func ParseWebsocketFrame(src string) (*token.Message, error) {
	c := newCursor(src)
	msg := &token.Message{Kind: token.KindWebsocketFrame}

	c.lex.SkipSpaces()
	if !c.lex.HasPrefix("wf") {
		return nil, c.parseErr("expected 'wf' marker")
	}
	c.lex.Advance(2)
	msg.Tokens = append(msg.Tokens, token.WF{})

	for c.trySep() {
		atom, err := c.parseWSFrameAtom()
		if err != nil {
			return nil, err
		}
		msg.Tokens = append(msg.Tokens, atom)
	}

	if !c.atEnd() {
		return nil, c.parseErr("unexpected trailing text in websocket frame spec")
	}
	return msg, nil
}

// parseWSFrameAtom dispatches on sigil in the same declaration order
// as the source's WebsocketFrame.comps tuple: Body, PauseAt,
// DisconnectAt, InjectAt.
func (c *cursor) parseWSFrameAtom() (token.Token, error) {
	switch {
	case c.lex.HasPrefix("b"):
		return c.parseBody()
	case c.lex.HasPrefix("p"):
		return c.parsePauseAt()
	case c.lex.HasPrefix("d"):
		return c.parseDisconnectAt()
	case c.lex.HasPrefix("i"):
		return c.parseInjectAt()
	default:
		return nil, c.parseErr("unrecognized websocket frame atom")
	}
}
