package parser

import "github.com/joshuafuller/pathod/internal/token"

// ParseResponse parses one line of spec-language text describing a
// Response message (spec.md §4.1 "response").
//
// response := (ws (":" code)? | code) (":" atom)*
func ParseResponse(src string) (*token.Message, error) {
	c := newCursor(src)
	msg := &token.Message{Kind: token.KindResponse}

	c.lex.SkipSpaces()
	if c.lex.HasPrefix("ws") {
		c.lex.Advance(2)
		msg.Tokens = append(msg.Tokens, token.WS{})

		save := c.lex.Pos()
		c.skipSep()
		if b, ok := c.peekByte(); ok && b >= '0' && b <= '9' {
			code, err := c.parseCode()
			if err != nil {
				return nil, err
			}
			msg.Tokens = append(msg.Tokens, code)
		} else {
			c.lex.Seek(save)
		}
	} else {
		code, err := c.parseCode()
		if err != nil {
			return nil, err
		}
		msg.Tokens = append(msg.Tokens, code)
	}

	for c.trySep() {
		atom, err := c.parseResponseAtom()
		if err != nil {
			return nil, err
		}
		msg.Tokens = append(msg.Tokens, atom)
	}

	if !c.atEnd() {
		return nil, c.parseErr("unexpected trailing text in response spec")
	}
	return msg, nil
}

// trySep consumes one optional leading separator and reports whether
// there is more input to parse an atom from.
func (c *cursor) trySep() bool {
	c.skipSep()
	return !c.atEnd()
}

// parseResponseAtom dispatches on sigil in the same declaration order
// as the source's Response.comps tuple: Body, Header, PauseAt,
// DisconnectAt, InjectAt, ShortcutContentType, ShortcutLocation, Raw,
// Reason. Every sigil below is unique, so the order only documents
// where this was grounded rather than resolving genuine ambiguity.
func (c *cursor) parseResponseAtom() (token.Token, error) {
	switch {
	case c.lex.HasPrefix("b"):
		return c.parseBody()
	case c.lex.HasPrefix("h"):
		return c.parseHeader()
	case c.lex.HasPrefix("p"):
		return c.parsePauseAt()
	case c.lex.HasPrefix("d"):
		return c.parseDisconnectAt()
	case c.lex.HasPrefix("i"):
		return c.parseInjectAt()
	case c.lex.HasPrefix("c"):
		return c.parseContentType()
	case c.lex.HasPrefix("l"):
		return c.parseLocation()
	case c.lex.HasPrefix("r"):
		return c.parseRaw()
	case c.lex.HasPrefix("m"):
		return c.parseReason()
	default:
		return nil, c.parseErr("unrecognized response atom")
	}
}
