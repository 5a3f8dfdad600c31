package parser

import "github.com/joshuafuller/pathod/internal/token"

// ParseRequest parses one line of spec-language text describing a
// Request message (spec.md §4.1 "request").
//
// request := (ws (":" method)? | method) ":" path (":" atom)*
func ParseRequest(src string) (*token.Message, error) {
	c := newCursor(src)
	msg := &token.Message{Kind: token.KindRequest}

	c.lex.SkipSpaces()
	if c.lex.HasPrefix("ws") {
		c.lex.Advance(2)
		msg.Tokens = append(msg.Tokens, token.WS{})

		save := c.lex.Pos()
		c.skipSep()
		if c.looksLikeMethod() {
			m, err := c.parseMethod()
			if err != nil {
				return nil, err
			}
			msg.Tokens = append(msg.Tokens, m)
		} else {
			c.lex.Seek(save)
		}
	} else {
		m, err := c.parseMethod()
		if err != nil {
			return nil, err
		}
		msg.Tokens = append(msg.Tokens, m)
	}

	c.skipSep()
	path, err := c.parsePath()
	if err != nil {
		return nil, err
	}
	msg.Tokens = append(msg.Tokens, path)

	for c.trySep() {
		atom, err := c.parseRequestAtom()
		if err != nil {
			return nil, err
		}
		msg.Tokens = append(msg.Tokens, atom)
	}

	if !c.atEnd() {
		return nil, c.parseErr("unexpected trailing text in request spec")
	}
	return msg, nil
}

// looksLikeMethod reports whether the text at the cursor could start a
// method token: an explicit value (quote/@/<) or one of the known
// bareword keywords. A request's Method never accepts arbitrary naked
// text (spec.md §4.1: method := keyword | value, not nvalue), so
// anything else is the mandatory path instead.
func (c *cursor) looksLikeMethod() bool {
	if b, ok := c.peekByte(); ok && (b == '\'' || b == '"' || b == '@' || b == '<') {
		return true
	}
	word := c.peekBareword()
	for _, kw := range methodKeywordOrder {
		if len(word) == len(kw) && equalFold(word, kw) {
			return true
		}
	}
	return false
}

// parsePath parses the grammar's "path" production, an nvalue (spec.md
// §4.1; grounded on the source's `Path.expr() = Value | NakedValue`).
func (c *cursor) parsePath() (*token.Path, error) {
	v, err := c.parseNvalue()
	if err != nil {
		return nil, err
	}
	return &token.Path{Value: v}, nil
}

// parseRequestAtom dispatches on sigil in the same declaration order
// as the source's Request.comps tuple: Body, Header, PauseAt,
// DisconnectAt, InjectAt, ShortcutContentType, ShortcutUserAgent, Raw,
// PathodSpec.
func (c *cursor) parseRequestAtom() (token.Token, error) {
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
	case c.lex.HasPrefix("u"):
		c.lex.Advance(1)
		return c.parseUserAgent()
	case c.lex.HasPrefix("r"):
		return c.parseRaw()
	case c.lex.HasPrefix("s"):
		return c.parsePathodSpecAtom()
	default:
		return nil, c.parseErr("unrecognized request atom")
	}
}
