package parser

import "github.com/joshuafuller/pathod/internal/token"

// parseHeader parses "h" value "=" value (spec.md §4.1).
func (c *cursor) parseHeader() (*token.Header, error) {
	c.lex.Advance(1) // 'h'
	key, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	c.lex.SkipSpaces()
	if !c.lex.HasPrefix("=") {
		return nil, c.parseErr("expected '=' in header")
	}
	c.lex.Advance(1)
	val, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.Header{Key: key, Value: val}, nil
}

// parseContentType parses "c" value.
func (c *cursor) parseContentType() (*token.ContentType, error) {
	c.lex.Advance(1) // 'c'
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.ContentType{Value: v}, nil
}

// parseLocation parses "l" value.
func (c *cursor) parseLocation() (*token.Location, error) {
	c.lex.Advance(1) // 'l'
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.Location{Value: v}, nil
}

// parseBody parses "b" value.
func (c *cursor) parseBody() (*token.Body, error) {
	c.lex.Advance(1) // 'b'
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.Body{Value: v}, nil
}

// parseReason parses "m" value.
func (c *cursor) parseReason() (*token.Reason, error) {
	c.lex.Advance(1) // 'm'
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.Reason{Value: v}, nil
}

// parseRaw parses the bare "r" marker.
func (c *cursor) parseRaw() (token.Raw, error) {
	c.lex.Advance(1) // 'r'
	return token.Raw{}, nil
}

// parsePauseAt parses "p" offset "," (integer | "f").
func (c *cursor) parsePauseAt() (*token.PauseAt, error) {
	c.lex.Advance(1) // 'p'
	off, err := c.parseOffset()
	if err != nil {
		return nil, err
	}
	c.lex.SkipSpaces()
	if !c.lex.HasPrefix(",") {
		return nil, c.parseErr("expected ',' in pause action")
	}
	c.lex.Advance(1)
	seconds, forever, err := c.parsePauseDuration()
	if err != nil {
		return nil, err
	}
	return &token.PauseAt{Offset: off, Seconds: seconds, Forever: forever}, nil
}

// parseDisconnectAt parses "d" offset.
func (c *cursor) parseDisconnectAt() (*token.DisconnectAt, error) {
	c.lex.Advance(1) // 'd'
	off, err := c.parseOffset()
	if err != nil {
		return nil, err
	}
	return &token.DisconnectAt{Offset: off}, nil
}

// parseInjectAt parses "i" offset "," value.
func (c *cursor) parseInjectAt() (*token.InjectAt, error) {
	c.lex.Advance(1) // 'i'
	off, err := c.parseOffset()
	if err != nil {
		return nil, err
	}
	c.lex.SkipSpaces()
	if !c.lex.HasPrefix(",") {
		return nil, c.parseErr("expected ',' in inject action")
	}
	c.lex.Advance(1)
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.InjectAt{Offset: off, Value: v}, nil
}

// parsePathodSpecAtom parses "s" qliteral, eagerly sub-parsing the
// embedded text via the registered parser hook (spec.md §3.2, §9).
func (c *cursor) parsePathodSpecAtom() (*token.PathodSpec, error) {
	c.lex.Advance(1) // 's'
	c.lex.SkipSpaces()
	if b, ok := c.peekByte(); !ok || (b != '\'' && b != '"') {
		return nil, c.parseErr("expected a quoted literal after 's'")
	}
	lx, err := c.lex.Next()
	if err != nil {
		return nil, err
	}
	return token.NewPathodSpec(lx.Text)
}
