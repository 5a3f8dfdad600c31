// Package parser turns one line of spec-language text into a
// *token.Message AST (spec.md §4.1). It is pure string-to-AST: no I/O,
// no network access, no dependency on internal/settings.
//
// Dispatch mirrors the grammar's declaration-order alternation —
// pyparsing's MatchFirst over each message kind's comps tuple — by
// matching a fixed-length sigil prefix before consuming the rest of
// the atom. Since every atom sigil is distinct, the comps order only
// matters as documentation of where this implementation's behavior was
// grounded, not as a genuine ambiguity a reader needs to resolve.
package parser

import (
	"strconv"

	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
	"github.com/joshuafuller/pathod/internal/token"
	"github.com/joshuafuller/pathod/internal/values"

	"github.com/joshuafuller/pathod/internal/lexer"
)

func init() {
	token.RegisterSpecParser(func(text string) (*token.Message, error) {
		return ParseResponse(text)
	})
}

// cursor wraps a Lexer with the raw-prefix scanning the parser needs
// for sigil dispatch and for the grammar's broader "naked" charset,
// which is wider than the lexer's own bareword charset (spec.md §4.1:
// naked := qliteral | [^ ,:\n@'"]+).
type cursor struct {
	lex *lexer.Lexer
}

func newCursor(src string) *cursor { return &cursor{lex: lexer.New(src)} }

func (c *cursor) parseErr(msg string) error {
	return &pathoderrors.ParseError{Message: msg, Line: 1, Column: c.lex.Pos()}
}

func (c *cursor) peekByte() (byte, bool) {
	rem := c.lex.Remaining()
	if rem == "" {
		return 0, false
	}
	return rem[0], true
}

// skipSep consumes an optional ":" atom separator, along with any
// surrounding spaces (spec.md §4.1: "':' is a soft separator, optional
// where unambiguous").
func (c *cursor) skipSep() {
	c.lex.SkipSpaces()
	if c.lex.HasPrefix(":") {
		c.lex.Advance(1)
	}
	c.lex.SkipSpaces()
}

// scanNaked reads the grammar's broad naked-literal charset directly
// off the remaining source, stopping at any atom/value boundary byte.
func (c *cursor) scanNaked() string {
	rem := c.lex.Remaining()
	i := 0
loop:
	for i < len(rem) {
		switch rem[i] {
		case ' ', ',', ':', '\n', '@', '\'', '"':
			break loop
		}
		i++
	}
	c.lex.Advance(i)
	return rem[:i]
}

func (c *cursor) scanDigits() string {
	rem := c.lex.Remaining()
	i := 0
	for i < len(rem) && rem[i] >= '0' && rem[i] <= '9' {
		i++
	}
	c.lex.Advance(i)
	return rem[:i]
}

// parseValue parses the grammar's strict "value" production: generate,
// file, or quoted literal — no bareword naked text (spec.md §4.1).
func (c *cursor) parseValue() (*token.ValueExpr, error) {
	c.lex.SkipSpaces()
	switch {
	case c.lex.HasPrefix("@"):
		return c.parseGenerate()
	case c.lex.HasPrefix("<"):
		c.lex.Advance(1)
		return c.parseFileTarget()
	}
	if b, ok := c.peekByte(); ok && (b == '\'' || b == '"') {
		lx, err := c.lex.Next()
		if err != nil {
			return nil, err
		}
		return token.NewLiteralValue([]byte(lx.Text), false, lx.Quote), nil
	}
	return nil, c.parseErr("expected a quoted literal, @generate, or <file value")
}

// parseNvalue parses the grammar's "nvalue" production: a strict value,
// or a bare run of naked-charset bytes (spec.md §4.1).
func (c *cursor) parseNvalue() (*token.ValueExpr, error) {
	c.lex.SkipSpaces()
	switch {
	case c.lex.HasPrefix("@"):
		return c.parseGenerate()
	case c.lex.HasPrefix("<"):
		c.lex.Advance(1)
		return c.parseFileTarget()
	}
	if b, ok := c.peekByte(); ok && (b == '\'' || b == '"') {
		lx, err := c.lex.Next()
		if err != nil {
			return nil, err
		}
		return token.NewLiteralValue([]byte(lx.Text), false, lx.Quote), nil
	}
	text := c.scanNaked()
	if text == "" {
		return nil, c.parseErr("expected a value")
	}
	return token.NewLiteralValue([]byte(text), true, 0), nil
}

// parseFileTarget parses the naked-or-quoted path following "<".
func (c *cursor) parseFileTarget() (*token.ValueExpr, error) {
	c.lex.SkipSpaces()
	if b, ok := c.peekByte(); ok && (b == '\'' || b == '"') {
		lx, err := c.lex.Next()
		if err != nil {
			return nil, err
		}
		return token.NewFileValue(lx.Text, false, lx.Quote), nil
	}
	text := c.scanNaked()
	if text == "" {
		return nil, c.parseErr("expected a file path after '<'")
	}
	return token.NewFileValue(text, true, 0), nil
}

// parseGenerate parses "@" integer (unit)? ("," datatype)? (spec.md §4.1, §3.1).
func (c *cursor) parseGenerate() (*token.ValueExpr, error) {
	c.lex.Advance(1) // '@'
	sizeText := c.scanDigits()
	if sizeText == "" {
		return nil, c.parseErr("expected an integer size after '@'")
	}
	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return nil, c.parseErr("malformed generate size " + sizeText)
	}

	var unit values.SizeUnit
	if b, ok := c.peekByte(); ok {
		switch b {
		case 'b', 'k', 'm', 'g':
			unit = values.SizeUnit(b)
			c.lex.Advance(1)
		}
	}

	var dtype values.Charset
	if c.lex.HasPrefix(",") {
		c.lex.Advance(1)
		name := c.scanNaked()
		if name == "" {
			return nil, c.parseErr("expected a datatype name after ','")
		}
		dtype = values.Charset(name)
	}
	return token.NewGenerateValue(size, unit, dtype), nil
}

// parseOffset parses "integer | 'r' | 'a'" (spec.md §4.1).
func (c *cursor) parseOffset() (token.OffsetSpec, error) {
	c.lex.SkipSpaces()
	if b, ok := c.peekByte(); ok {
		switch b {
		case 'r':
			c.lex.Advance(1)
			return token.OffsetSpec{Kind: token.OffsetRandom}, nil
		case 'a':
			c.lex.Advance(1)
			return token.OffsetSpec{Kind: token.OffsetAfter}, nil
		}
	}
	digits := c.scanDigits()
	if digits == "" {
		return token.OffsetSpec{}, c.parseErr("expected an offset: integer, 'r', or 'a'")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return token.OffsetSpec{}, c.parseErr("malformed offset " + digits)
	}
	return token.OffsetSpec{Kind: token.OffsetNumeric, Value: n}, nil
}

// parseCode parses a bare status-code integer (spec.md §4.1 "code := integer").
func (c *cursor) parseCode() (*token.Code, error) {
	c.lex.SkipSpaces()
	digits := c.scanDigits()
	if digits == "" {
		return nil, c.parseErr("expected a status code")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil, c.parseErr("malformed status code " + digits)
	}
	return &token.Code{Code: n}, nil
}

var methodKeywordOrder = []string{
	"get", "head", "post", "put", "delete", "options", "trace", "connect", "patch",
}

// parseMethod parses "(\"get\"|\"head\"|...) | value", case-insensitively
// matching a known keyword before falling back to a strict value
// (spec.md §4.1 "method").
func (c *cursor) parseMethod() (*token.Method, error) {
	c.lex.SkipSpaces()
	if b, ok := c.peekByte(); ok && b != '\'' && b != '"' && b != '@' && b != '<' {
		word := c.peekBareword()
		for _, kw := range methodKeywordOrder {
			if len(word) == len(kw) && equalFold(word, kw) {
				c.lex.Advance(len(word))
				return token.NewMethodKeyword(word), nil
			}
		}
	}
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return token.NewMethodLiteral(v), nil
}

// peekBareword returns the naked-charset run starting at the cursor
// without consuming it — used to case-insensitively test method
// keywords before committing to the match.
func (c *cursor) peekBareword() string {
	rem := c.lex.Remaining()
	i := 0
	for i < len(rem) {
		switch rem[i] {
		case ' ', ',', ':', '\n', '@', '\'', '"':
			return rem[:i]
		}
		i++
	}
	return rem
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// parseUserAgent parses "u (ua_shortcut | value)" (spec.md §3.2). Any
// leading naked word is treated as a shortcut key; UserAgent.Values
// falls back to emitting it verbatim if internal/reftable doesn't
// recognize it (matching the source's fallback behavior).
func (c *cursor) parseUserAgent() (*token.UserAgent, error) {
	c.lex.SkipSpaces()
	if b, ok := c.peekByte(); ok && b != '\'' && b != '"' && b != '@' && b != '<' {
		word := c.scanNaked()
		if word == "" {
			return nil, c.parseErr("expected a user-agent shortcut or value")
		}
		return &token.UserAgent{Shortcut: word}, nil
	}
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	return &token.UserAgent{Value: v}, nil
}

// parsePauseDuration parses "(integer | 'f')" for pauseAt's duration field.
func (c *cursor) parsePauseDuration() (seconds float64, forever bool, err error) {
	c.lex.SkipSpaces()
	if c.lex.HasPrefix("f") {
		c.lex.Advance(1)
		return 0, true, nil
	}
	digits := c.scanDigits()
	if digits == "" {
		return 0, false, c.parseErr("expected a pause duration: integer seconds or 'f'")
	}
	n, convErr := strconv.Atoi(digits)
	if convErr != nil {
		return 0, false, c.parseErr("malformed pause duration " + digits)
	}
	return float64(n), false, nil
}

// atEnd reports whether only trailing space remains.
func (c *cursor) atEnd() bool {
	c.lex.SkipSpaces()
	return c.lex.AtEOF()
}
