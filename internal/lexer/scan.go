// Package lexer scans one spec-language line into a flat token stream
// for internal/parser to consume (spec.md §4.1, "Lexical elements").
package lexer

import (
	"fmt"
	"strconv"

	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
)

// Kind identifies a lexeme's grammatical category.
type Kind int

const (
	KindEOF Kind = iota
	KindColon
	KindComma
	KindEquals
	KindAt
	KindLess
	KindBareword
	KindQuotedLiteral
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindColon:
		return "colon"
	case KindComma:
		return "comma"
	case KindEquals:
		return "equals"
	case KindAt:
		return "at"
	case KindLess:
		return "less"
	case KindBareword:
		return "bareword"
	case KindQuotedLiteral:
		return "quoted-literal"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Lexeme is one scanned unit. For KindQuotedLiteral, Text holds the
// escape-decoded bytes and Quote holds the delimiter that was used;
// for KindBareword and KindInteger, Text holds the raw source text.
type Lexeme struct {
	Kind  Kind
	Text  string
	Quote byte
	Pos   int
}

// Lexer scans a single line of spec-language text.
type Lexer struct {
	src []byte
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: []byte(src)}
}

// Pos returns the current byte offset into the source line.
func (l *Lexer) Pos() int { return l.pos }

// Remaining returns the unconsumed tail of the source line.
func (l *Lexer) Remaining() string { return string(l.src[l.pos:]) }

// HasPrefix reports whether the unconsumed source starts with s,
// without consuming anything — used by the parser to dispatch on a
// sigil before deciding how to consume the rest of an atom.
func (l *Lexer) HasPrefix(s string) bool {
	rem := l.src[l.pos:]
	if len(s) > len(rem) {
		return false
	}
	return string(rem[:len(s)]) == s
}

// Advance consumes n raw bytes without lexical interpretation — used
// right after HasPrefix to skip a matched sigil before resuming
// token-level scanning for the atom's argument.
func (l *Lexer) Advance(n int) {
	l.pos += n
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
}

// AtEOF reports whether the cursor has reached the end of source.
func (l *Lexer) AtEOF() bool { return l.pos >= len(l.src) }

// Seek resets the cursor to a byte offset previously returned by Pos —
// used by the parser to backtrack past a tentative lookahead.
func (l *Lexer) Seek(pos int) { l.pos = pos }

// SkipSpaces advances past any run of plain spaces/tabs at the cursor.
func (l *Lexer) SkipSpaces() {
	for {
		b, ok := l.peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		l.pos++
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func isBarewordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-' || b == '.' || b == '/' || b == '*' || b == '~':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isQuote(b byte) bool { return b == '\'' || b == '"' }

// Next scans and returns the next lexeme, advancing the cursor past it.
// A KindEOF lexeme is returned once, then repeatedly, once the source
// is exhausted.
func (l *Lexer) Next() (Lexeme, error) {
	for {
		b, ok := l.peek()
		if !ok {
			return Lexeme{Kind: KindEOF, Pos: l.pos}, nil
		}
		if b == ' ' || b == '\t' {
			l.pos++
			continue
		}
		break
	}

	start := l.pos
	b, _ := l.peek()

	switch {
	case b == ':':
		l.pos++
		return Lexeme{Kind: KindColon, Pos: start}, nil
	case b == ',':
		l.pos++
		return Lexeme{Kind: KindComma, Pos: start}, nil
	case b == '=':
		l.pos++
		return Lexeme{Kind: KindEquals, Pos: start}, nil
	case b == '@':
		l.pos++
		return Lexeme{Kind: KindAt, Pos: start}, nil
	case b == '<':
		l.pos++
		return Lexeme{Kind: KindLess, Pos: start}, nil
	case isQuote(b):
		return l.scanQuoted(start)
	case isDigit(b):
		return l.scanInteger(start)
	case isBarewordByte(b):
		return l.scanBareword(start)
	default:
		return Lexeme{}, &pathoderrors.ParseError{
			Message: fmt.Sprintf("unexpected character %q", b),
			Column:  start,
		}
	}
}

func (l *Lexer) scanInteger(start int) (Lexeme, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])
	if _, err := strconv.Atoi(text); err != nil {
		return Lexeme{}, &pathoderrors.ParseError{Message: "malformed integer " + text, Column: start}
	}
	return Lexeme{Kind: KindInteger, Text: text, Pos: start}, nil
}

func (l *Lexer) scanBareword(start int) (Lexeme, error) {
	for {
		b, ok := l.peek()
		if !ok || !isBarewordByte(b) {
			break
		}
		l.pos++
	}
	return Lexeme{Kind: KindBareword, Text: string(l.src[start:l.pos]), Pos: start}, nil
}

// scanQuoted decodes a '...'/"..." literal, honoring backslash escapes
// for the delimiter itself, \\, \n, \r, \t, and \xNN (spec.md §4.1,
// "Escape decoding").
func (l *Lexer) scanQuoted(start int) (Lexeme, error) {
	quote := l.src[l.pos]
	l.pos++

	var out []byte
	for {
		b, ok := l.peek()
		if !ok {
			return Lexeme{}, &pathoderrors.ParseError{Message: "unterminated quoted literal", Column: start}
		}
		if b == quote {
			l.pos++
			return Lexeme{Kind: KindQuotedLiteral, Text: string(out), Quote: quote, Pos: start}, nil
		}
		if b != '\\' {
			out = append(out, b)
			l.pos++
			continue
		}

		l.pos++
		esc, ok := l.peek()
		if !ok {
			return Lexeme{}, &pathoderrors.ParseError{Message: "unterminated escape sequence", Column: l.pos}
		}
		switch esc {
		case quote:
			out = append(out, quote)
			l.pos++
		case '\\':
			out = append(out, '\\')
			l.pos++
		case 'n':
			out = append(out, '\n')
			l.pos++
		case 'r':
			out = append(out, '\r')
			l.pos++
		case 't':
			out = append(out, '\t')
			l.pos++
		case 'x':
			l.pos++
			if l.pos+2 > len(l.src) {
				return Lexeme{}, &pathoderrors.ParseError{Message: "truncated \\x escape", Column: l.pos}
			}
			v, err := strconv.ParseUint(string(l.src[l.pos:l.pos+2]), 16, 8)
			if err != nil {
				return Lexeme{}, &pathoderrors.ParseError{Message: "malformed \\x escape", Column: l.pos}
			}
			out = append(out, byte(v))
			l.pos += 2
		default:
			out = append(out, '\\', esc)
			l.pos++
		}
	}
}
