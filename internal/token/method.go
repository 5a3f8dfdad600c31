package token

import (
	"strings"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

var methodKeywords = map[string]string{
	"get":     "GET",
	"head":    "HEAD",
	"post":    "POST",
	"put":     "PUT",
	"delete":  "DELETE",
	"options": "OPTIONS",
	"trace":   "TRACE",
	"connect": "CONNECT",
	"patch":   "PATCH",
}

// Method is a request's verb (spec.md §3.2). A bareword keyword like
// "get" canonicalizes its stored value to upper-case HTTP method text.
// Spec() derives its textual form from the stored value's content, not
// from how it was written: any value whose text case-insensitively
// matches a known keyword prints bare and lower-case, everything else
// prints through its own Spec() (spec.md §9, open question 4 — this
// matches the source's quirk verbatim rather than the more obvious
// "remember how it was written" design, to keep parse(spec(t)) stable
// for the keyword case).
type Method struct {
	Value *ValueExpr
}

// NewMethodKeyword builds a Method from an unquoted keyword, canonicalizing
// it to upper case HTTP method text if recognized, or passing the bareword
// through verbatim (upper-cased) if not.
func NewMethodKeyword(word string) *Method {
	canon, ok := methodKeywords[strings.ToLower(word)]
	if !ok {
		canon = strings.ToUpper(word)
	}
	return &Method{Value: NewLiteralValue([]byte(canon), true, 0)}
}

// NewMethodLiteral builds a Method from a quoted literal, preserved verbatim.
func NewMethodLiteral(v *ValueExpr) *Method {
	return &Method{Value: v}
}

func (m *Method) Spec() string {
	if _, ok := methodKeywords[strings.ToLower(string(m.Value.literalBytes))]; ok && m.Value.kind == kindLiteral {
		return strings.ToLower(string(m.Value.literalBytes))
	}
	return m.Value.Spec()
}

func (m *Method) Values(s *settings.Settings) ([]Value, error) {
	g, err := m.Value.Generator(s)
	if err != nil {
		return nil, err
	}
	return []Value{g, values.NewLiteral([]byte(" "))}, nil
}

func (m *Method) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := m.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &Method{Value: v}, nil
}
