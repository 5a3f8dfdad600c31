package token

import (
	"github.com/joshuafuller/pathod/internal/reftable"
	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

// Header is "key: value\r\n" (spec.md §3.2).
type Header struct {
	Key   *ValueExpr
	Value *ValueExpr
}

func (h *Header) Spec() string {
	return "h" + h.Key.Spec() + "=" + h.Value.Spec()
}

func (h *Header) Values(s *settings.Settings) ([]Value, error) {
	return headerValues(s, h.Key, h.Value)
}

func (h *Header) FreezeToken(s *settings.Settings) (Token, error) {
	k, v, err := freezeKV(s, h.Key, h.Value)
	if err != nil {
		return nil, err
	}
	return &Header{Key: k, Value: v}, nil
}

// ContentType is a Header shortcut with a fixed "Content-Type" key
// (spec.md §3.2).
type ContentType struct {
	Value *ValueExpr
}

func (c *ContentType) Spec() string { return "c" + c.Value.Spec() }

func (c *ContentType) Values(s *settings.Settings) ([]Value, error) {
	return headerValues(s, NewLiteralValue([]byte("Content-Type"), false, '\''), c.Value)
}

func (c *ContentType) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := c.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &ContentType{Value: v}, nil
}

// Location is a Header shortcut with a fixed "Location" key (spec.md §3.2).
type Location struct {
	Value *ValueExpr
}

func (l *Location) Spec() string { return "l" + l.Value.Spec() }

func (l *Location) Values(s *settings.Settings) ([]Value, error) {
	return headerValues(s, NewLiteralValue([]byte("Location"), false, '\''), l.Value)
}

func (l *Location) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := l.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &Location{Value: v}, nil
}

// UserAgent is a Header shortcut with a fixed "User-Agent" key. Its
// payload is either an explicit value or a shortcut key that must be
// looked up in internal/reftable (spec.md §3.2, "UserAgent(value|shortcut_key)").
type UserAgent struct {
	Value    *ValueExpr // set when the spec gave an explicit value
	Shortcut string     // set when the spec gave a bareword shortcut key
}

func (u *UserAgent) Spec() string {
	if u.Shortcut != "" {
		return "u" + u.Shortcut
	}
	return "u" + u.Value.Spec()
}

func (u *UserAgent) resolvedValue() *ValueExpr {
	if u.Shortcut == "" {
		return u.Value
	}
	if full, ok := reftable.UserAgent(u.Shortcut); ok {
		return NewLiteralValue([]byte(full), false, '\'')
	}
	// Unknown shortcut: emit the key text itself, matching the source's
	// behavior of falling back to treating it as a literal value.
	return NewLiteralValue([]byte(u.Shortcut), true, 0)
}

func (u *UserAgent) Values(s *settings.Settings) ([]Value, error) {
	return headerValues(s, NewLiteralValue([]byte("User-Agent"), false, '\''), u.resolvedValue())
}

func (u *UserAgent) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := u.resolvedValue().Freeze(s)
	if err != nil {
		return nil, err
	}
	return &UserAgent{Value: v}, nil
}

func headerValues(s *settings.Settings, key, val *ValueExpr) ([]Value, error) {
	kg, err := key.Generator(s)
	if err != nil {
		return nil, err
	}
	vg, err := val.Generator(s)
	if err != nil {
		return nil, err
	}
	return []Value{kg, values.NewLiteral([]byte(": ")), vg, values.NewLiteral([]byte("\r\n"))}, nil
}

func freezeKV(s *settings.Settings, key, val *ValueExpr) (*ValueExpr, *ValueExpr, error) {
	k, err := key.Freeze(s)
	if err != nil {
		return nil, nil, err
	}
	v, err := val.Freeze(s)
	if err != nil {
		return nil, nil, err
	}
	return k, v, nil
}
