package token

import (
	"github.com/joshuafuller/pathod/internal/reftable"
	"github.com/joshuafuller/pathod/internal/settings"
)

// Reason is a response's status-line reason phrase. When the spec
// left it unstated, Message.Values substitutes the standard reason
// for the sibling Code via internal/reftable (spec.md §3.2, §4.5).
type Reason struct {
	Value *ValueExpr // nil means "derive from the message's Code"
}

func (r *Reason) Spec() string {
	if r.Value == nil {
		return ""
	}
	return "m" + r.Value.Spec()
}

func (r *Reason) Values(s *settings.Settings) ([]Value, error) {
	if r.Value == nil {
		return nil, nil
	}
	g, err := r.Value.Generator(s)
	if err != nil {
		return nil, err
	}
	return []Value{g}, nil
}

func (r *Reason) FreezeToken(s *settings.Settings) (Token, error) {
	if r.Value == nil {
		return r, nil
	}
	v, err := r.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &Reason{Value: v}, nil
}

func defaultReason(code int) *ValueExpr {
	return NewLiteralValue([]byte(reftable.Reason(code)), false, '\'')
}
