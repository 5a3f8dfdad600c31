package token

import "github.com/joshuafuller/pathod/internal/settings"

// Body is a message's payload (spec.md §3.2). At most one Body token
// is meaningful per message; Message.Values renders only the first, so
// a second is never emitted.
type Body struct {
	Value *ValueExpr
}

func (b *Body) Spec() string { return "b" + b.Value.Spec() }

func (b *Body) Values(s *settings.Settings) ([]Value, error) {
	g, err := b.Value.Generator(s)
	if err != nil {
		return nil, err
	}
	return []Value{g}, nil
}

func (b *Body) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := b.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &Body{Value: v}, nil
}
