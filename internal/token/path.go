package token

import (
	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

// Path is a request's path/query component, an nvalue (naked allowed,
// spec.md §3.2, §4.1).
type Path struct {
	Value *ValueExpr
}

func (p *Path) Spec() string { return p.Value.Spec() }

func (p *Path) Values(s *settings.Settings) ([]Value, error) {
	g, err := p.Value.Generator(s)
	if err != nil {
		return nil, err
	}
	return []Value{g, values.NewLiteral([]byte(" "))}, nil
}

func (p *Path) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := p.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &Path{Value: v}, nil
}
