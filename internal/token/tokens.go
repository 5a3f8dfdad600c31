package token

import (
	"strconv"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

// Token is the common capability every AST node implements: it can
// render itself back to spec-language text (spec.md §3.2 round-trip law).
type Token interface {
	Spec() string
}

// Component is a token that contributes bytes to the outgoing message
// (spec.md §3.2).
type Component interface {
	Token
	Values(s *settings.Settings) ([]Value, error)
}

// Value is the byte-generator capability a component's payload exposes,
// aliasing internal/values.Value so callers of this package don't need
// a second import for the common case.
type Value = values.Value

// resolvable is implemented by tokens whose Resolve step is not the
// identity — in this grammar, only the action tokens (spec.md §4.3
// step 5: "Actions replace symbolic offsets... Other tokens are identity").
type resolvable interface {
	Resolve(s *settings.Settings, msg *Message) (Token, error)
}

// freezable is implemented by tokens that hold a ValueExpr whose
// content should be realized when the containing message is frozen.
type freezable interface {
	FreezeToken(s *settings.Settings) (Token, error)
}

// ActionKind distinguishes the three action tokens (spec.md §3.2).
type ActionKind int

const (
	ActionPause ActionKind = iota
	ActionDisconnect
	ActionInject
)

// OffsetKind distinguishes a numeric offset from the two symbolic forms
// (spec.md §3.2).
type OffsetKind int

const (
	OffsetNumeric OffsetKind = iota
	OffsetRandom             // "r": uniform random in [0, length)
	OffsetAfter              // "a": length + 1
)

// OffsetSpec is an action's offset, symbolic until Resolve runs.
type OffsetSpec struct {
	Kind  OffsetKind
	Value int // meaningful when Kind == OffsetNumeric, or after resolution for any kind
}

func (o OffsetSpec) spec() string {
	switch o.Kind {
	case OffsetRandom:
		return "r"
	case OffsetAfter:
		return "a"
	default:
		return strconv.Itoa(o.Value)
	}
}
