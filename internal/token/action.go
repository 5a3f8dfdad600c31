package token

import (
	"strconv"

	"github.com/joshuafuller/pathod/internal/settings"
)

// resolveOffset turns a symbolic offset into a numeric one against the
// containing message's total length (spec.md §4.3 step 5, §3.2:
// "r" -> uniform random in [0, length), "a" -> length + 1").
func resolveOffset(o OffsetSpec, s *settings.Settings, msg *Message) (OffsetSpec, error) {
	if o.Kind == OffsetNumeric {
		return o, nil
	}
	length, err := msg.Length(s)
	if err != nil {
		return OffsetSpec{}, err
	}
	switch o.Kind {
	case OffsetRandom:
		return OffsetSpec{Kind: OffsetNumeric, Value: s.Intn(length)}, nil
	case OffsetAfter:
		return OffsetSpec{Kind: OffsetNumeric, Value: length + 1}, nil
	default:
		return o, nil
	}
}

// PauseAt pauses emission once sofar reaches Offset, either for a fixed
// duration or, when Forever is set, indefinitely (spec.md §3.2 "pNNN,
// pNNN,f").
type PauseAt struct {
	Offset  OffsetSpec
	Seconds float64
	Forever bool
}

func (p *PauseAt) Spec() string {
	dur := "f"
	if !p.Forever {
		dur = strconv.FormatFloat(p.Seconds, 'g', -1, 64)
	}
	return "p" + p.Offset.spec() + "," + dur
}

func (p *PauseAt) Values(s *settings.Settings) ([]Value, error) { return nil, nil }

func (p *PauseAt) Resolve(s *settings.Settings, msg *Message) (Token, error) {
	off, err := resolveOffset(p.Offset, s, msg)
	if err != nil {
		return nil, err
	}
	return &PauseAt{Offset: off, Seconds: p.Seconds, Forever: p.Forever}, nil
}

// DisconnectAt severs the connection once sofar reaches Offset
// (spec.md §3.2 "dNNN").
type DisconnectAt struct {
	Offset OffsetSpec
}

func (d *DisconnectAt) Spec() string { return "d" + d.Offset.spec() }

func (d *DisconnectAt) Values(s *settings.Settings) ([]Value, error) { return nil, nil }

func (d *DisconnectAt) Resolve(s *settings.Settings, msg *Message) (Token, error) {
	off, err := resolveOffset(d.Offset, s, msg)
	if err != nil {
		return nil, err
	}
	return &DisconnectAt{Offset: off}, nil
}

// InjectAt splices extra bytes into the stream once sofar reaches
// Offset, without those bytes counting toward Length (spec.md §3.2
// "iNNN,value").
type InjectAt struct {
	Offset OffsetSpec
	Value  *ValueExpr
}

func (i *InjectAt) Spec() string { return "i" + i.Offset.spec() + "," + i.Value.Spec() }

func (i *InjectAt) Values(s *settings.Settings) ([]Value, error) { return nil, nil }

func (i *InjectAt) Resolve(s *settings.Settings, msg *Message) (Token, error) {
	off, err := resolveOffset(i.Offset, s, msg)
	if err != nil {
		return nil, err
	}
	return &InjectAt{Offset: off, Value: i.Value}, nil
}

func (i *InjectAt) FreezeToken(s *settings.Settings) (Token, error) {
	v, err := i.Value.Freeze(s)
	if err != nil {
		return nil, err
	}
	return &InjectAt{Offset: i.Offset, Value: v}, nil
}
