package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func simpleResponse() *Message {
	return &Message{
		Kind: KindResponse,
		Tokens: []Token{
			&Code{Code: 200},
			&Body{Value: lit("0123456789")},
		},
	}
}

func TestResolveOffset_NumericPassesThrough(t *testing.T) {
	msg := simpleResponse()
	off, err := resolveOffset(OffsetSpec{Kind: OffsetNumeric, Value: 5}, settings.New(), msg)
	require.NoError(t, err)
	require.Equal(t, 5, off.Value)
}

func TestResolveOffset_AfterIsLengthPlusOne(t *testing.T) {
	msg := simpleResponse()
	length, err := msg.Length(settings.New())
	require.NoError(t, err)

	off, err := resolveOffset(OffsetSpec{Kind: OffsetAfter}, settings.New(), msg)
	require.NoError(t, err)
	require.Equal(t, length+1, off.Value)
}

func TestResolveOffset_RandomIsWithinLength(t *testing.T) {
	msg := simpleResponse()
	length, err := msg.Length(settings.New())
	require.NoError(t, err)

	off, err := resolveOffset(OffsetSpec{Kind: OffsetRandom}, settings.New(), msg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, off.Value, 0)
	require.Less(t, off.Value, length)
}

func TestPauseAt_Resolve(t *testing.T) {
	msg := simpleResponse()
	p := &PauseAt{Offset: OffsetSpec{Kind: OffsetAfter}, Seconds: 2.5}
	resolved, err := p.Resolve(settings.New(), msg)
	require.NoError(t, err)
	rp := resolved.(*PauseAt)
	require.Equal(t, OffsetNumeric, rp.Offset.Kind)
}

func TestPauseAt_Spec(t *testing.T) {
	p := &PauseAt{Offset: OffsetSpec{Kind: OffsetNumeric, Value: 10}, Forever: true}
	require.Equal(t, "p10,f", p.Spec())
}

func TestDisconnectAt_Spec(t *testing.T) {
	d := &DisconnectAt{Offset: OffsetSpec{Kind: OffsetRandom}}
	require.Equal(t, "dr", d.Spec())
}

func TestInjectAt_SpecAndFreeze(t *testing.T) {
	i := &InjectAt{Offset: OffsetSpec{Kind: OffsetNumeric, Value: 3}, Value: lit("xx")}
	require.Equal(t, "i3,'xx'", i.Spec())

	frozen, err := i.FreezeToken(settings.New())
	require.NoError(t, err)
	fi := frozen.(*InjectAt)
	require.Equal(t, "xx", string(fi.Value.literalBytes))
}
