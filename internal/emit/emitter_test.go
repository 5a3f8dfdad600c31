package emit

import (
	"testing"
	"time"

	"github.com/joshuafuller/pathod/internal/resolve"
	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/token"
	"github.com/stretchr/testify/require"
)

func noSleep(time.Duration) {}

func TestEmit_PlainCodeOnly(t *testing.T) {
	msg := &token.Message{Kind: token.KindResponse, Tokens: []token.Token{&token.Code{Code: 400}}}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	w := NewMockWriter()
	result, err := Emit(resolved, w, settings.New(), noSleep)
	require.NoError(t, err)
	require.False(t, result.Disconnected)
	require.Equal(t, "HTTP/1.1 400 Bad Request\r\nContent-Length: 0\r\n\r\n", string(w.Bytes()))
}

func TestEmit_PauseAtSplitsWritesAndInvokesSleeper(t *testing.T) {
	msg := &token.Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: 200},
			&token.Body{Value: token.NewLiteralValue([]byte("hello"), false, '\'')},
			&token.PauseAt{Offset: token.OffsetSpec{Kind: token.OffsetNumeric, Value: 28}, Seconds: 1},
		},
	}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	var slept []time.Duration
	w := NewMockWriter()
	result, err := Emit(resolved, w, settings.New(), func(d time.Duration) { slept = append(slept, d) })
	require.NoError(t, err)
	require.False(t, result.Disconnected)
	require.Equal(t, []time.Duration{time.Second}, slept)

	full := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"
	require.Equal(t, full, string(w.Bytes()))
}

func TestEmit_DisconnectAtStopsEarlyWithoutError(t *testing.T) {
	msg := &token.Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: 200},
			&token.Body{Value: token.NewLiteralValue([]byte("abcdef"), false, '\'')},
			&token.DisconnectAt{Offset: token.OffsetSpec{Kind: token.OffsetNumeric, Value: 3}},
		},
	}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	w := NewMockWriter()
	result, err := Emit(resolved, w, settings.New(), noSleep)
	require.NoError(t, err)
	require.True(t, result.Disconnected)
	// Offset 3 counts from the start of the message, so the disconnect
	// lands inside the status line.
	require.Equal(t, "HTT", string(w.Bytes()))
}

func TestEmit_InjectSplicesBytesWithoutShiftingLength(t *testing.T) {
	msg := &token.Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: 200},
			&token.Body{Value: token.NewLiteralValue([]byte("abcdef"), false, '\'')},
			&token.InjectAt{
				Offset: token.OffsetSpec{Kind: token.OffsetNumeric, Value: 3},
				Value:  token.NewLiteralValue([]byte("XYZ"), false, '\''),
			},
		},
	}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	w := NewMockWriter()
	result, err := Emit(resolved, w, settings.New(), noSleep)
	require.NoError(t, err)
	require.False(t, result.Disconnected)

	got := string(w.Bytes())
	require.Contains(t, got, "XYZ")

	length, err := resolved.Length(settings.New())
	require.NoError(t, err)
	require.Equal(t, len(got)-3, length) // inject bytes don't count toward Length
}

func TestEmit_WriterDisconnectMidStreamEndsEmission(t *testing.T) {
	msg := &token.Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: 200},
			&token.Body{Value: token.NewLiteralValue([]byte("hello world"), false, '\'')},
		},
	}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	w := NewMockWriterDisconnectingAfter(10)
	result, err := Emit(resolved, w, settings.New(), noSleep)
	require.NoError(t, err)
	require.True(t, result.Disconnected)
}

func TestEmit_RespectsBlockSizeChunking(t *testing.T) {
	msg := &token.Message{
		Kind: token.KindResponse,
		Tokens: []token.Token{
			&token.Code{Code: 200},
			token.Raw{},
			&token.Body{Value: token.NewLiteralValue([]byte("abcdefghij"), false, '\'')},
		},
	}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	s := settings.New()
	s.BlockSize = 4
	w := NewMockWriter()
	_, err = Emit(resolved, w, s, noSleep)
	require.NoError(t, err)

	for _, chunk := range w.Writes() {
		require.LessOrEqual(t, len(chunk), 4)
	}
}

func TestEmit_ReturnsTimingFields(t *testing.T) {
	msg := &token.Message{Kind: token.KindResponse, Tokens: []token.Token{&token.Code{Code: 200}, token.Raw{}}}
	resolved, err := resolve.Resolve(msg, settings.New())
	require.NoError(t, err)

	w := NewMockWriter()
	result, err := Emit(resolved, w, settings.New(), noSleep)
	require.NoError(t, err)
	require.False(t, result.Started.IsZero())
	require.GreaterOrEqual(t, result.Duration, time.Duration(0))
	require.Equal(t, resolved.Spec(), result.Log["spec"])
}
