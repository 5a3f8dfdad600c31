package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func lit(s string) *ValueExpr { return NewLiteralValue([]byte(s), false, '\'') }

func TestHeader_RendersKeyColonValue(t *testing.T) {
	h := &Header{Key: lit("X-Test"), Value: lit("hello")}
	got, err := render(h, settings.New())
	require.NoError(t, err)
	require.Equal(t, "X-Test: hello\r\n", got)
}

func TestHeader_Spec(t *testing.T) {
	h := &Header{Key: lit("X-Test"), Value: lit("hello")}
	require.Equal(t, "h'X-Test'='hello'", h.Spec())
}

func TestContentType_RendersFixedKey(t *testing.T) {
	c := &ContentType{Value: lit("text/plain")}
	got, err := render(c, settings.New())
	require.NoError(t, err)
	require.Equal(t, "Content-Type: text/plain\r\n", got)
}

func TestLocation_RendersFixedKey(t *testing.T) {
	l := &Location{Value: lit("/elsewhere")}
	got, err := render(l, settings.New())
	require.NoError(t, err)
	require.Equal(t, "Location: /elsewhere\r\n", got)
}

func TestUserAgent_ExplicitValue(t *testing.T) {
	u := &UserAgent{Value: lit("custom-agent/1.0")}
	got, err := render(u, settings.New())
	require.NoError(t, err)
	require.Equal(t, "User-Agent: custom-agent/1.0\r\n", got)
}

func TestUserAgent_KnownShortcut(t *testing.T) {
	u := &UserAgent{Shortcut: "firefox"}
	got, err := render(u, settings.New())
	require.NoError(t, err)
	require.Contains(t, got, "User-Agent: Mozilla/5.0")
	require.Contains(t, got, "Firefox/54.0")
}

func TestUserAgent_UnknownShortcutFallsBackToKey(t *testing.T) {
	u := &UserAgent{Shortcut: "nonexistent-browser"}
	got, err := render(u, settings.New())
	require.NoError(t, err)
	require.Equal(t, "User-Agent: nonexistent-browser\r\n", got)
}
