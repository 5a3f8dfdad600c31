package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func TestPath_RendersWithTrailingSpace(t *testing.T) {
	p := &Path{Value: NewLiteralValue([]byte("/index.html"), true, 0)}
	got, err := render(p, settings.New())
	require.NoError(t, err)
	require.Equal(t, "/index.html ", got)
}

func TestPath_Spec(t *testing.T) {
	p := &Path{Value: NewLiteralValue([]byte("/index.html"), true, 0)}
	require.Equal(t, "/index.html", p.Spec())
}
