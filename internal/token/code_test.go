package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func TestCode_RendersWithTrailingSpace(t *testing.T) {
	c := &Code{Code: 404}
	got, err := render(c, settings.New())
	require.NoError(t, err)
	require.Equal(t, "404 ", got)
}

func TestCode_Spec(t *testing.T) {
	c := &Code{Code: 800}
	require.Equal(t, "800", c.Spec())
}
