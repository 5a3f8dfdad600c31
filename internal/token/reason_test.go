package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func TestReason_ExplicitValue(t *testing.T) {
	r := &Reason{Value: lit("Custom Phrase")}
	got, err := render(r, settings.New())
	require.NoError(t, err)
	require.Equal(t, "Custom Phrase", got)
}

func TestReason_NilValueProducesNothingDirectly(t *testing.T) {
	r := &Reason{}
	got, err := render(r, settings.New())
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestDefaultReason_LooksUpStandardTable(t *testing.T) {
	d := defaultReason(404)
	require.Equal(t, "Not Found", string(d.literalBytes))
}
