package token

import (
	"testing"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/stretchr/testify/require"
)

func TestMethod_KeywordCanonicalizesUppercase(t *testing.T) {
	m := NewMethodKeyword("get")
	got, err := render(m, settings.New())
	require.NoError(t, err)
	require.Equal(t, "GET ", got)
}

func TestMethod_UnknownKeywordUppercases(t *testing.T) {
	m := NewMethodKeyword("frobnicate")
	got, err := render(m, settings.New())
	require.NoError(t, err)
	require.Equal(t, "FROBNICATE ", got)
}

func TestMethod_QuotedLiteralPreservesCase(t *testing.T) {
	m := NewMethodLiteral(lit("gEt"))
	got, err := render(m, settings.New())
	require.NoError(t, err)
	require.Equal(t, "gEt ", got)
}

func TestMethod_SpecStripsQuotesWhenContentMatchesKeyword(t *testing.T) {
	m := NewMethodLiteral(lit("gEt"))
	require.Equal(t, "get", m.Spec())
}

func TestMethod_SpecKeepsQuotesForNonKeywordContent(t *testing.T) {
	m := NewMethodLiteral(lit("FISH"))
	require.Equal(t, "'FISH'", m.Spec())
}

func TestMethod_SpecForCanonicalKeyword(t *testing.T) {
	m := NewMethodKeyword("post")
	require.Equal(t, "post", m.Spec())
}
