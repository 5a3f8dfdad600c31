package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []Lexeme {
	t.Helper()
	l := New(src)
	var out []Lexeme
	for {
		lx, err := l.Next()
		require.NoError(t, err)
		out = append(out, lx)
		if lx.Kind == KindEOF {
			return out
		}
	}
}

func TestLexer_Punctuation(t *testing.T) {
	got := scanAll(t, ":,=@<")
	kinds := []Kind{KindColon, KindComma, KindEquals, KindAt, KindLess, KindEOF}
	require.Len(t, got, len(kinds))
	for i, k := range kinds {
		require.Equal(t, k, got[i].Kind)
	}
}

func TestLexer_Bareword(t *testing.T) {
	got := scanAll(t, "get")
	require.Equal(t, KindBareword, got[0].Kind)
	require.Equal(t, "get", got[0].Text)
}

func TestLexer_Integer(t *testing.T) {
	got := scanAll(t, "12345")
	require.Equal(t, KindInteger, got[0].Kind)
	require.Equal(t, "12345", got[0].Text)
}

func TestLexer_QuotedLiteral_SimpleText(t *testing.T) {
	got := scanAll(t, "'hello world'")
	require.Equal(t, KindQuotedLiteral, got[0].Kind)
	require.Equal(t, "hello world", got[0].Text)
	require.Equal(t, byte('\''), got[0].Quote)
}

func TestLexer_QuotedLiteral_DoubleQuoteDelimiter(t *testing.T) {
	got := scanAll(t, `"ab\"cd"`)
	require.Equal(t, KindQuotedLiteral, got[0].Kind)
	require.Equal(t, `ab"cd`, got[0].Text)
}

func TestLexer_QuotedLiteral_EscapeSequences(t *testing.T) {
	got := scanAll(t, `'a\nb\rc\td\\e'`)
	require.Equal(t, "a\nb\rc\td\\e", got[0].Text)
}

func TestLexer_QuotedLiteral_HexEscape(t *testing.T) {
	got := scanAll(t, `'\x41\x42'`)
	require.Equal(t, "AB", got[0].Text)
}

func TestLexer_QuotedLiteral_Unterminated(t *testing.T) {
	l := New("'unterminated")
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	l := New("!")
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexer_SkipsSpacesBetweenTokens(t *testing.T) {
	got := scanAll(t, "get  /path")
	require.Equal(t, KindBareword, got[0].Kind)
	require.Equal(t, "get", got[0].Text)
	require.Equal(t, KindBareword, got[1].Kind)
	require.Equal(t, "/path", got[1].Text)
}

func TestLexer_HasPrefixAndAdvance(t *testing.T) {
	l := New("ws:b'x'")
	require.True(t, l.HasPrefix("ws"))
	require.False(t, l.HasPrefix("wf"))
	l.Advance(2)
	require.Equal(t, ":b'x'", l.Remaining())
}

func TestLexer_AtEOF(t *testing.T) {
	l := New("x")
	require.False(t, l.AtEOF())
	l.Advance(1)
	require.True(t, l.AtEOF())
}

func TestLexer_FullLineExample(t *testing.T) {
	got := scanAll(t, "h'X-Test'='value'")
	kinds := []Kind{KindBareword, KindQuotedLiteral, KindEquals, KindQuotedLiteral, KindEOF}
	require.Len(t, got, len(kinds))
	for i, k := range kinds {
		require.Equalf(t, k, got[i].Kind, "lexeme %d", i)
	}
}
