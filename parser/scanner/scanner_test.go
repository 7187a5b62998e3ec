package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

func scanAll(t *testing.T, src string) []scanner.Token {
	t.Helper()
	sc := scanner.NewScanner(src)
	var toks []scanner.Token
	for {
		tok := sc.Next()
		require.NoError(t, sc.Err())
		toks = append(toks, tok)
		if tok.Type == token.Eof {
			return toks
		}
	}
}

func TestNewlineBeforeTracksASIBoundary(t *testing.T) {
	toks := scanAll(t, "a\nb")
	require.False(t, toks[0].NewlineBefore)
	require.True(t, toks[1].NewlineBefore)
}

func TestTemplateLiteralWithSubstitution(t *testing.T) {
	sc := scanner.NewScanner("`a${1}b`")
	head := sc.Next()
	require.Equal(t, token.Template, head.Type)
	require.False(t, head.TemplateTail)
	require.Equal(t, "a", head.StringValue)

	num := sc.Next()
	require.Equal(t, token.Number, num.Type)

	require.Equal(t, token.RightBrace, sc.Next().Type)
	tail := sc.NextTemplateElement()
	require.Equal(t, token.Template, tail.Type)
	require.True(t, tail.TemplateTail)
	require.Equal(t, "b", tail.StringValue)
}

func TestTemplateLiteralSubstitutionWithNestedBraces(t *testing.T) {
	sc := scanner.NewScanner("`x${ {a:1}.a }y`")
	head := sc.Next()
	require.False(t, head.TemplateTail)
	require.Equal(t, token.LeftBrace, sc.Next().Type) // object literal open
	require.Equal(t, token.Identifier, sc.Next().Type)
	require.Equal(t, token.Colon, sc.Next().Type)
	require.Equal(t, token.Number, sc.Next().Type)
	require.Equal(t, token.RightBrace, sc.Next().Type) // object literal close
	require.Equal(t, token.Period, sc.Next().Type)
	require.Equal(t, token.Identifier, sc.Next().Type)
	require.Equal(t, token.RightBrace, sc.Next().Type) // substitution close
	tail := sc.NextTemplateElement()
	require.True(t, tail.TemplateTail)
	require.Equal(t, "y", tail.StringValue)
}

func TestReconsumeAsRegexpAfterDivisionAmbiguity(t *testing.T) {
	sc := scanner.NewScanner("/abc/g")
	slash := sc.Next()
	require.Equal(t, token.Slash, slash.Type)
	re := sc.ReconsumeAsRegexp()
	require.Equal(t, token.RegularExpression, re.Type)
	require.Equal(t, "abc", re.RegexPattern)
	require.Equal(t, "g", re.RegexFlags)
}

func TestMarkResetRoundTrips(t *testing.T) {
	sc := scanner.NewScanner("a b c")
	sc.Next()
	snap := sc.Mark()
	second := sc.Next()
	require.Equal(t, token.Identifier, second.Type)
	sc.Reset(snap)
	require.Equal(t, second, sc.Next())
}

func TestLegacyOctalNumberLiteral(t *testing.T) {
	toks := scanAll(t, "010")
	require.True(t, toks[0].LegacyOctalNumber)
	require.Equal(t, float64(8), toks[0].NumberValue)
}
