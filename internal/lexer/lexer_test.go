package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(source string) []TokenKind {
	tokens := Tokenize(source, IterateCode, nil)
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func tokenTexts(source string) []string {
	tokens := Tokenize(source, IterateCode, nil)
	var texts []string
	for _, t := range tokens {
		if t.Kind != TokEOF {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	require.Equal(t, []TokenKind{TokEOF}, tokenKinds(""))
}

func TestOnlyWhitespace(t *testing.T) {
	require.Equal(t, []TokenKind{TokEOF}, tokenKinds("   \t\r\n  "))
}

func TestIdentifiersAndKeywords(t *testing.T) {
	kinds := tokenKinds("module foo int x")
	expected := []TokenKind{TokKwModule, TokIdentifier, TokKwInt, TokIdentifier, TokEOF}
	require.Equal(t, expected, kinds)
}

func TestUnderscoreKeywords(t *testing.T) {
	kinds := tokenKinds("__FILE__ __LINE__ __gshared __traits foo_bar")
	expected := []TokenKind{
		TokKwFile, TokKwLine, TokKwGshared, TokKwTraits, TokIdentifier, TokEOF,
	}
	require.Equal(t, expected, kinds)
}

func TestOperatorLongestMatch(t *testing.T) {
	texts := tokenTexts(">>>= >>> >> >= > <<= << <= <")
	expected := []string{">>>=", ">>>", ">>", ">=", ">", "<<=", "<<", "<=", "<"}
	require.Equal(t, expected, texts)
}

func TestAdjacentOperators(t *testing.T) {
	// No whitespace: longest-match still applies left to right.
	texts := tokenTexts("a>>>=b")
	require.Equal(t, []string{"a", ">>>=", "b"}, texts)

	kinds := tokenKinds("!<>= !<> !<= !< != !")
	expected := []TokenKind{
		TokUnorderedEqual, TokUnordered, TokUnorderedLessEqual,
		TokUnorderedLess, TokNotEqual, TokNot, TokEOF,
	}
	require.Equal(t, expected, kinds)
}

func TestDivisionVersusComment(t *testing.T) {
	kinds := tokenKinds("a / b /= c")
	expected := []TokenKind{
		TokIdentifier, TokDiv, TokIdentifier, TokDivAssign, TokIdentifier, TokEOF,
	}
	require.Equal(t, expected, kinds)

	// Comments disappear entirely in code mode.
	kinds = tokenKinds("a // comment\nb /* block */ c /+ nesting +/ d")
	expected = []TokenKind{
		TokIdentifier, TokIdentifier, TokIdentifier, TokIdentifier, TokEOF,
	}
	require.Equal(t, expected, kinds)
}

func TestEverythingModeEmitsTrivia(t *testing.T) {
	source := "int x; // trailing\n"
	tokens := Tokenize(source, IterateEverything, nil)

	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	expected := []TokenKind{
		TokKwInt, TokWhitespace, TokIdentifier, TokSemicolon,
		TokWhitespace, TokComment, TokWhitespace, TokEOF,
	}
	require.Equal(t, expected, kinds)
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"module foo.bar;\nimport std.stdio;\n",
		"int x = 0x1A; /* block */ auto s = `raw\\nstring`;",
		"/+ nested /+ deeper +/ still +/ void f() {}",
		"q\"[delim [nested] text]\" q{tokens {here}} r\"no\\escape\"",
		"float f = 1.5e-10f; ulong u = 1_000UL",
		"\"unterminated",
		"/* unterminated block",
		"/+ unbalanced /+ nesting",
		"weird \x01 bytes \xc3\xa9clair",
	}
	for _, source := range sources {
		tokens := Tokenize(source, IterateEverything, nil)
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Text)
		}
		assert.Equal(t, source, sb.String(), "round trip of %q", source)
	}
}

func TestTokenOffsetsNeverExceedInput(t *testing.T) {
	sources := []string{
		"", "a", "0x", "\"", "`", "q\"", "q{", "r\"abc", "x\"00", "/+", "/*", "//",
		"1.2.3", "q\"EOS text", "'", "1e", "0x1p",
	}
	for _, source := range sources {
		for _, tok := range Tokenize(source, IterateEverything, nil) {
			assert.LessOrEqual(t, tok.Start, len(source), "start offset in %q", source)
			assert.LessOrEqual(t, tok.Start+len(tok.Text), len(source), "end offset in %q", source)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	source := "one\ntwo /* a\nb */ three\n`raw\nlines` four"
	tokens := Tokenize(source, IterateCode, nil)

	byText := map[string]uint32{}
	for _, tok := range tokens {
		byText[tok.Text] = tok.Line
	}
	assert.Equal(t, uint32(1), byText["one"])
	assert.Equal(t, uint32(2), byText["two"])
	assert.Equal(t, uint32(3), byText["three"])
	assert.Equal(t, uint32(5), byText["four"])
}

func TestLinesCountedInsideComments(t *testing.T) {
	source := "/+ a\nb\nc +/ x"
	tokens := Tokenize(source, IterateCode, nil)
	require.Equal(t, "x", tokens[0].Text)
	require.Equal(t, uint32(3), tokens[0].Line)
}

func TestKeywordLookup(t *testing.T) {
	tests := []struct {
		text     string
		expected TokenKind
		found    bool
	}{
		{"module", TokKwModule, true},
		{"foreach_reverse", TokKwForeachReverse, true},
		{"__traits", TokKwTraits, true},
		{"Module", TokError, false},
		{"", TokError, false},
		{"modules", TokError, false},
	}
	for _, tc := range tests {
		kind, found := LookupKeyword(tc.text)
		assert.Equal(t, tc.found, found, "LookupKeyword(%q) found", tc.text)
		if found {
			assert.Equal(t, tc.expected, kind, "LookupKeyword(%q) kind", tc.text)
		}
	}
}

func TestKeywordTableSorted(t *testing.T) {
	for i := 1; i < len(keywords); i++ {
		assert.Less(t, keywords[i-1].text, keywords[i].text,
			"keyword table out of order at %q", keywords[i].text)
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, TokKwInt.IsKeyword())
	assert.True(t, TokKwInt.IsBasicType())
	assert.False(t, TokKwClass.IsBasicType())
	assert.True(t, TokKwPrivate.IsProtection())
	assert.True(t, TokUnsignedShiftRightAssign.IsOperator())
	assert.False(t, TokIdentifier.IsOperator())
	assert.True(t, TokNumber.IsLiteral())
	assert.False(t, TokWhitespace.IsLiteral())
}
