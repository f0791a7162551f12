package dsense_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlangtools/dsense"
)

const buffer = `
module app;

import geometry;

struct Config {
	string path;
	int verbosity;

	bool valid() { return path.length > 0; }
}

void run(Config cfg) {
}
`

func TestTokenizeRoundTrip(t *testing.T) {
	source := "int x = 0; /+ nested /+ comment +/ +/ q\"(weird)\" // eol"
	tokens := dsense.Tokenize(source, dsense.IterateEverything)

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	assert.Equal(t, source, sb.String())
}

func TestTokenizeCodeSkipsTrivia(t *testing.T) {
	tokens := dsense.Tokenize("int x; // comment", dsense.IterateCode)
	for _, tok := range tokens {
		assert.NotContains(t, tok.Text, "comment")
	}
}

func TestParseBuffer(t *testing.T) {
	m := dsense.Parse(buffer)

	require.NotNil(t, m)
	assert.Equal(t, "app", m.Name)
	assert.Equal(t, []string{"geometry"}, m.Imports)
	require.Len(t, m.Structs, 1)
	assert.Equal(t, "Config", m.Structs[0].Name)
	require.Len(t, m.Functions, 1)
	assert.Equal(t, "void run(Config cfg)", m.Functions[0].Signature())
}

func TestCompletionOverBuffer(t *testing.T) {
	ctx := dsense.NewContext(dsense.Parse(buffer))

	members := ctx.MembersOfType("Config")
	require.Contains(t, members, "path")
	assert.Equal(t, dsense.Member{Type: "string", Kind: dsense.KindMember}, members["path"])
	require.Contains(t, members, "valid")
	assert.Equal(t, dsense.KindMethod, members["valid"].Kind)

	// Builtins resolve without any module at all.
	assert.Equal(t, "size_t", ctx.MembersOfType("int[]")["length"].Type)
	assert.Equal(t, "float", ctx.MembersOfType("float")["max"].Type)
}

func TestCallTipsOverBuffer(t *testing.T) {
	ctx := dsense.NewContext(dsense.Parse(buffer))

	inside := strings.Index(buffer, "path.length")
	tips := ctx.CallTipsFor("", "valid", inside)
	assert.Equal(t, []string{"bool valid()"}, tips)

	tips = ctx.CallTipsFor("", "run", 0)
	assert.Equal(t, []string{"void run(Config cfg)"}, tips)
}

func TestWithLoggerTraces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: dsense.LevelTrace,
	}))

	m := dsense.Parse(buffer, dsense.WithLogger(logger))
	require.NotNil(t, m)
	assert.Contains(t, buf.String(), "component=lexer")
	assert.Contains(t, buf.String(), "component=parser")
}
