package lexer

import (
	"log/slog"

	"github.com/dlangtools/dsense/internal/types"
)

// IterationStyle selects which tokens Tokenize emits.
type IterationStyle int

const (
	// IterateCode consumes whitespace and comments without emitting them.
	IterateCode IterationStyle = iota
	// IterateEverything emits whitespace and comment tokens too; the
	// concatenated Text of all tokens reproduces the input exactly.
	IterateEverything
)

// Lexer tokenizes D source text.
//
// The scan is a single left-to-right pass over one cursor with no
// backtracking. Every code path advances the cursor, and the sub-lexers
// clamp to the input length when an unterminated construct runs off the
// end, so the scan always terminates and never indexes past the input.
type Lexer struct {
	source string
	pos    int
	line   uint32
	style  IterationStyle
	types.Logger
}

// New returns a Lexer over the given source text.
func New(source string, style IterationStyle, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		pos:    0,
		line:   1,
		style:  style,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized",
		slog.Int("bytes", len(source)),
		slog.Bool("everything", style == IterateEverything))
	return l
}

// Tokenize is the package-level convenience over New and a full scan.
func Tokenize(source string, style IterationStyle, logger *slog.Logger) []Token {
	return New(source, style, logger).Tokenize()
}

// Tokenize consumes all source text and returns the token stream.
// The stream always ends with a TokEOF token carrying empty text.
func (l *Lexer) Tokenize() []Token {
	estimatedTokens := max(len(l.source)/6, 64)
	tokens := make([]Token, 0, estimatedTokens)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete", slog.Int("tokens", len(tokens)))
	return tokens
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() Token {
	for {
		tok, retry := l.next()
		if retry {
			continue
		}
		l.traceToken(tok)
		return tok
	}
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.Int("kind", int(tok.Kind)),
			slog.Int("start", tok.Start),
			slog.Int("line", int(tok.Line)))
	}
}

// next scans one lexical form. Returns (token, retry) where retry=true
// means the form was consumed without producing a token (whitespace or
// a comment in IterateCode mode) and the caller should loop.
func (l *Lexer) next() (Token, bool) {
	start := l.pos
	line := l.line

	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start, line), false
	}

	if isWhitespace(b) {
		l.lexWhitespace()
		if l.style == IterateEverything {
			return l.token(TokWhitespace, start, line), false
		}
		return Token{}, true
	}

	if isDigit(b) {
		l.lexNumber()
		return l.token(TokNumber, start, line), false
	}

	if b == '/' {
		if next, ok := l.peekAt(1); ok && (next == '/' || next == '*' || next == '+') {
			l.pos++ // consume '/', sub-lexer starts on the comment form character
			l.lexComment()
			if l.style == IterateEverything {
				return l.token(TokComment, start, line), false
			}
			return Token{}, true
		}
		// division or division-assign, via the operator table below
	}

	switch b {
	case '"', '\'':
		l.lexQuotedString(false)
		return l.token(TokString, start, line), false
	case '`':
		l.lexQuotedString(true)
		return l.token(TokString, start, line), false
	case 'r', 'x':
		// r"..." never escapes; x"..." is a hex string with ordinary
		// quoted-string structure. Either prefix without a following
		// quote falls through to identifier scanning.
		if next, ok := l.peekAt(1); ok && next == '"' {
			l.pos++ // consume prefix
			l.lexQuotedString(b == 'r')
			return l.token(TokString, start, line), false
		}
	case 'q':
		if next, ok := l.peekAt(1); ok {
			if next == '"' {
				l.lexDelimitedString()
				return l.token(TokString, start, line), false
			}
			if next == '{' {
				l.lexTokenString()
				return l.token(TokString, start, line), false
			}
		}
	}

	if kind, n := LookupOperator(l.source, l.pos); n > 0 {
		l.pos += n
		return l.token(kind, start, line), false
	}

	// Anything else is an identifier run ending at the next separating
	// character (whitespace or ASCII punctuation).
	l.lexIdentifierRun()
	if kind, ok := LookupKeyword(l.source[start:l.pos]); ok {
		return l.token(kind, start, line), false
	}
	return l.token(TokIdentifier, start, line), false
}

func (l *Lexer) token(kind TokenKind, start int, line uint32) Token {
	return Token{
		Kind:  kind,
		Text:  l.source[start:l.pos],
		Line:  line,
		Start: start,
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

// advance consumes one byte, counting lines.
func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
	}
	return b, true
}

// lexWhitespace advances over whitespace, incrementing the line counter
// on each newline, and returns the consumed run.
func (l *Lexer) lexWhitespace() string {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok || !isWhitespace(b) {
			break
		}
		l.advance()
	}
	return l.source[start:l.pos]
}

// lexIdentifierRun collects characters until the next separating
// character. Non-ASCII bytes are part of the run, so UTF-8 identifiers
// pass through intact.
func (l *Lexer) lexIdentifierRun() string {
	start := l.pos
	l.advance() // the first character is never a separator here
	for {
		b, ok := l.peek()
		if !ok || isSeparating(b) {
			break
		}
		l.advance()
	}
	return l.source[start:l.pos]
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// isSeparating reports whether b ends an identifier run: whitespace or
// any ASCII punctuation except '_'.
func isSeparating(b byte) bool {
	if isWhitespace(b) {
		return true
	}
	if b >= 0x80 {
		return false
	}
	switch {
	case b >= '0' && b <= '9':
		return false
	case b >= 'a' && b <= 'z':
		return false
	case b >= 'A' && b <= 'Z':
		return false
	case b == '_':
		return false
	}
	return b >= '!' && b <= '~'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
