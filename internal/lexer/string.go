package lexer

// lexQuotedString consumes a quoted string literal. On entry the cursor
// sits on the opening quote (', ", or `). Backslash escaping is honored
// only when raw is false; backtick and r"..." literals never escape.
// If input ends before the closing quote the partial text up to end of
// input is consumed rather than failing.
func (l *Lexer) lexQuotedString(raw bool) string {
	start := l.pos
	delim, ok := l.advance()
	if !ok {
		return ""
	}
	for {
		b, ok := l.advance()
		if !ok {
			return l.source[start:l.pos]
		}
		if b == '\\' && !raw {
			l.advance() // escaped character, even a quote
			continue
		}
		if b == delim {
			return l.source[start:l.pos]
		}
	}
}

// matchingDelimiter returns the closing delimiter paired with an opener,
// or 0 when the opener is not one of the four bracket forms.
func matchingDelimiter(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '<':
		return '>'
	case '{':
		return '}'
	case '(':
		return ')'
	default:
		return 0
	}
}

// lexDelimitedString consumes a q"..." literal. On entry the cursor sits
// on the 'q'. The four paired-bracket openers nest by depth; an
// identifier opener is matched by literal recurrence of the identifier
// text before the closing quote, with no nesting. Unterminated literals
// clamp to end of input.
func (l *Lexer) lexDelimitedString() string {
	start := l.pos
	l.advance() // 'q'
	l.advance() // '"'

	open, ok := l.peek()
	if !ok {
		return l.source[start:l.pos]
	}

	if close := matchingDelimiter(open); close != 0 {
		l.lexBracketDelimited(open, close)
	} else {
		l.lexIdentifierDelimited()
	}
	return l.source[start:l.pos]
}

// lexBracketDelimited scans q"[...]" and friends, tracking nesting depth
// until the matching close delimiter followed by the closing quote.
func (l *Lexer) lexBracketDelimited(open, close byte) {
	l.advance() // opening delimiter
	depth := 1
	for {
		b, ok := l.advance()
		if !ok {
			return
		}
		switch b {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				if next, ok := l.peek(); ok && next == '"' {
					l.advance()
				}
				return
			}
		}
	}
}

// lexIdentifierDelimited scans q"IDENT ... IDENT", matching the literal
// recurrence of the delimiter identifier followed by the closing quote.
func (l *Lexer) lexIdentifierDelimited() {
	identStart := l.pos
	for {
		b, ok := l.peek()
		if !ok || isSeparating(b) {
			break
		}
		l.advance()
	}
	ident := l.source[identStart:l.pos]
	if ident == "" {
		// Not a valid delimiter; consume the stray quote if present and stop.
		l.advance()
		return
	}
	for {
		if l.pos >= len(l.source) {
			return
		}
		if l.source[l.pos] == ident[0] && hasPrefixAt(l.source, l.pos, ident) {
			end := l.pos + len(ident)
			if end < len(l.source) && l.source[end] == '"' {
				for l.pos < end+1 {
					l.advance()
				}
				return
			}
		}
		l.advance()
	}
}

// hasPrefixAt reports whether source[pos:] begins with prefix.
func hasPrefixAt(source string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(source) && source[pos:pos+len(prefix)] == prefix
}

// lexTokenString consumes a q{...} token string, tracking brace depth.
// On entry the cursor sits on the 'q'.
func (l *Lexer) lexTokenString() string {
	start := l.pos
	l.advance() // 'q'
	l.advance() // '{'
	depth := 1
	for depth > 0 {
		b, ok := l.advance()
		if !ok {
			break
		}
		switch b {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return l.source[start:l.pos]
}
