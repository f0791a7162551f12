package lexer

// lexComment consumes a comment. On entry the cursor sits on the
// character after the opening slash: '/' for a line comment, '*' for a
// block comment, '+' for a nesting comment. Unterminated comments clamp
// to end of input. Returns the consumed text (opening slash excluded;
// callers slice the full token text from the saved start offset).
func (l *Lexer) lexComment() string {
	start := l.pos
	b, ok := l.peek()
	if !ok {
		return ""
	}
	switch b {
	case '/':
		l.lexLineComment()
	case '*':
		l.lexBlockComment()
	case '+':
		l.lexNestingComment()
	}
	return l.source[start:l.pos]
}

// lexLineComment runs to the next newline, exclusive.
func (l *Lexer) lexLineComment() {
	l.advance() // second '/'
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// lexBlockComment scans for the literal closing '*/'. Block comments do
// not nest.
func (l *Lexer) lexBlockComment() {
	l.advance() // '*'
	for {
		b, ok := l.advance()
		if !ok {
			return
		}
		if b == '*' {
			if next, ok := l.peek(); ok && next == '/' {
				l.advance()
				return
			}
		}
	}
}

// lexNestingComment tracks a depth counter incremented on '/+' and
// decremented on '+/', terminating at depth zero. Unbalanced input
// consumes to end of input.
func (l *Lexer) lexNestingComment() {
	l.advance() // '+'
	depth := 1
	for depth > 0 {
		b, ok := l.advance()
		if !ok {
			return
		}
		switch b {
		case '/':
			if next, ok := l.peek(); ok && next == '+' {
				l.advance()
				depth++
			}
		case '+':
			if next, ok := l.peek(); ok && next == '/' {
				l.advance()
				depth--
			}
		}
	}
}
