package lexer

// numberSuffixes is the fixed set of type suffix characters. One
// trailing suffix terminates a numeric literal immediately.
func isNumberSuffix(b byte) bool {
	switch b {
	case 'L', 'u', 'U', 'f', 'F', 'i':
		return true
	default:
		return false
	}
}

// lexNumber consumes a numeric literal in a single left-to-right scan.
// On entry the cursor sits on the first digit. A leading 0x/0X switches
// to hex mode (binary exponent p/P); a leading 0b/0B switches to binary
// mode; otherwise e/E introduces a decimal exponent. At most one decimal
// point, only before any exponent. '_' separators may appear anywhere in
// the digit run. An exponent sign is permitted only directly after the
// exponent marker. Any character outside these rules ends the literal.
func (l *Lexer) lexNumber() string {
	start := l.pos

	var foundHex, foundBinary bool
	if b, _ := l.peek(); b == '0' {
		if next, ok := l.peekAt(1); ok {
			switch next {
			case 'x', 'X':
				foundHex = true
				l.advance()
				l.advance()
			case 'b', 'B':
				foundBinary = true
				l.advance()
				l.advance()
			}
		}
	}

	var foundDot, foundExponent bool
	afterExponentMarker := false
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		wasMarker := afterExponentMarker
		afterExponentMarker = false

		switch {
		case b == '_':
			l.advance()
		case foundHex && isHexDigit(b):
			l.advance()
		case !foundHex && isDigit(b):
			// Binary mode tolerates any decimal digit; the literal is
			// best-effort, not validated.
			l.advance()
		case b == '.' && !foundBinary:
			if foundDot || foundExponent {
				return l.source[start:l.pos]
			}
			// Leave '..' and friends for the operator table.
			if next, ok := l.peekAt(1); ok && next == '.' {
				return l.source[start:l.pos]
			}
			foundDot = true
			l.advance()
		case (b == 'e' || b == 'E') && !foundHex && !foundBinary:
			if foundExponent {
				return l.source[start:l.pos]
			}
			foundExponent = true
			afterExponentMarker = true
			l.advance()
		case (b == 'p' || b == 'P') && foundHex:
			if foundExponent {
				return l.source[start:l.pos]
			}
			foundExponent = true
			afterExponentMarker = true
			l.advance()
		case (b == '+' || b == '-') && wasMarker:
			l.advance()
		case isNumberSuffix(b):
			// A single trailing type suffix terminates the scan.
			l.advance()
			return l.source[start:l.pos]
		default:
			return l.source[start:l.pos]
		}
	}
	return l.source[start:l.pos]
}
