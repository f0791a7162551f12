package parser

import (
	"strings"

	"github.com/dlangtools/dsense/internal/lexer"
)

// parseType reads a type reference at the cursor and returns its
// rendered text, or "" with the cursor restored when no type starts
// here. Covered forms: basic types, dotted identifiers, template
// instantiations (`Map!(string, int)`), typeof expressions, qualifier
// wrappers (`const(int)`), and the pointer, array, function, and
// delegate suffixes.
func (p *Parser) parseType() string {
	start := p.pos
	var toks []lexer.Token

	wrapped := false
	for !wrapped {
		switch p.cur().Kind {
		case lexer.TokKwConst, lexer.TokKwImmutable, lexer.TokKwShared, lexer.TokKwInout:
			toks = append(toks, p.advance())
			if p.cur().Kind == lexer.TokLParen {
				toks = append(toks, p.collectBalanced(lexer.TokLParen, lexer.TokRParen)...)
				wrapped = true
			}
		default:
			wrapped = true
			if !p.collectBaseType(&toks) && len(toks) == 0 {
				p.pos = start
				return ""
			}
		}
	}

	p.collectTypeSuffixes(&toks)
	return joinTokens(toks)
}

// collectBaseType appends the core of a type: a basic type keyword, a
// typeof expression, or a dotted identifier chain with optional
// template arguments on each segment.
func (p *Parser) collectBaseType(toks *[]lexer.Token) bool {
	switch {
	case p.cur().Kind.IsBasicType():
		*toks = append(*toks, p.advance())
		return true

	case p.cur().Kind == lexer.TokKwTypeof:
		*toks = append(*toks, p.advance())
		if p.cur().Kind == lexer.TokLParen {
			*toks = append(*toks, p.collectBalanced(lexer.TokLParen, lexer.TokRParen)...)
		}
		return true

	case p.cur().Kind == lexer.TokIdentifier:
		for {
			*toks = append(*toks, p.advance())
			p.collectTemplateArgs(toks)
			if p.cur().Kind != lexer.TokDot || p.peekAt(1).Kind != lexer.TokIdentifier {
				return true
			}
			*toks = append(*toks, p.advance()) // '.'
		}
	}
	return false
}

// collectTemplateArgs appends `!(args)` or `!arg` when present.
func (p *Parser) collectTemplateArgs(toks *[]lexer.Token) {
	if p.cur().Kind != lexer.TokNot {
		return
	}
	switch p.peekAt(1).Kind {
	case lexer.TokLParen:
		*toks = append(*toks, p.advance())
		*toks = append(*toks, p.collectBalanced(lexer.TokLParen, lexer.TokRParen)...)
	case lexer.TokIdentifier, lexer.TokNumber, lexer.TokString:
		*toks = append(*toks, p.advance(), p.advance())
	default:
		if p.peekAt(1).Kind.IsBasicType() {
			*toks = append(*toks, p.advance(), p.advance())
		}
	}
}

// collectTypeSuffixes appends pointer, array, and function/delegate
// type suffixes.
func (p *Parser) collectTypeSuffixes(toks *[]lexer.Token) {
	for {
		switch p.cur().Kind {
		case lexer.TokStar:
			*toks = append(*toks, p.advance())
		case lexer.TokLBracket:
			*toks = append(*toks, p.collectBalanced(lexer.TokLBracket, lexer.TokRBracket)...)
		case lexer.TokKwFunction, lexer.TokKwDelegate:
			*toks = append(*toks, p.advance())
			if p.cur().Kind == lexer.TokLParen {
				*toks = append(*toks, p.collectBalanced(lexer.TokLParen, lexer.TokRParen)...)
			}
		default:
			return
		}
	}
}

// collectBalanced consumes an opening token through its matching close
// and returns everything consumed, clamping at end of input.
func (p *Parser) collectBalanced(open, close lexer.TokenKind) []lexer.Token {
	var toks []lexer.Token
	depth := 0
	for !p.eof() {
		tok := p.advance()
		toks = append(toks, tok)
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return toks
			}
		}
	}
	return toks
}

// parenGroupText consumes a paren group and returns its text including
// the parens.
func (p *Parser) parenGroupText() string {
	return joinTokens(p.collectBalanced(lexer.TokLParen, lexer.TokRParen))
}

// trimGroup strips the outer open/close pair collectBalanced kept.
func trimGroup(group []lexer.Token) []lexer.Token {
	if len(group) >= 2 {
		return group[1 : len(group)-1]
	}
	return nil
}

// splitTopLevel partitions tokens at every separator that sits outside
// nested parens, brackets, and braces. Empty segments are dropped.
func splitTopLevel(toks []lexer.Token, separator lexer.TokenKind) [][]lexer.Token {
	var groups [][]lexer.Token
	var current []lexer.Token
	depth := 0
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}
	for _, tok := range toks {
		switch tok.Kind {
		case lexer.TokLParen, lexer.TokLBracket, lexer.TokLBrace:
			depth++
		case lexer.TokRParen, lexer.TokRBracket, lexer.TokRBrace:
			depth--
		}
		if depth == 0 && tok.Kind == separator {
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()
	return groups
}

// joinTokens renders tokens back to text, separating two tokens with a
// space only where gluing them would fuse identifier characters.
func joinTokens(toks []lexer.Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 && needsSpace(toks[i-1].Text, tok.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func needsSpace(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	return isWordByte(prev[len(prev)-1]) && isWordByte(next[0])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
