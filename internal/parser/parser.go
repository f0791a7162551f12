// Package parser converts a token stream into a module entity model.
//
// The parser is best-effort: it recognizes declarations (modules,
// imports, aggregates, functions, variables, enums, aliases) and skips
// anything it does not understand by balanced-brace scanning. It never
// fails; unparseable input simply contributes fewer entities.
package parser

import (
	"log/slog"
	"strings"

	"github.com/dlangtools/dsense/internal/ast"
	"github.com/dlangtools/dsense/internal/lexer"
	"github.com/dlangtools/dsense/internal/types"
)

// Parser walks a code-only token stream and builds a Module.
type Parser struct {
	tokens []lexer.Token
	pos    int

	// pending attributes/protection applied to the next declaration.
	attributes []string
	protection ast.Protection
	// blockProtection is set by a label such as `private:`.
	blockProtection ast.Protection

	types.Logger
}

// New returns a Parser over the given tokens. Whitespace and comment
// tokens are tolerated and skipped, so either iteration style works.
func New(tokens []lexer.Token, logger *slog.Logger) *Parser {
	code := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.TokWhitespace, lexer.TokComment, lexer.TokEOF:
			continue
		}
		code = append(code, tok)
	}
	p := &Parser{
		tokens: code,
		Logger: types.Logger{L: logger},
	}
	p.Log(slog.LevelDebug, "parser initialized", slog.Int("tokens", len(code)))
	return p
}

// Parse tokenizes nothing itself; it consumes the given token stream
// and returns the parsed module. The sole contract the entity model
// expects from its producer.
func Parse(tokens []lexer.Token, logger *slog.Logger) *ast.Module {
	return New(tokens, logger).ParseModule()
}

// ParseModule parses every declaration in the stream.
func (p *Parser) ParseModule() *ast.Module {
	m := ast.NewModule("")
	p.parseDeclarations(m, nil, false)
	p.Log(slog.LevelDebug, "parse complete",
		slog.String("module", m.Name),
		slog.Int("imports", len(m.Imports)))
	return m
}

// === token cursor ===

func (p *Parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) cur() lexer.Token {
	if p.eof() {
		return lexer.Token{Kind: lexer.TokEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.TokEOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if !p.eof() {
		p.pos++
	}
	return tok
}

// skipUntil advances past the next token of the given kind.
func (p *Parser) skipUntil(kind lexer.TokenKind) {
	for !p.eof() {
		if p.advance().Kind == kind {
			return
		}
	}
}

// skipBalanced consumes from an opening token through its matching
// close, tolerating premature end of input.
func (p *Parser) skipBalanced(open, close lexer.TokenKind) lexer.Token {
	depth := 0
	var last lexer.Token
	for !p.eof() {
		tok := p.advance()
		last = tok
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return last
			}
		}
	}
	return last
}

// === declaration scope ===

// parseDeclarations fills the module (and, inside an aggregate body,
// the aggregate) until the matching closing brace or end of input.
// Nested aggregates always register at module level too, so position
// queries can see them.
func (p *Parser) parseDeclarations(m *ast.Module, owner *ast.Struct, insideBody bool) {
	savedBlock := p.blockProtection
	defer func() { p.blockProtection = savedBlock }()

	for !p.eof() {
		tok := p.cur()
		switch tok.Kind {
		case lexer.TokRBrace:
			if insideBody {
				return
			}
			p.advance() // stray close at top level

		case lexer.TokKwModule:
			p.parseModuleDecl(m)

		case lexer.TokKwImport:
			p.parseImport(m)

		case lexer.TokKwStruct:
			s := p.parseAggregate(m)
			m.Structs = append(m.Structs, s)

		case lexer.TokKwUnion:
			s := p.parseAggregate(m)
			m.Unions = append(m.Unions, s)

		case lexer.TokKwClass:
			p.parseInherits(m, &m.Classes)

		case lexer.TokKwInterface:
			p.parseInherits(m, &m.Interfaces)

		case lexer.TokKwEnum:
			p.parseEnum(m, owner)

		case lexer.TokKwAlias, lexer.TokKwTypedef:
			p.parseAlias(m, owner)

		case lexer.TokKwTemplate:
			p.skipTemplateBlock()

		case lexer.TokKwUnittest, lexer.TokKwInvariant:
			p.advance()
			p.skipOptionalParens()
			p.skipBody()

		case lexer.TokKwVersion, lexer.TokKwDebug:
			p.advance()
			p.skipOptionalParens()
			// A following brace groups declarations in the same scope.

		case lexer.TokKwMixin:
			p.advance()
			p.skipStatement()

		case lexer.TokLBrace:
			// Bare group (version block, protection block): same scope.
			braceStart := p.pos
			p.advance()
			p.parseDeclarations(m, owner, true)
			if p.cur().Kind == lexer.TokRBrace {
				p.advance()
			} else if p.pos == braceStart+1 {
				return // nothing consumed, bail out of a broken group
			}

		case lexer.TokSemicolon:
			p.advance()

		default:
			if tok.Kind.IsProtection() {
				p.parseProtection()
				continue
			}
			if p.parseAttribute() {
				continue
			}
			if !p.parseVariableOrFunction(m, owner) {
				p.advance() // unrecognized token, keep going
			}
		}
	}
}

func (p *Parser) parseModuleDecl(m *ast.Module) {
	p.advance() // module
	m.Name = p.parseDottedName()
	p.skipUntil(lexer.TokSemicolon)
}

// parseImport handles `import a.b, c.d;` and renamed/selective imports
// (`import io = std.stdio;`, `import std.conv : to;`); only the module
// names are recorded.
func (p *Parser) parseImport(m *ast.Module) {
	p.advance() // import
	for !p.eof() {
		name := p.parseDottedName()
		// Renamed import: the dotted name was the binding, the module
		// name follows '='.
		if p.cur().Kind == lexer.TokAssign {
			p.advance()
			name = p.parseDottedName()
		}
		if name != "" {
			m.Imports = append(m.Imports, name)
		}
		switch p.cur().Kind {
		case lexer.TokComma:
			p.advance()
			continue
		case lexer.TokColon:
			// Selective import list: skip the symbol list.
			p.skipUntil(lexer.TokSemicolon)
			return
		default:
			p.skipUntil(lexer.TokSemicolon)
			return
		}
	}
}

// parseDottedName reads ident(.ident)* and returns the joined text.
func (p *Parser) parseDottedName() string {
	var parts []string
	for p.cur().Kind == lexer.TokIdentifier {
		parts = append(parts, p.advance().Text)
		if p.cur().Kind != lexer.TokDot {
			break
		}
		p.advance()
	}
	return strings.Join(parts, ".")
}

// parseProtection consumes a protection keyword, distinguishing a
// label (`private:`), a block (`private { ... }` handled by the brace
// case upstream), and a prefix on a single declaration.
func (p *Parser) parseProtection() {
	tok := p.advance()
	prot := protectionFor(tok.Kind)
	if p.cur().Kind == lexer.TokColon {
		p.advance()
		p.blockProtection = prot
		return
	}
	p.protection = prot
}

func protectionFor(kind lexer.TokenKind) ast.Protection {
	switch kind {
	case lexer.TokKwPublic:
		return ast.ProtectionPublic
	case lexer.TokKwPrivate:
		return ast.ProtectionPrivate
	case lexer.TokKwProtected:
		return ast.ProtectionProtected
	case lexer.TokKwPackage:
		return ast.ProtectionPackage
	case lexer.TokKwExport:
		return ast.ProtectionExport
	default:
		return ast.ProtectionDefault
	}
}

// parseAttribute consumes one declaration attribute if the cursor is on
// one, recording its text for the next declaration.
func (p *Parser) parseAttribute() bool {
	switch p.cur().Kind {
	case lexer.TokKwStatic, lexer.TokKwFinal, lexer.TokKwOverride,
		lexer.TokKwAbstract, lexer.TokKwDeprecated, lexer.TokKwPure,
		lexer.TokKwNothrow, lexer.TokKwSynchronized, lexer.TokKwGshared,
		lexer.TokKwThread:
		p.attributes = append(p.attributes, p.advance().Text)
		return true
	case lexer.TokKwExtern, lexer.TokKwAlign:
		text := p.advance().Text
		if p.cur().Kind == lexer.TokLParen {
			text += p.parenGroupText()
		}
		p.attributes = append(p.attributes, text)
		return true
	case lexer.TokAt:
		p.advance()
		if p.cur().Kind == lexer.TokIdentifier {
			p.attributes = append(p.attributes, "@"+p.advance().Text)
			if p.cur().Kind == lexer.TokLParen {
				p.skipBalanced(lexer.TokLParen, lexer.TokRParen)
			}
		}
		return true
	}
	return false
}

// takeBase builds the Base for a declaration, consuming the pending
// attributes and protection.
func (p *Parser) takeBase(name string, line uint32) ast.Base {
	prot := p.protection
	if prot == ast.ProtectionDefault {
		prot = p.blockProtection
	}
	base := ast.Base{
		Name:       name,
		Line:       line,
		Attributes: p.attributes,
		Protection: prot,
	}
	p.attributes = nil
	p.protection = ast.ProtectionDefault
	return base
}
