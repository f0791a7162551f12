package parser

import (
	"github.com/dlangtools/dsense/internal/ast"
	"github.com/dlangtools/dsense/internal/lexer"
)

// === aggregates ===

// parseAggregate parses `struct Name(T...) if (...) { ... }` or the
// union equivalent. Bodyless forward declarations are kept with zero
// body offsets.
func (p *Parser) parseAggregate(m *ast.Module) ast.Struct {
	kw := p.advance() // struct / union
	var s ast.Struct
	name := ""
	if p.cur().Kind == lexer.TokIdentifier {
		name = p.advance().Text
	}
	s.Base = p.takeBase(name, kw.Line)
	p.parseTemplateHead(&s.Templateable)
	p.parseAggregateBody(m, &s)
	return s
}

// parseInherits parses a class or interface declaration, including its
// base class list, and appends it to the given collection.
func (p *Parser) parseInherits(m *ast.Module, into *[]ast.Inherits) {
	kw := p.advance() // class / interface
	var inh ast.Inherits
	name := ""
	if p.cur().Kind == lexer.TokIdentifier {
		name = p.advance().Text
	}
	inh.Base = p.takeBase(name, kw.Line)
	p.parseTemplateHead(&inh.Templateable)

	if p.cur().Kind == lexer.TokColon {
		p.advance()
		for !p.eof() {
			if base := p.collectBaseClass(); base != "" {
				inh.BaseClasses = append(inh.BaseClasses, base)
			}
			if p.cur().Kind != lexer.TokComma {
				break
			}
			p.advance()
		}
	}
	p.parseAggregateBody(m, &inh.Struct)
	*into = append(*into, inh)
}

// parseTemplateHead consumes template parameters and an optional
// `if (...)` constraint following an aggregate or function name.
func (p *Parser) parseTemplateHead(t *ast.Templateable) {
	if p.cur().Kind == lexer.TokLParen {
		group := p.collectBalanced(lexer.TokLParen, lexer.TokRParen)
		for _, param := range splitTopLevel(trimGroup(group), lexer.TokComma) {
			t.TemplateParameters = append(t.TemplateParameters, joinTokens(param))
		}
	}
	p.parseConstraint(t)
}

func (p *Parser) parseConstraint(t *ast.Templateable) {
	if p.cur().Kind == lexer.TokKwIf && p.peekAt(1).Kind == lexer.TokLParen {
		p.advance()
		group := p.collectBalanced(lexer.TokLParen, lexer.TokRParen)
		t.Constraint = joinTokens(trimGroup(group))
	}
}

// parseAggregateBody records the body offsets and parses the members.
// Member functions, variables, and aliases land in the aggregate;
// nested aggregates and enums also register at module level through
// the recursive call.
func (p *Parser) parseAggregateBody(m *ast.Module, s *ast.Struct) {
	if p.cur().Kind == lexer.TokSemicolon {
		p.advance()
		return
	}
	if p.cur().Kind != lexer.TokLBrace {
		return
	}
	open := p.advance()
	s.BodyStart = open.Start
	p.parseDeclarations(m, s, true)
	if p.cur().Kind == lexer.TokRBrace {
		s.BodyEnd = p.advance().Start
	} else {
		s.BodyEnd = p.lastOffset()
	}
}

// collectBaseClass reads one base class reference, which may be dotted
// or a template instantiation, up to the next comma or body.
func (p *Parser) collectBaseClass() string {
	var toks []lexer.Token
	for !p.eof() {
		switch p.cur().Kind {
		case lexer.TokComma, lexer.TokLBrace, lexer.TokSemicolon, lexer.TokKwIf:
			return joinTokens(toks)
		case lexer.TokLParen:
			toks = append(toks, p.collectBalanced(lexer.TokLParen, lexer.TokRParen)...)
		default:
			toks = append(toks, p.advance())
		}
	}
	return joinTokens(toks)
}

// === enums ===

// parseEnum handles member-list enums (`enum Color : ubyte { ... }`),
// opaque enums, and manifest constants (`enum x = 5;`, kept with no
// members).
func (p *Parser) parseEnum(m *ast.Module, owner *ast.Struct) {
	kw := p.advance() // enum
	name := ""
	if p.cur().Kind == lexer.TokIdentifier {
		name = p.advance().Text
	}
	e := ast.Enum{Base: p.takeBase(name, kw.Line)}

	elementType := "int"
	switch p.cur().Kind {
	case lexer.TokColon:
		p.advance()
		if t := p.parseType(); t != "" {
			elementType = t
		}
	case lexer.TokAssign:
		// Manifest constant.
		p.skipToTopLevel(lexer.TokSemicolon)
		if p.cur().Kind == lexer.TokSemicolon {
			p.advance()
		}
		m.Enums = append(m.Enums, e)
		return
	}

	if p.cur().Kind != lexer.TokLBrace {
		p.skipUntil(lexer.TokSemicolon)
		m.Enums = append(m.Enums, e)
		return
	}

	p.advance()
	e.HasMembers = true
	for !p.eof() {
		switch p.cur().Kind {
		case lexer.TokRBrace:
			p.advance()
			m.Enums = append(m.Enums, e)
			return
		case lexer.TokComma:
			p.advance()
		case lexer.TokIdentifier:
			member := p.advance()
			e.Members = append(e.Members, ast.EnumMember{
				Line: member.Line,
				Name: member.Text,
				Type: elementType,
			})
			if p.cur().Kind == lexer.TokAssign {
				p.advance()
				p.skipToTopLevel(lexer.TokComma, lexer.TokRBrace)
			}
		default:
			p.advance()
		}
	}
	m.Enums = append(m.Enums, e)
}

// === aliases ===

// parseAlias accepts both `alias Name = Type;` and the legacy
// `alias Type Name;` ordering (typedef takes the legacy form too).
func (p *Parser) parseAlias(m *ast.Module, owner *ast.Struct) {
	kw := p.advance() // alias / typedef
	var toks []lexer.Token
	depth := 0
	for !p.eof() {
		tok := p.cur()
		if depth == 0 && (tok.Kind == lexer.TokSemicolon || tok.Kind == lexer.TokRBrace) {
			break
		}
		switch tok.Kind {
		case lexer.TokLParen, lexer.TokLBracket:
			depth++
		case lexer.TokRParen, lexer.TokRBracket:
			depth--
		}
		toks = append(toks, p.advance())
	}
	if p.cur().Kind == lexer.TokSemicolon {
		p.advance()
	}

	name, aliased := splitAlias(toks)
	base := p.takeBase(name, kw.Line)
	if name == "" {
		return
	}
	a := ast.Alias{Base: base, AliasedType: aliased}
	if owner != nil {
		owner.Aliases = append(owner.Aliases, a)
	} else {
		m.Aliases = append(m.Aliases, a)
	}
}

// splitAlias separates the declared name from the aliased type text.
func splitAlias(toks []lexer.Token) (name, aliased string) {
	if len(toks) >= 3 && toks[0].Kind == lexer.TokIdentifier && toks[1].Kind == lexer.TokAssign {
		return toks[0].Text, joinTokens(toks[2:])
	}
	if len(toks) >= 2 && toks[len(toks)-1].Kind == lexer.TokIdentifier {
		return toks[len(toks)-1].Text, joinTokens(toks[:len(toks)-1])
	}
	return "", ""
}

// === variables and functions ===

// parseVariableOrFunction attempts the generic `Type name ...`
// declaration forms: functions (with optional template parameter list
// and constraint), constructors/destructors, and variables including
// comma-separated groups and initializers. Returns false with the
// cursor restored if nothing here parses.
func (p *Parser) parseVariableOrFunction(m *ast.Module, owner *ast.Struct) bool {
	start := p.pos

	// Constructors and destructors.
	if p.cur().Kind == lexer.TokKwThis ||
		(p.cur().Kind == lexer.TokTilde && p.peekAt(1).Kind == lexer.TokKwThis) {
		name := "this"
		if p.cur().Kind == lexer.TokTilde {
			p.advance()
			name = "~this"
		}
		kw := p.advance()
		if p.cur().Kind != lexer.TokLParen {
			p.pos = start
			return false
		}
		f := ast.Function{
			Templateable: ast.Templateable{Base: p.takeBase(name, kw.Line)},
		}
		p.finishFunction(&f)
		appendFunction(m, owner, f)
		return true
	}

	var typeText string
	if p.cur().Kind == lexer.TokKwAuto {
		typeText = p.advance().Text
	} else {
		typeText = p.parseType()
		if typeText == "" {
			return false
		}
	}

	if p.cur().Kind != lexer.TokIdentifier {
		p.pos = start
		return false
	}
	nameTok := p.advance()

	switch p.cur().Kind {
	case lexer.TokLParen:
		f := ast.Function{
			Templateable: ast.Templateable{Base: p.takeBase(nameTok.Text, nameTok.Line)},
			ReturnType:   typeText,
		}
		p.finishFunction(&f)
		appendFunction(m, owner, f)
		return true

	case lexer.TokAssign, lexer.TokComma, lexer.TokSemicolon:
		base := p.takeBase(nameTok.Text, nameTok.Line)
		p.appendVariableGroup(m, owner, base, typeText)
		return true
	}

	p.pos = start
	return false
}

// finishFunction consumes everything after the function name: the
// parameter list (preceded by a template parameter list when two paren
// groups appear), an optional constraint, trailing attributes, contract
// blocks, and the body or terminating semicolon.
func (p *Parser) finishFunction(f *ast.Function) {
	first := p.collectBalanced(lexer.TokLParen, lexer.TokRParen)
	if p.cur().Kind == lexer.TokLParen {
		for _, param := range splitTopLevel(trimGroup(first), lexer.TokComma) {
			f.TemplateParameters = append(f.TemplateParameters, joinTokens(param))
		}
		first = p.collectBalanced(lexer.TokLParen, lexer.TokRParen)
	}
	f.Parameters = parseParameterList(trimGroup(first))
	p.parseConstraint(&f.Templateable)
	p.skipFunctionRemainder()
}

// skipFunctionRemainder discards trailing attributes, in/out contracts,
// and the function body. It stops after the body's closing brace or the
// terminating semicolon, and backs off at an enclosing close brace.
func (p *Parser) skipFunctionRemainder() {
	for !p.eof() {
		switch p.cur().Kind {
		case lexer.TokSemicolon:
			p.advance()
			return
		case lexer.TokLBrace:
			p.skipBalanced(lexer.TokLBrace, lexer.TokRBrace)
			return
		case lexer.TokRBrace:
			return
		case lexer.TokKwIn, lexer.TokKwOut:
			p.advance()
			p.skipOptionalParens()
			p.skipBody()
		case lexer.TokKwBody, lexer.TokKwDo:
			p.advance()
			p.skipBody()
			return
		case lexer.TokAt:
			p.advance()
			if p.cur().Kind == lexer.TokIdentifier {
				p.advance()
			}
			p.skipOptionalParens()
		default:
			if p.cur().Kind.IsKeyword() {
				p.advance() // const, pure, nothrow, ...
				continue
			}
			return
		}
	}
}

// appendVariableGroup records `Type a, b = init, c;` as one variable
// per declared name, all sharing the type and pending attributes.
func (p *Parser) appendVariableGroup(m *ast.Module, owner *ast.Struct, base ast.Base, typeText string) {
	emit := func(b ast.Base) {
		v := ast.Variable{Base: b, Type: typeText}
		if owner != nil {
			owner.Variables = append(owner.Variables, v)
		} else {
			m.Variables = append(m.Variables, v)
		}
	}
	emit(base)

	for !p.eof() {
		switch p.cur().Kind {
		case lexer.TokSemicolon:
			p.advance()
			return
		case lexer.TokAssign:
			p.advance()
			p.skipToTopLevel(lexer.TokComma, lexer.TokSemicolon)
		case lexer.TokComma:
			p.advance()
			if p.cur().Kind == lexer.TokIdentifier {
				next := p.advance()
				sibling := base
				sibling.Name = next.Text
				sibling.Line = next.Line
				emit(sibling)
			}
		default:
			return
		}
	}
}

// parseParameterList turns the tokens between a parameter list's parens
// into variables. Storage classes are dropped, defaults are cut at the
// top-level '=', and an unnamed parameter keeps an empty name.
func parseParameterList(toks []lexer.Token) []ast.Variable {
	var params []ast.Variable
	for _, group := range splitTopLevel(toks, lexer.TokComma) {
		group = dropStorageClasses(group)
		group = cutDefault(group)
		if len(group) == 0 {
			continue
		}
		if len(group) == 1 && group[0].Kind == lexer.TokEllipsis {
			params = append(params, ast.Variable{Type: "..."})
			continue
		}
		v := ast.Variable{}
		if len(group) >= 2 && group[len(group)-1].Kind == lexer.TokIdentifier {
			v.Name = group[len(group)-1].Text
			v.Line = group[len(group)-1].Line
			v.Type = joinTokens(group[:len(group)-1])
		} else {
			v.Type = joinTokens(group)
		}
		params = append(params, v)
	}
	return params
}

func dropStorageClasses(toks []lexer.Token) []lexer.Token {
	for len(toks) > 0 {
		switch toks[0].Kind {
		case lexer.TokKwRef, lexer.TokKwIn, lexer.TokKwOut, lexer.TokKwLazy,
			lexer.TokKwScope, lexer.TokKwFinal:
			toks = toks[1:]
		case lexer.TokKwConst, lexer.TokKwImmutable, lexer.TokKwShared, lexer.TokKwInout:
			// Parenthesized forms are part of the type, bare forms are
			// storage classes.
			if len(toks) > 1 && toks[1].Kind == lexer.TokLParen {
				return toks
			}
			toks = toks[1:]
		default:
			return toks
		}
	}
	return toks
}

func cutDefault(toks []lexer.Token) []lexer.Token {
	depth := 0
	for i, tok := range toks {
		switch tok.Kind {
		case lexer.TokLParen, lexer.TokLBracket:
			depth++
		case lexer.TokRParen, lexer.TokRBracket:
			depth--
		case lexer.TokAssign:
			if depth == 0 {
				return toks[:i]
			}
		}
	}
	return toks
}

func appendFunction(m *ast.Module, owner *ast.Struct, f ast.Function) {
	if owner != nil {
		owner.Functions = append(owner.Functions, f)
	} else {
		m.Functions = append(m.Functions, f)
	}
}

// === skipping ===

// skipTemplateBlock discards a `template Name(Args) { ... }` block.
// Eponymous template contents are beyond best-effort resolution.
func (p *Parser) skipTemplateBlock() {
	p.advance() // template
	if p.cur().Kind == lexer.TokIdentifier {
		p.advance()
	}
	p.skipOptionalParens()
	if p.cur().Kind == lexer.TokKwIf {
		p.advance()
		p.skipOptionalParens()
	}
	p.skipBody()
}

func (p *Parser) skipOptionalParens() {
	if p.cur().Kind == lexer.TokLParen {
		p.skipBalanced(lexer.TokLParen, lexer.TokRParen)
	}
}

func (p *Parser) skipBody() {
	switch p.cur().Kind {
	case lexer.TokLBrace:
		p.skipBalanced(lexer.TokLBrace, lexer.TokRBrace)
	case lexer.TokSemicolon:
		p.advance()
	}
}

// skipStatement consumes through the next top-level semicolon, backing
// off at an enclosing close brace.
func (p *Parser) skipStatement() {
	p.skipToTopLevel(lexer.TokSemicolon)
	if p.cur().Kind == lexer.TokSemicolon {
		p.advance()
	}
}

// skipToTopLevel advances until one of the stop kinds appears outside
// any nested parens, brackets, or braces. The stop token itself is not
// consumed, and neither is an unbalanced close brace.
func (p *Parser) skipToTopLevel(stops ...lexer.TokenKind) {
	depth := 0
	for !p.eof() {
		tok := p.cur()
		if depth == 0 {
			for _, stop := range stops {
				if tok.Kind == stop {
					return
				}
			}
			if tok.Kind == lexer.TokRBrace {
				return
			}
		}
		switch tok.Kind {
		case lexer.TokLParen, lexer.TokLBracket, lexer.TokLBrace:
			depth++
		case lexer.TokRParen, lexer.TokRBracket, lexer.TokRBrace:
			depth--
		}
		p.advance()
	}
}

func (p *Parser) lastOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Start + len(last.Text)
}
