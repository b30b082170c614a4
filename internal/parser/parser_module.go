package parser

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
)

// parseLatticeDecl parses "lattice { label A; label B; A <= B; }" (spec.md
// §3). Label declarations and edges may be interleaved in any order.
func (p *Parser) parseLatticeDecl() *ast.LatticeDecl {
	start := p.consume(LATTICE, "'lattice'")
	p.consume(LEFT_BRACE, "'{'")

	var labels []ast.Ident
	var edges []*ast.LatticeEdge

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if p.check(COMMENT) || p.check(DOC_COMMENT) || p.check(BLOCK_COMMENT) {
			p.advance()
			continue
		}

		if p.match(LABEL) {
			name, ok := p.consumeIdent("label name")
			if ok {
				labels = append(labels, name)
			}
			p.consume(SEMICOLON, "';'")
			continue
		}

		if p.check(IDENTIFIER) {
			lower, ok := p.consumeIdent("label name")
			if !ok {
				p.synchronize()
				continue
			}
			p.consume(LESS_EQUAL, "'<='")
			upper, ok := p.consumeIdent("label name")
			if !ok {
				p.synchronize()
				continue
			}
			semi := p.consume(SEMICOLON, "';'")
			edges = append(edges, &ast.LatticeEdge{
				Pos:    lower.Pos,
				EndPos: p.makeEndPos(semi),
				Lower:  lower,
				Upper:  upper,
			})
			continue
		}

		p.report(errors.InvalidLatticeSyntax("expected label declaration or lattice edge", p.makePos(p.peek())))
		p.synchronize()
	}

	end := p.consume(RIGHT_BRACE, "'}'")
	return &ast.LatticeDecl{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Labels: labels,
		Edges:  edges,
	}
}

// parseModule parses "module Name { ...interfaces and classes... }".
func (p *Parser) parseModule() *ast.Module {
	start := p.consume(MODULE, "'module'")
	name, ok := p.consumeIdent("module name")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(LEFT_BRACE, "'{'")

	var interfaces []*ast.InterfaceDecl
	var classes []*ast.ClassDecl

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		switch {
		case p.check(COMMENT), p.check(DOC_COMMENT), p.check(BLOCK_COMMENT):
			p.advance()
		case p.check(INTERFACE):
			if iface := p.parseInterfaceDecl(); iface != nil {
				interfaces = append(interfaces, iface)
			}
		case p.check(CLASS):
			if cls := p.parseClassDecl(); cls != nil {
				classes = append(classes, cls)
			}
		default:
			p.unexpectedToken()
			p.synchronize()
		}
	}

	end := p.consume(RIGHT_BRACE, "'}'")
	return &ast.Module{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		Interfaces: interfaces,
		Classes:    classes,
	}
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.consume(INTERFACE, "'interface'")
	name, ok := p.consumeIdent("interface name")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(LEFT_BRACE, "'{'")

	var methods []*ast.MethodSig
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if p.check(COMMENT) || p.check(DOC_COMMENT) || p.check(BLOCK_COMMENT) {
			p.advance()
			continue
		}
		if sig := p.parseMethodSig(); sig != nil {
			methods = append(methods, sig)
		} else {
			p.synchronize()
		}
	}

	end := p.consume(RIGHT_BRACE, "'}'")
	return &ast.InterfaceDecl{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Name:    name,
		Methods: methods,
	}
}

// parseMethodSig parses "[@Secrecy(L)] ReturnType name(params);" — no body.
func (p *Parser) parseMethodSig() *ast.MethodSig {
	start := p.peek()
	var annotation *ast.Annotation
	if p.check(AT) {
		annotation = p.parseAnnotation()
	}

	ret := p.parseType()
	if ret == nil {
		return nil
	}

	name, ok := p.consumeIdent("method name")
	if !ok {
		return nil
	}

	params := p.parseParamList()
	end := p.consume(SEMICOLON, "';'")

	return &ast.MethodSig{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Annotation: annotation,
		Return:     ret,
		Name:       name,
		Params:     params,
	}
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	start := p.consume(CLASS, "'class'")
	name, ok := p.consumeIdent("class name")
	if !ok {
		p.synchronize()
		return nil
	}

	var implements []ast.Ident
	if p.match(IMPLEMENTS) {
		implements = p.parseIdentifierList()
	}

	p.consume(LEFT_BRACE, "'{'")
	var items []ast.ClassItem

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if item := p.parseClassItem(); item != nil {
			items = append(items, item)
		} else {
			p.synchronize()
		}
	}

	end := p.consume(RIGHT_BRACE, "'}'")
	return &ast.ClassDecl{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		Implements: implements,
		Items:      items,
	}
}

// parseClassItem parses a field ("[@Secrecy(L)] T name;") or a method
// ("[@Secrecy(L)] T name(params) { ... }"); both share a type+name prefix,
// distinguished by whether a parameter list follows the name.
func (p *Parser) parseClassItem() ast.ClassItem {
	if p.check(COMMENT) || p.check(DOC_COMMENT) || p.check(BLOCK_COMMENT) {
		token := p.advance()
		return &ast.Comment{Pos: p.makePos(token), EndPos: p.makeEndPos(token), Text: token.Lexeme}
	}

	start := p.peek()
	var annotation *ast.Annotation
	if p.check(AT) {
		annotation = p.parseAnnotation()
	}

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	name, ok := p.consumeIdent("field or method name")
	if !ok {
		return nil
	}

	if p.check(LEFT_PAREN) {
		params := p.parseParamList()
		body := p.parseBlock()
		if body == nil {
			return nil
		}
		return &ast.MethodDecl{
			Pos:        p.makePos(start),
			EndPos:     body.EndPos,
			Annotation: annotation,
			Return:     typ,
			Name:       name,
			Params:     params,
			Body:       body,
		}
	}

	end := p.consume(SEMICOLON, "';'")
	return &ast.FieldDecl{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Annotation: annotation,
		Type:       typ,
		Name:       name,
	}
}

func (p *Parser) parseAnnotation() *ast.Annotation {
	at := p.consume(AT, "'@'")
	name, ok := p.consumeIdent("annotation name")
	if !ok {
		p.report(errors.InvalidAnnotationSyntax(p.makePos(at)))
		return nil
	}
	p.consume(LEFT_PAREN, "'('")
	value, ok := p.consumeIdent("label name in annotation")
	if !ok {
		p.report(errors.InvalidAnnotationSyntax(p.makePos(at)))
		return nil
	}
	end := p.consume(RIGHT_PAREN, "')'")

	return &ast.Annotation{
		Pos:    p.makePos(at),
		EndPos: p.makeEndPos(end),
		Name:   name.Value,
		Value:  value,
	}
}

// parseType parses a (possibly generic) type use, e.g. "Int" or "Fut<Int>".
func (p *Parser) parseType() *ast.Type {
	var tok Token
	switch {
	case p.check(VOID):
		tok = p.advance()
	case p.check(IDENTIFIER):
		tok = p.advance()
	default:
		p.unexpectedToken()
		return nil
	}

	name := p.makeIdent(tok)
	typ := &ast.Type{
		Pos:    name.Pos,
		EndPos: name.EndPos,
		Name:   name,
	}

	if p.match(LESS) {
		for {
			inner := p.parseType()
			if inner == nil {
				break
			}
			typ.Generics = append(typ.Generics, inner)
			if !p.match(COMMA) {
				break
			}
		}
		end := p.consume(GREATER, "'>'")
		typ.EndPos = p.makeEndPos(end)
	}

	return typ
}

func (p *Parser) parseParamList() []*ast.Param {
	p.consume(LEFT_PAREN, "'('")
	var params []*ast.Param

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		var annotation *ast.Annotation
		if p.check(AT) {
			annotation = p.parseAnnotation()
		}
		typ := p.parseType()
		if typ == nil {
			break
		}
		name, ok := p.consumeIdent("parameter name")
		if !ok {
			break
		}

		params = append(params, &ast.Param{
			Pos:        typ.Pos,
			EndPos:     name.EndPos,
			Annotation: annotation,
			Type:       typ,
			Name:       name,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "')'")
	return params
}
