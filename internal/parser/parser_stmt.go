package parser

import "secrecy/internal/ast"

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(LEFT_BRACE, "'{'")
	var stmts []ast.Stmt

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
	}

	end := p.consume(RIGHT_BRACE, "'}'")
	return &ast.Block{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Stmts:  stmts,
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.check(COMMENT), p.check(DOC_COMMENT), p.check(BLOCK_COMMENT):
		token := p.advance()
		return &ast.Comment{Pos: p.makePos(token), EndPos: p.makeEndPos(token), Text: token.Lexeme}
	case p.check(IF):
		return p.parseIfStmt()
	case p.check(WHILE):
		return p.parseWhileStmt()
	case p.check(RETURN):
		return p.parseReturnStmt()
	case p.check(AWAIT):
		return p.parseAwaitStmt()
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.consume(IF, "'if'")
	p.consume(LEFT_PAREN, "'('")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "')'")

	then := p.parseBlock()
	if then == nil {
		return nil
	}

	end := then.EndPos
	var elseBlock *ast.Block
	if p.match(ELSE) {
		elseBlock = p.parseBlock()
		if elseBlock != nil {
			end = elseBlock.EndPos
		}
	}

	return &ast.IfStmt{
		Pos:    p.makePos(start),
		EndPos: end,
		Cond:   cond,
		Then:   then,
		Else:   elseBlock,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.consume(WHILE, "'while'")
	p.consume(LEFT_PAREN, "'('")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "')'")

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: body.EndPos,
		Cond:   cond,
		Body:   body,
	}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.consume(RETURN, "'return'")
	var value ast.Expr
	if !p.check(SEMICOLON) {
		value = p.parseExpr()
	}
	end := p.consume(SEMICOLON, "';'")

	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Value:  value,
	}
}

// parseAwaitStmt parses "await f?;" — suspends on future f (spec.md §4.3).
func (p *Parser) parseAwaitStmt() *ast.AwaitStmt {
	start := p.consume(AWAIT, "'await'")
	future, ok := p.consumeIdent("future variable name")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(QUESTION, "'?'")
	end := p.consume(SEMICOLON, "';'")

	return &ast.AwaitStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Future: future,
	}
}

// parseSimpleStmt parses whichever of var-decl, assignment, or bare
// expression statement the token stream resolves to. A leading annotation
// or "Type name" pair commits to a variable declaration; anything else is
// parsed as an expression, then checked for a trailing ":=".
func (p *Parser) parseSimpleStmt() ast.Stmt {
	if p.check(AT) || p.check(VOID) || (p.check(IDENTIFIER) && p.peekAt(1).Type == IDENTIFIER) {
		return p.parseVarDeclStmt()
	}

	expr := p.parseExpr()
	if _, bad := expr.(*ast.BadExpr); bad {
		p.synchronize()
		return nil
	}

	if p.match(COLON_EQUAL) {
		value := p.parseExpr()
		end := p.consume(SEMICOLON, "';'")
		return &ast.AssignStmt{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(end),
			Target: expr,
			Value:  value,
		}
	}

	end := p.consume(SEMICOLON, "';'")
	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(end),
		Expr:   expr,
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	start := p.peek()
	var annotation *ast.Annotation
	if p.check(AT) {
		annotation = p.parseAnnotation()
	}

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	name, ok := p.consumeIdent("variable name")
	if !ok {
		return nil
	}

	p.consume(EQUAL, "'='")
	value := p.parseExpr()
	end := p.consume(SEMICOLON, "';'")

	return &ast.VarDeclStmt{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Annotation: annotation,
		Type:       typ,
		Name:       name,
		Value:      value,
	}
}
