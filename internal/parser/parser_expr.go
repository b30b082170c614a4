package parser

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
)

// binaryPrecedence mirrors the source language's operator table: logical
// connectives bind loosest, comparisons next, then additive, then
// multiplicative (spec.md §4.4).
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parseBinary(prec + 1)

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(MINUS, BANG) {
		op := p.previous()
		value := p.parseUnary()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix handles field access ("recv.field"), synchronous calls
// ("recv.m(args)"), and asynchronous calls ("recv!m(args)") — spec.md §4.4.
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.match(DOT):
			field, ok := p.consumeIdent("field or method name")
			if !ok {
				return expr
			}
			if p.check(LEFT_PAREN) {
				args := p.parseArgList()
				expr = &ast.CallExpr{
					Pos:      expr.NodePos(),
					EndPos:   p.makeEndPos(p.previous()),
					Receiver: expr,
					Method:   field,
					Args:     args,
					Async:    false,
				}
			} else {
				expr = &ast.FieldAccessExpr{
					Pos:    expr.NodePos(),
					EndPos: field.EndPos,
					Target: expr,
					Field:  field.Value,
				}
			}

		case p.match(BANG):
			method, ok := p.consumeIdent("method name")
			if !ok {
				return expr
			}
			args := p.parseArgList()
			expr = &ast.CallExpr{
				Pos:      expr.NodePos(),
				EndPos:   p.makeEndPos(p.previous()),
				Receiver: expr,
				Method:   method,
				Args:     args,
				Async:    true,
			}

		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	p.consume(LEFT_PAREN, "'('")
	var args []ast.Expr

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		args = append(args, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "')'")
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	if p.match(NUMBER, STRING, TRUE, FALSE) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme,
		}
	}

	if p.check(GET) {
		start := p.advance()
		future, ok := p.consumeIdent("future variable name")
		if !ok {
			p.report(errors.InvalidGetTarget(p.makePos(start)))
			return p.makeBadExpr(start, "invalid 'get' expression")
		}
		return &ast.GetExpr{
			Pos:    p.makePos(start),
			EndPos: future.EndPos,
			Future: future,
		}
	}

	if p.match(LEFT_PAREN) {
		l := p.previous()
		inner := p.parseExpr()
		r := p.consume(RIGHT_PAREN, "')'")
		return &ast.ParenExpr{
			Pos:    p.makePos(l),
			EndPos: p.makeEndPos(r),
			Value:  inner,
		}
	}

	if p.check(IDENTIFIER) {
		tok := p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	}

	tok := p.peek()
	p.unexpectedToken()
	bad := p.makeBadExpr(tok, "unexpected token in expression: "+tok.Lexeme)
	p.advance()
	return bad
}

// makeBadExpr builds a placeholder node for a production that failed to
// parse; callers are responsible for reporting the specific diagnostic
// beforehand.
func (p *Parser) makeBadExpr(tok Token, message string) *ast.BadExpr {
	return &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Message: message,
		},
	}
}
