/*
File    : gridplot/parser/parser.go

Package parser implements the recursive-descent predictive parser of
spec.md §4.2. The original design (ported from original_source/Syntax.h)
drives a stack of partially built AST fragments with a table of
per-step transform functions; the design note in spec.md §9 recommends
the simpler, equivalent rewrite this package uses instead: one routine
per grammar nonterminal, consuming the lexer directly. The FIRST-set
"probe" tables stay conceptually alive as the expect/startsStatement helpers
below so that error reporting remains uniform across productions, per
that same design note.

Grounded in the shape of the teacher's parser.Parser (a CurrToken/
NextToken lookahead pair driving a family of per-construct parse
methods) — but a plain recursive descent, not the teacher's Pratt
(precedence-table) parser, since spec.md's grammar fixes precedence
statically (additive < multiplicative < unary < `**`) rather than
needing a runtime-configurable precedence table.
*/
package parser

import (
	"strconv"

	"github.com/nilroot/gridplot/ast"
	"github.com/nilroot/gridplot/diag"
	"github.com/nilroot/gridplot/lexer"
	"github.com/nilroot/gridplot/symtab"
	"github.com/nilroot/gridplot/token"
)

// parseFloat converts a Literal token's lexeme (an optional leading
// sign glommed on by the lexer, digits, optional fractional part) to a
// float64. The lexer only ever emits lexemes matching this grammar, so
// a parse failure here would indicate a lexer defect, not bad input.
func parseFloat(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}

// Parser holds one-token lookahead over a Lexer plus the compile-time
// symbol table used to resolve identifiers as they're parsed (spec.md
// §4.2 "Symbol-table interaction during parse").
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	syms *symtab.Table
}

// New creates a Parser over src with a fresh symbol table seeded with
// the eight built-ins.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src), syms: symtab.New()}
	p.cur = p.lex.Next()
	return p
}

// Symbols returns the parser's compile-time symbol table itself, not a
// copy. Drivers pass it to eval.New so the evaluator shares the same
// static seed (spec.md §3: "the evaluator maintains an identical static
// table") without reseeding by hand.
func (p *Parser) Symbols() *symtab.Table {
	return p.syms
}

func (p *Parser) advance() {
	p.cur = p.lex.Next()
}

// expect consumes the current token if it matches kind, or raises
// SyntaxError(TokenMismatch). This is the "accept" half of spec.md
// §4.2's probe/accept pair for a terminal symbol.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, diag.NewTokenMismatch(p.cur, kind)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// Parse consumes the whole token stream and returns the Program root,
// or the first SyntaxError encountered (spec.md §7: parsing is fatal
// and aborts on the first syntax error).
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		if p.cur.Kind == token.None {
			return prog, nil
		}
		if !startsStatement(p.cur.Kind) {
			return nil, diag.NewProbeFailure(p.cur)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
}

// startsStatement is Statement's FIRST set (spec.md §3 Statement ->
// one of OriginStmt | ScaleStmt | RotStmt | ForStmt | SizeStmt | ColorStmt).
func startsStatement(k token.Kind) bool {
	switch k {
	case token.Origin, token.Scale, token.Rot, token.For, token.Size, token.Color:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Origin:
		return p.parseOriginStmt()
	case token.Scale:
		return p.parseScaleStmt()
	case token.Rot:
		return p.parseRotStmt()
	case token.For:
		return p.parseForStmt()
	case token.Size:
		return p.parseSizeStmt()
	case token.Color:
		return p.parseColorStmt()
	default:
		return nil, diag.NewProbeFailure(p.cur)
	}
}

func (p *Parser) parseOriginStmt() (*ast.OriginStmt, error) {
	if _, err := p.expect(token.Origin); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Is); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	y, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.OriginStmt{X: x, Y: y}, nil
}

func (p *Parser) parseScaleStmt() (*ast.ScaleStmt, error) {
	if _, err := p.expect(token.Scale); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Is); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	y, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ScaleStmt{X: x, Y: y}, nil
}

func (p *Parser) parseRotStmt() (*ast.RotStmt, error) {
	if _, err := p.expect(token.Rot); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Is); err != nil {
		return nil, err
	}
	radians, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.RotStmt{Radians: radians}, nil
}

func (p *Parser) parseSizeStmt() (*ast.SizeStmt, error) {
	if _, err := p.expect(token.Size); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Is); err != nil {
		return nil, err
	}
	pixels, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.SizeStmt{Pixels: pixels}, nil
}

func (p *Parser) parseColorStmt() (*ast.ColorStmt, error) {
	if _, err := p.expect(token.Color); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Is); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}
	r, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	g, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	b, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ColorStmt{R: r, G: g, B: b}, nil
}

// parseForStmt implements spec.md §3's ForStmt scoping invariant: the
// loop identifier is inserted into the symbol table only across the
// DRAW clause's two Expression children, and removed immediately after
// — visible in (x, y), invisible in from/to/step.
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	if _, err := p.expect(token.For); err != nil {
		return nil, err
	}
	identTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := identTok.Lexeme
	if p.syms.Exists(name) {
		return nil, diag.NewDuplicateSymbol(identTok, name)
	}

	if _, err := p.expect(token.From); err != nil {
		return nil, err
	}
	from, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.To); err != nil {
		return nil, err
	}
	to, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Step); err != nil {
		return nil, err
	}
	step, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Draw); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}

	p.syms.Insert(name, 0)
	x, err := p.parseExpression()
	if err != nil {
		p.syms.Remove(name)
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		p.syms.Remove(name)
		return nil, err
	}
	y, err := p.parseExpression()
	p.syms.Remove(name)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ForStmt{Ident: name, From: from, To: to, Step: step, X: x, Y: y}, nil
}

// --- Expression grammar: additive < multiplicative < unary < power < atom ---

// parseExpression implements Expression := Term (('+'|'-') Term)*,
// folding the right-recursive Expression2 tail into a loop — the
// standard equivalent translation the design note in spec.md §9
// recommends. Left-associative by construction.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Plus || p.cur.Kind == token.Minus {
		op := byte('+')
		if p.cur.Kind == token.Minus {
			op = '-'
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm implements Term := Factor (('*'|'/') Factor)*.
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Multiply || p.cur.Kind == token.Divide {
		op := byte('*')
		if p.cur.Kind == token.Divide {
			op = '/'
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor implements Factor := ('+'|'-') Factor | Component.
func (p *Parser) parseFactor() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Plus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Negative: false, Operand: operand}, nil
	case token.Minus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Negative: true, Operand: operand}, nil
	default:
		return p.parseComponent()
	}
}

// parseComponent implements Component := Atom ('**' Component)?,
// right-recursive so that `**` binds right-associatively.
func (p *Parser) parseComponent() (ast.Expression, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.Power {
		return &ast.Power{Base: base, Exponent: nil}, nil
	}
	p.advance()
	exponent, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	return &ast.Power{Base: base, Exponent: exponent}, nil
}

// parseAtom implements Atom := Number | Id | Id '(' Expression ')' | '(' Expression ')'.
// The identifier case consults the symbol table (spec.md §4.2): a
// Function entry selects the call production, any other existing
// entry selects the bare-identifier production, and a name absent
// from the table entirely is a SyntaxError(UnknownSymbol) raised here
// at parse time rather than deferred to evaluation.
func (p *Parser) parseAtom() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Literal:
		lit := p.cur
		p.advance()
		value, err := parseFloat(lit.Lexeme)
		if err != nil {
			return nil, diag.NewTokenMismatch(lit, token.Literal)
		}
		return &ast.Literal{Value: value}, nil

	case token.Identifier:
		idTok := p.cur
		name := idTok.Lexeme
		if !p.syms.Exists(name) {
			return nil, diag.NewUnknownSymbol(idTok, name)
		}
		p.advance()
		if p.syms.IsFunction(name) {
			if _, err := p.expect(token.LeftBracket); err != nil {
				return nil, err
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightBracket); err != nil {
				return nil, err
			}
			return &ast.Call{Name: name, Arg: arg}, nil
		}
		return &ast.Ident{Name: name}, nil

	case token.LeftBracket:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightBracket); err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner}, nil

	default:
		return nil, diag.NewProbeFailure(p.cur)
	}
}
