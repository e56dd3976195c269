/*
File    : gridplot/eval/eval.go

Package eval implements the tree-walking evaluator of spec.md §4.3: it
walks the ast.Program built by parser, resolving identifiers and
function calls through symtab, and reporting every state change and
plotted point to an injected canvas.Canvas. Grounded in the shape of
the teacher's eval.Evaluator (a single Eval(node) entry point switching
on node's concrete type, threading a Scope through recursive calls) —
adapted here to this grammar's fixed node set, so the switch is over
ast's few concrete Expression/Statement types rather than the
teacher's much larger node catalogue.
*/
package eval

import (
	"fmt"
	"math"

	"github.com/nilroot/gridplot/ast"
	"github.com/nilroot/gridplot/canvas"
	"github.com/nilroot/gridplot/diag"
	"github.com/nilroot/gridplot/symtab"
)

// Evaluator walks a parsed Program against a live symbol table and
// canvas. A fresh Evaluator should share the exact Table the parser
// used (via Parser.Symbols) so that the dynamic loop-variable overlay
// the parser validated at compile time matches what evaluation
// actually binds at run time.
type Evaluator struct {
	syms   *symtab.Table
	target canvas.Canvas
}

// New returns an Evaluator over syms and target. syms should be the
// same Table the parser resolved identifiers against.
func New(syms *symtab.Table, target canvas.Canvas) *Evaluator {
	return &Evaluator{syms: syms, target: target}
}

// Run evaluates every statement of prog in order, stopping and
// returning the first RuntimeError encountered (spec.md §7: evaluation
// is fatal and aborts on the first runtime error).
func (e *Evaluator) Run(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.OriginStmt:
		x, err := e.newExpression(s.X)
		if err != nil {
			return err
		}
		y, err := e.newExpression(s.Y)
		if err != nil {
			return err
		}
		e.target.SetOrigin(x, y)
		return nil

	case *ast.ScaleStmt:
		x, err := e.newExpression(s.X)
		if err != nil {
			return err
		}
		y, err := e.newExpression(s.Y)
		if err != nil {
			return err
		}
		e.target.SetScale(x, y)
		return nil

	case *ast.RotStmt:
		radians, err := e.newExpression(s.Radians)
		if err != nil {
			return err
		}
		e.target.SetRotation(radians)
		return nil

	case *ast.SizeStmt:
		pixels, err := e.newExpression(s.Pixels)
		if err != nil {
			return err
		}
		if !isFinite(pixels) {
			return diag.NewBadArithmetic("SIZE", pixels)
		}
		e.target.SetPointSize(int(math.Trunc(pixels)))
		return nil

	case *ast.ColorStmt:
		r, err := e.newExpression(s.R)
		if err != nil {
			return err
		}
		g, err := e.newExpression(s.G)
		if err != nil {
			return err
		}
		b, err := e.newExpression(s.B)
		if err != nil {
			return err
		}
		if !isFinite(r) || !isFinite(g) || !isFinite(b) {
			return diag.NewBadArithmetic("COLOR", math.NaN())
		}
		e.target.SetPointColor(clampByte(r), clampByte(g), clampByte(b))
		return nil

	case *ast.ForStmt:
		return e.execFor(s)

	default:
		return diag.NewInvalidRuleID("execStatement")
	}
}

// clampByte truncates toward zero then clamps to [0, 255], the order
// spec.md §4.3 specifies for ColorStmt components.
func clampByte(v float64) int {
	n := int(math.Trunc(v))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// execFor implements ForStmt: evaluate from/to/step once (outside the
// loop variable's scope), normalize direction so iteration always
// advances from the smaller to the larger bound (spec.md §4.3's
// "swap and negate" rule for a from > to / positive-step mismatch),
// then bind Ident across each evaluation of (X, Y).
func (e *Evaluator) execFor(s *ast.ForStmt) error {
	from, err := e.newExpression(s.From)
	if err != nil {
		return err
	}
	to, err := e.newExpression(s.To)
	if err != nil {
		return err
	}
	step, err := e.newExpression(s.Step)
	if err != nil {
		return err
	}

	if from > to {
		from, to = to, from
		step = -step
	}
	if step == 0 {
		return nil
	}
	if step < 0 {
		step = -step
	}

	// Indexed rather than accumulated, per spec.md §4.3's "v = f + i*s"
	// formulation, so float error never compounds across iterations.
	for i := 0; ; i++ {
		v := from + float64(i)*step
		if v > to {
			break
		}
		e.syms.Insert(s.Ident, v)
		x, err := e.evalExpression(s.X)
		if err != nil {
			e.syms.Remove(s.Ident)
			return err
		}
		y, err := e.evalExpression(s.Y)
		e.syms.Remove(s.Ident)
		if err != nil {
			return err
		}
		e.target.DrawPoint(x, y)
	}
	return nil
}

// newExpression evaluates expr as an independent expression frame
// (spec.md §4.3): the dynamic symbol overlay is cleared first so no
// loop variable from a previous frame can leak into this one. Used for
// every expression outside a ForStmt's own DRAW clause.
func (e *Evaluator) newExpression(expr ast.Expression) (float64, error) {
	e.syms.ClearDynamic()
	return e.evalExpression(expr)
}

func (e *Evaluator) evalExpression(expr ast.Expression) (float64, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Ident:
		v, ok := e.syms.LookupValue(n.Name)
		if !ok {
			return 0, diag.NewUnknownReference(n.Name)
		}
		return v, nil

	case *ast.Call:
		fn, ok := e.syms.LookupFunction(n.Name)
		if !ok {
			return 0, diag.NewUnknownReference(n.Name)
		}
		arg, err := e.evalExpression(n.Arg)
		if err != nil {
			return 0, err
		}
		return fn(arg), nil

	case *ast.Paren:
		return e.evalExpression(n.Inner)

	case *ast.Unary:
		v, err := e.evalExpression(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Negative {
			return -v, nil
		}
		return v, nil

	case *ast.Power:
		base, err := e.evalExpression(n.Base)
		if err != nil {
			return 0, err
		}
		if n.Exponent == nil {
			return base, nil
		}
		exp, err := e.evalExpression(n.Exponent)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil

	case *ast.BinOp:
		left, err := e.evalExpression(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.evalExpression(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			return left / right, nil
		default:
			return 0, diag.NewInvalidRuleID(fmt.Sprintf("BinOp(%c)", n.Op))
		}

	default:
		return 0, diag.NewInvalidRuleID("evalExpression")
	}
}
