package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilroot/gridplot/ast"
	"github.com/nilroot/gridplot/diag"
)

func TestParse_AllStatementKinds(t *testing.T) {
	src := `
		ORIGIN IS (0, 0);
		SCALE IS (1, 1);
		ROT IS 0;
		SIZE IS 1;
		COLOR IS (255, 0, 0);
		FOR T FROM 0 TO PI STEP 0.1 DRAW (COS(T), SIN(T));
	`
	p := New(src)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prog.Statements, 6)

	assert.IsType(t, &ast.OriginStmt{}, prog.Statements[0])
	assert.IsType(t, &ast.ScaleStmt{}, prog.Statements[1])
	assert.IsType(t, &ast.RotStmt{}, prog.Statements[2])
	assert.IsType(t, &ast.SizeStmt{}, prog.Statements[3])
	assert.IsType(t, &ast.ColorStmt{}, prog.Statements[4])
	assert.IsType(t, &ast.ForStmt{}, prog.Statements[5])
}

func TestParse_OperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 ** 2 should parse as 1 + (2 * (3 ** 2))
	p := New("ROT IS 1 + 2 * 3 ** 2;")
	prog, err := p.Parse()
	require.NoError(t, err)

	rot := prog.Statements[0].(*ast.RotStmt)
	top, ok := rot.Radians.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, byte('+'), top.Op)
	assert.IsType(t, &ast.Power{}, top.Left)

	right, ok := top.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, byte('*'), right.Op)
	power, ok := right.Right.(*ast.Power)
	require.True(t, ok)
	assert.NotNil(t, power.Exponent)
}

func TestParse_PowerIsRightAssociative(t *testing.T) {
	// 2 ** 3 ** 2 should parse as 2 ** (3 ** 2)
	p := New("ROT IS 2 ** 3 ** 2;")
	prog, err := p.Parse()
	require.NoError(t, err)

	rot := prog.Statements[0].(*ast.RotStmt)
	outer, ok := rot.Radians.(*ast.Power)
	require.True(t, ok)
	require.NotNil(t, outer.Exponent)
	inner, ok := outer.Exponent.(*ast.Power)
	require.True(t, ok)
	assert.NotNil(t, inner.Exponent)
}

func TestParse_ForStmt_LoopVariableScopedToDrawClause(t *testing.T) {
	// T must not be visible in FROM/TO/STEP, only in the DRAW clause.
	p := New("FOR T FROM 0 TO 1 STEP T DRAW (T, T);")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.UnknownSymbol, synErr.Kind)
}

func TestParse_ForStmt_LoopVariableNotVisibleAfterDraw(t *testing.T) {
	p := New("FOR T FROM 0 TO 1 STEP 0.1 DRAW (T, T); ROT IS T;")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.UnknownSymbol, synErr.Kind)
}

func TestParse_DuplicateLoopVariable(t *testing.T) {
	p := New("FOR PI FROM 0 TO 1 STEP 1 DRAW (PI, PI);")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.DuplicateSymbol, synErr.Kind)
}

func TestParse_UnknownIdentifier(t *testing.T) {
	p := New("ROT IS NOPE;")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.UnknownSymbol, synErr.Kind)
}

func TestParse_TokenMismatch(t *testing.T) {
	p := New("ORIGIN IS 0, 0);")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.TokenMismatch, synErr.Kind)
}

func TestParse_ProbeFailure(t *testing.T) {
	p := New("123;")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.ProbeFailure, synErr.Kind)
}

func TestParse_FunctionCallRequiresParens(t *testing.T) {
	p := New("ROT IS SIN 1;")
	_, err := p.Parse()
	require.Error(t, err)
	var synErr *diag.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, diag.TokenMismatch, synErr.Kind)
}

func TestProgram_Dump(t *testing.T) {
	p := New("ROT IS 1 + 2;")
	prog, err := p.Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	prog.Dump(&buf)
	assert.Contains(t, buf.String(), "RotStmt")
	assert.Contains(t, buf.String(), "BinOp(+)")
}
