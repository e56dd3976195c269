/*
File    : gridplot/diag/diag.go

Package diag implements the error taxonomy of spec.md §7 and an
injectable message sink, following the design note in spec.md §9:
"Diagnostics should be passed to an injectable reporter rather than a
process-wide function; this isolates tests from the host I/O." The
teacher reaches for github.com/fatih/color to put real visual weight
behind error/result/info output instead of plain fmt.Fprintf; Reporter
keeps that same coloring convention.
*/
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/nilroot/gridplot/token"
)

// SyntaxKind enumerates the SyntaxError subkinds of spec.md §7.
type SyntaxKind int

const (
	TokenMismatch SyntaxKind = iota
	ProbeFailure
	DuplicateSymbol
	UnknownSymbol
)

func (k SyntaxKind) String() string {
	switch k {
	case TokenMismatch:
		return "token mismatch"
	case ProbeFailure:
		return "probe failure"
	case DuplicateSymbol:
		return "duplicate symbol"
	case UnknownSymbol:
		return "unknown symbol"
	default:
		return "syntax error"
	}
}

// SyntaxError is fatal: parsing aborts immediately on the first one
// (spec.md §7). It always carries the offending token's position.
type SyntaxError struct {
	Kind SyntaxKind
	Pos  token.Position
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Msg)
}

// NewTokenMismatch builds a SyntaxError(TokenMismatch) for an expected
// token kind that didn't match what the parser found.
func NewTokenMismatch(got token.Token, expected token.Kind) *SyntaxError {
	return &SyntaxError{
		Kind: TokenMismatch,
		Pos:  got.Pos,
		Msg: fmt.Sprintf(
			"expected token type '%s' but token '%s' of type '%s' is present",
			expected, got.Lexeme, got.Kind,
		),
	}
}

// NewProbeFailure builds a SyntaxError(ProbeFailure) for a token that
// matched no production's FIRST set.
func NewProbeFailure(got token.Token) *SyntaxError {
	return &SyntaxError{
		Kind: ProbeFailure,
		Pos:  got.Pos,
		Msg: fmt.Sprintf(
			"syntax rule probe failed: unexpected token '%s' of type '%s' is present",
			got.Lexeme, got.Kind,
		),
	}
}

// NewDuplicateSymbol builds a SyntaxError(DuplicateSymbol) for an
// attempt to introduce a name that already exists.
func NewDuplicateSymbol(at token.Token, name string) *SyntaxError {
	return &SyntaxError{
		Kind: DuplicateSymbol,
		Pos:  at.Pos,
		Msg:  fmt.Sprintf("redefine symbol '%s'", name),
	}
}

// NewUnknownSymbol builds a SyntaxError(UnknownSymbol) for an
// identifier that is not present in the symbol table at parse time.
func NewUnknownSymbol(at token.Token, name string) *SyntaxError {
	return &SyntaxError{
		Kind: UnknownSymbol,
		Pos:  at.Pos,
		Msg:  fmt.Sprintf("unknown reference to symbol '%s'", name),
	}
}

// RuntimeKind enumerates the RuntimeError subkinds of spec.md §7.
type RuntimeKind int

const (
	UnknownReference RuntimeKind = iota
	InvalidRuleID
	BadArithmetic
)

// RuntimeError is fatal: evaluation aborts immediately on the first
// one. Unlike SyntaxError it has no reliable source position — it
// signals a failure that escaped parse-time checking.
type RuntimeError struct {
	Kind RuntimeKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Msg)
}

// NewUnknownReference builds a RuntimeError(UnknownReference) for an
// identifier that escaped parse-time checks.
func NewUnknownReference(name string) *RuntimeError {
	return &RuntimeError{Kind: UnknownReference, Msg: fmt.Sprintf("unknown reference to symbol '%s'", name)}
}

// NewInvalidRuleID builds a RuntimeError(InvalidRuleID) for a corrupt
// AST node that should be unreachable by construction.
func NewInvalidRuleID(where string) *RuntimeError {
	return &RuntimeError{Kind: InvalidRuleID, Msg: fmt.Sprintf("invalid AST node in %s", where)}
}

// NewBadArithmetic builds a RuntimeError(BadArithmetic). Most
// arithmetic lets IEEE-754 semantics propagate silently per spec.md
// §7, but a handful of statement evaluations (SizeStmt, ColorStmt)
// must reject a non-finite result rather than truncate/clamp it into
// a meaningless integer, per the negative scenario in spec.md §8
// ("SIZE IS 1/0;" must produce a RuntimeError).
func NewBadArithmetic(context string, value float64) *RuntimeError {
	return &RuntimeError{Kind: BadArithmetic, Msg: fmt.Sprintf("%s produced a non-finite value (%v)", context, value)}
}

// Reporter is the injectable message sink every diagnostic flows
// through instead of a process-wide print function, so that tests can
// capture output and production code can route it to any stream.
type Reporter struct {
	out io.Writer

	errorColor  *color.Color
	infoColor   *color.Color
	resultColor *color.Color
}

// NewReporter returns a Reporter writing to out, with the teacher's
// palette of roles: red for errors, cyan for informational text,
// yellow for results.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:         out,
		errorColor:  color.New(color.FgRed),
		infoColor:   color.New(color.FgCyan),
		resultColor: color.New(color.FgYellow),
	}
}

// ReportError prints err in the error color. SyntaxError and
// RuntimeError already format with "line,col: error: ..." or
// "runtime error: ..." per spec.md §6; anything else (IOError, an
// internal failure) prints free-form, as spec.md §6 allows.
func (r *Reporter) ReportError(err error) {
	r.errorColor.Fprintf(r.out, "%s\n", err.Error())
}

// Info prints a free-form informational line (e.g. the REPL banner)
// in the informational color.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.infoColor.Fprintf(r.out, format+"\n", args...)
}

// Result prints a free-form result line in the result color.
func (r *Reporter) Result(format string, args ...interface{}) {
	r.resultColor.Fprintf(r.out, format+"\n", args...)
}

// Raw writes s unstyled, for output that should not inherit a color
// run.
func (r *Reporter) Raw(s string) {
	fmt.Fprint(r.out, s)
}
