/*
File    : gridplot/symtab/symtab.go

Package symtab implements the symbol-table discipline spec.md §3 and
§4.3 describe: a flat sequence of named entries (constant, builtin
function, or loop variable), compared case-insensitively, with a
static seed of eight builtins and a LIFO dynamic overlay scoped to a
single FOR statement's DRAW clause.

This mirrors the role the teacher's scope.Scope chain plays for
variable lookup, flattened to the single-level static/dynamic split
spec.md actually calls for — there is no nested block scoping in this
language, only one dynamic overlay at a time.
*/
package symtab

import (
	"math"
	"strings"
)

// Kind distinguishes the three roles a Symbol can hold.
type Kind int

const (
	KindConstant Kind = iota
	KindFunction
	KindVariable
)

// Symbol is a named entry: a constant value, a unary builtin function,
// or a loop-bound variable. Only one of Value/Func is meaningful,
// selected by Kind.
type Symbol struct {
	Name  string
	Kind  Kind
	Value float64
	Func  func(float64) float64
}

// Table is a flat, case-insensitively-keyed symbol table. The zero
// value is not usable; construct one with New.
type Table struct {
	static  []Symbol
	dynamic []Symbol
}

// New returns a Table seeded with the eight built-ins spec.md §3
// lists: PI, E, SIN, COS, TAN, SQRT, EXP, LN.
func New() *Table {
	t := &Table{}
	t.static = []Symbol{
		{Name: "PI", Kind: KindConstant, Value: math.Pi},
		{Name: "E", Kind: KindConstant, Value: math.E},
		{Name: "SIN", Kind: KindFunction, Func: math.Sin},
		{Name: "COS", Kind: KindFunction, Func: math.Cos},
		{Name: "TAN", Kind: KindFunction, Func: math.Tan},
		{Name: "SQRT", Kind: KindFunction, Func: math.Sqrt},
		{Name: "EXP", Kind: KindFunction, Func: math.Exp},
		{Name: "LN", Kind: KindFunction, Func: math.Log},
	}
	return t
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Lookup returns the Symbol named name (case-insensitive), searching
// the dynamic overlay before the static table so that a loop variable
// shadows nothing but is found first when both could match. Names are
// unique across everything simultaneously visible, so this never
// actually disambiguates a real conflict — it is a tie-break for the
// search order only.
func (t *Table) Lookup(name string) (Symbol, bool) {
	for _, s := range t.dynamic {
		if sameName(s.Name, name) {
			return s, true
		}
	}
	for _, s := range t.static {
		if sameName(s.Name, name) {
			return s, true
		}
	}
	return Symbol{}, false
}

// LookupValue resolves name as a Constant or Variable, the lookup rule
// spec.md §4.3 uses for Atom identifier evaluation. It does not match
// Function entries — function lookup is a separate namespace.
func (t *Table) LookupValue(name string) (float64, bool) {
	sym, ok := t.Lookup(name)
	if !ok || sym.Kind == KindFunction {
		return 0, false
	}
	return sym.Value, true
}

// LookupFunction resolves name as a Function entry. It does not match
// Constant or Variable entries.
func (t *Table) LookupFunction(name string) (func(float64) float64, bool) {
	sym, ok := t.Lookup(name)
	if !ok || sym.Kind != KindFunction {
		return nil, false
	}
	return sym.Func, true
}

// IsFunction reports whether name resolves to a Function entry. The
// parser's Atom probe uses this to choose between the bare-identifier
// production and the `identifier ( Expression )` production.
func (t *Table) IsFunction(name string) bool {
	sym, ok := t.Lookup(name)
	return ok && sym.Kind == KindFunction
}

// Exists reports whether any entry, static or dynamic, already uses name.
func (t *Table) Exists(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Insert adds a Variable entry to the dynamic overlay. The caller must
// have already checked Exists — Insert does not re-check, mirroring
// the split between probe-time validation (parser) and plain mutation
// (evaluator) that spec.md §4.2/§4.3 assign to different layers.
func (t *Table) Insert(name string, value float64) {
	t.dynamic = append(t.dynamic, Symbol{Name: name, Kind: KindVariable, Value: value})
}

// Remove deletes the most recently inserted dynamic entry named name.
// FOR-statement scoping is a strict LIFO push/pop around the DRAW
// clause (spec.md §5), so removing by name from the tail is sufficient
// and matches the teacher's scope discipline of restoring state after
// every statement.
func (t *Table) Remove(name string) {
	for i := len(t.dynamic) - 1; i >= 0; i-- {
		if sameName(t.dynamic[i].Name, name) {
			t.dynamic = append(t.dynamic[:i], t.dynamic[i+1:]...)
			return
		}
	}
}

// ClearDynamic empties the dynamic overlay. Called at the start of
// every independent expression frame (spec.md §4.3 "newExpression")
// so that stale loop bindings from a prior frame never leak forward.
func (t *Table) ClearDynamic() {
	t.dynamic = t.dynamic[:0]
}
