/*
File    : gridplot/repl/repl.go

Package repl implements the supplemental interactive front end
(SPEC_FULL.md "interactive mode"): a statement-at-a-time read-eval-print
loop over a persistent canvas. Grounded in the teacher's repl.Repl —
same Banner/Version/Prompt fields, same readline-backed line editing
and colored feedback, same "parse error and carry on" recovery
discipline — rewritten so that one REPL "result" is a statement
executed against a live drawing surface rather than an expression
value, since this language has no top-level expression statements.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/nilroot/gridplot/canvas"
	"github.com/nilroot/gridplot/diag"
	"github.com/nilroot/gridplot/eval"
	"github.com/nilroot/gridplot/parser"
)

// Repl is an interactive session: a banner to print at startup, a
// prompt to show on each line, and the canvas statements draw onto
// for the lifetime of the session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Target  canvas.Canvas
	Report  *diag.Reporter
}

// New returns a Repl drawing onto target, reporting through report.
func New(banner, version, prompt string, target canvas.Canvas, report *diag.Reporter) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, Target: target, Report: report}
}

// PrintBanner writes the startup banner and usage reminder.
func (r *Repl) PrintBanner(w io.Writer) {
	r.Report.Info("%s", r.Banner)
	r.Report.Info("gridplot %s -- one statement per line, terminated by ';'", r.Version)
	r.Report.Info("type '.exit' or press Ctrl+D to quit")
}

// Start runs the read-eval-print loop until the user quits or EOF is
// reached. Each line is parsed and evaluated independently against a
// fresh parser (so a fresh FOR-loop variable scope per line) but the
// same persistent Target canvas, so ORIGIN/SCALE/ROT/SIZE/COLOR set on
// one line stay in effect for the next.
func (r *Repl) Start(out io.Writer) error {
	r.PrintBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			r.Report.Info("goodbye")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			r.Report.Info("goodbye")
			return nil
		}

		rl.SaveHistory(line)
		r.execute(line)
	}
}

// execute parses and evaluates one line, reporting either success or
// the first diagnostic raised — mirroring the teacher's REPL, which
// reports an error and returns to the prompt rather than exiting.
func (r *Repl) execute(line string) {
	if !strings.HasSuffix(line, ";") {
		line += ";"
	}

	p := parser.New(line)
	prog, err := p.Parse()
	if err != nil {
		r.Report.ReportError(err)
		return
	}

	ev := eval.New(p.Symbols(), r.Target)
	if err := ev.Run(prog); err != nil {
		r.Report.ReportError(err)
		return
	}

	r.Report.Result("ok")
}
