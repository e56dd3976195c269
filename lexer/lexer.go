/*
File    : gridplot/lexer/lexer.go

Package lexer scans plot-language source text into a stream of tokens.
It follows the scan-one-token-at-a-time shape of the teacher's
lexer.Lexer: a current byte plus position/line/column, a Next
method the parser pulls on demand, and a Peek for one-byte lookahead.
*/
package lexer

import (
	"strings"

	"github.com/nilroot/gridplot/token"
)

// Lexer holds the scanning state over a source buffer already fully
// read into memory (spec.md §5: "Source input is read fully into
// memory before lexing begins").
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int

	// prevSignificant is the Kind of the last token returned, used to
	// decide whether a leading '+'/'-' is a sign glued to a numeric
	// literal or a standalone binary/unary operator token. See the
	// design note in spec.md §9: signing only after an operator, '(',
	// ',', or start of input avoids "A-1" lexing as Identifier("A")
	// Literal("-1").
	prevSignificant token.Kind
	havePrev        bool
}

// New creates a Lexer over src, positioned at line 1, column 1.
func New(src string) *Lexer {
	lex := &Lexer{
		src:       src,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if lex.srcLength > 0 {
		lex.current = src[0]
	}
	return lex
}

// Peek returns the next byte without consuming it, or 0 at end of source.
func (l *Lexer) Peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

// advance moves one byte forward, tracking column; newlines are
// handled by the caller so Line can be bumped and Column reset.
func (l *Lexer) advance() {
	l.position++
	l.column++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
		return
	}
	l.current = l.src[l.position]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// skipWhitespaceAndComments implements spec.md §4.1 steps 1-2: blank
// space is skipped silently, newlines reset the column, and `--` or
// `//` runs to end of line.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.current == '\n':
			l.line++
			l.column = 0
			l.advance()
		case isSpace(l.current):
			l.advance()
		case l.current == '-' && l.Peek() == '-':
			l.skipLineComment()
		case l.current == '/' && l.Peek() == '/':
			l.skipLineComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.current != '\n' && l.current != 0 {
		l.advance()
	}
}

// signAllowed reports whether a leading '+'/'-' at the current position
// should be folded into a numeric literal's lexeme rather than emitted
// as its own operator token — true only right after an operator, a '(',
// a ',', or at the very start of input (spec.md §9).
func (l *Lexer) signAllowed() bool {
	if !l.havePrev {
		return true
	}
	switch l.prevSignificant {
	case token.Plus, token.Minus, token.Multiply, token.Divide, token.Power,
		token.LeftBracket, token.Comma:
		return true
	default:
		return false
	}
}

// Next scans and returns the next token, advancing past it. End of
// input surfaces as a None token; an uninterpretable character span
// surfaces as an Error token carrying the offending span — the lexer
// itself never fails (spec.md §4.1 "Failure mode").
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	pos := token.Position{Line: l.line, Column: l.column}

	if l.current == 0 {
		return l.emit(token.None, "", pos)
	}

	switch l.current {
	case ';':
		l.advance()
		return l.emit(token.Semicolon, ";", pos)
	case ',':
		l.advance()
		return l.emit(token.Comma, ",", pos)
	case '(':
		l.advance()
		return l.emit(token.LeftBracket, "(", pos)
	case ')':
		l.advance()
		return l.emit(token.RightBracket, ")", pos)
	case '*':
		if l.Peek() == '*' {
			l.advance()
			l.advance()
			return l.emit(token.Power, "**", pos)
		}
		l.advance()
		return l.emit(token.Multiply, "*", pos)
	case '/':
		l.advance()
		return l.emit(token.Divide, "/", pos)
	case '+':
		if l.signAllowed() && isDigit(l.Peek()) {
			return l.readNumber(pos)
		}
		l.advance()
		return l.emit(token.Plus, "+", pos)
	case '-':
		if l.signAllowed() && isDigit(l.Peek()) {
			return l.readNumber(pos)
		}
		l.advance()
		return l.emit(token.Minus, "-", pos)
	}

	if isDigit(l.current) {
		return l.readNumber(pos)
	}
	if isAlpha(l.current) {
		return l.readIdentifier(pos)
	}

	offender := string(l.current)
	l.advance()
	return l.emit(token.Error, offender, pos)
}

// readNumber matches spec.md's `[1-9][0-9]*|0` with an optional
// fractional part, plus the optional leading sign consumed here per
// §4.1 step 4 and the signAllowed gate above.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	var sb strings.Builder
	if l.current == '+' || l.current == '-' {
		sb.WriteByte(l.current)
		l.advance()
	}
	if l.current == '0' {
		sb.WriteByte(l.current)
		l.advance()
	} else {
		for isDigit(l.current) {
			sb.WriteByte(l.current)
			l.advance()
		}
	}
	if l.current == '.' {
		sb.WriteByte(l.current)
		l.advance()
		for isDigit(l.current) {
			sb.WriteByte(l.current)
			l.advance()
		}
	}
	return l.emit(token.Literal, sb.String(), pos)
}

// readIdentifier matches `[A-Za-z_][A-Za-z0-9_]*`, then folds to lower
// case to probe the keyword table; non-keywords keep their original
// case as the Identifier lexeme (spec.md §4.1 step 5).
func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	var sb strings.Builder
	for isAlnum(l.current) {
		sb.WriteByte(l.current)
		l.advance()
	}
	original := sb.String()
	kind := token.LookupIdentifier(strings.ToLower(original))
	return l.emit(kind, original, pos)
}

func (l *Lexer) emit(kind token.Kind, lexeme string, pos token.Position) token.Token {
	l.prevSignificant = kind
	l.havePrev = true
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}
