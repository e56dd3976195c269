package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		lowered string
		want    Kind
	}{
		{"origin", Origin},
		{"scale", Scale},
		{"rot", Rot},
		{"is", Is},
		{"for", For},
		{"from", From},
		{"to", To},
		{"step", Step},
		{"draw", Draw},
		{"size", Size},
		{"color", Color},
		{"pi", Identifier},
		{"sin", Identifier},
		{"somename", Identifier},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupIdentifier(tt.lowered))
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	assert.Equal(t, "3,7", p.String())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Literal, Lexeme: "3.5", Pos: Position{Line: 1, Column: 1}}
	assert.Equal(t, "3.5[LITERAL]", tok.String())
}
