package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/token"
)

func TestErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, language.Lookup("English"))
	h.SetSource("variable x = 1\nx = yy + 1\n")

	h.Error(token.Token{Kind: token.IDENT, Lexeme: "yy", Line: 2, Col: 5}, "Undefined variable")

	want := "\x1b[31mError at \"yy\": Undefined variable\x1b[0m\n\n" +
		" 2 | x = yy + 1\n" +
		"         ^^\n\n"
	assert.Equal(t, want, buf.String())
	assert.True(t, h.HadError)
	assert.False(t, h.HadRuntimeError)
}

func TestSyntaxFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, language.Lookup("English"))
	h.SetSource("variable $ = 1\n")

	h.Syntax(token.Token{Kind: token.IDENT, Lexeme: "$", Line: 1, Col: 10}, language.UnexpectedCharacter, "Invalid character")

	got := buf.String()
	assert.Contains(t, got, "Syntax error at \"$\": Unexpected character")
	assert.Contains(t, got, " 1 | variable $ = 1\n")
	assert.Contains(t, got, "^ Invalid character")
	assert.True(t, h.HadError)
}

func TestRuntimeSetsFlag(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, language.Lookup("English"))
	h.SetSource("f(1)\n")

	h.Runtime(&RuntimeError{
		Token: token.Token{Kind: token.RPAREN, Lexeme: ")", Line: 1, Col: 4},
		Msg:   "Expected 2 argument(s) but got 1",
	})

	assert.Contains(t, buf.String(), "Runtime error at \")\": Expected 2 argument(s) but got 1")
	assert.True(t, h.HadRuntimeError)
	assert.False(t, h.HadError)
}

func TestWhereStructuralTokens(t *testing.T) {
	require.Equal(t, "end of line", where(token.Token{Kind: token.NEWLINE, Lexeme: "\n"}))
	require.Equal(t, "end of program", where(token.Token{Kind: token.EOF}))
	require.Equal(t, "'", where(token.Token{Kind: token.QUOTES, Lexeme: "'"}))
	require.Equal(t, `"abc"`, where(token.Token{Kind: token.IDENT, Lexeme: "abc"}))
}
