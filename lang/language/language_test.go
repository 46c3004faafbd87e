package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiz-lang/wiz/lang/token"
)

func TestLookup(t *testing.T) {
	require.NotNil(t, Lookup("English"))
	require.NotNil(t, Lookup("Português"))
	require.Nil(t, Lookup("Klingon"))
	require.Nil(t, Lookup(""))

	// mojibake form normalizes to the UTF-8 spelling
	l := Lookup("PortuguÃªs")
	require.NotNil(t, l)
	assert.Equal(t, "Português", l.Name)
}

func TestKeywordTablesComplete(t *testing.T) {
	for _, name := range Names() {
		l := Lookup(name)
		require.NotNil(t, l, name)

		seen := make(map[token.Kind]bool)
		for _, k := range l.Keywords {
			assert.False(t, seen[k], "%s: kind %s mapped twice", name, k)
			seen[k] = true
		}
		for k := token.AND; k.IsKeyword(); k++ {
			assert.True(t, seen[k], "%s: no phrase for %s", name, k)
		}
	}
}

func TestKeywordFor(t *testing.T) {
	en, pt := Lookup("English"), Lookup("Português")
	assert.Equal(t, "this", en.KeywordFor(token.THIS))
	assert.Equal(t, "super", en.KeywordFor(token.SUPER))
	assert.Equal(t, "isto", pt.KeywordFor(token.THIS))
	assert.Equal(t, "se nao", pt.KeywordFor(token.ELSE))
	assert.Equal(t, "herda de", pt.KeywordFor(token.INHERITS))
	assert.Equal(t, "", en.KeywordFor(token.PLUS))
}

func TestDirective(t *testing.T) {
	cases := []struct {
		src  string
		want string
		ok   bool
	}{
		{"@ English\nwrite(1)\n", "English", true},
		{"@English\n", "English", true},
		{"  \t@  Português\n", "Português", true},
		{"@ PortuguÃªs\n", "PortuguÃªs", true},
		{"\n\n  @ English\n", "English", true},
		{"write(1)\n@ English\n", "", false},
		{"# comment\n@ English\n", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		name, ok := Directive(c.src)
		assert.Equal(t, c.ok, ok, "%q", c.src)
		assert.Equal(t, c.want, name, "%q", c.src)
	}
}

func TestFirstNonBlank(t *testing.T) {
	n, line := FirstNonBlank("\n  \nwrite(1)\n")
	assert.Equal(t, 3, n)
	assert.Equal(t, "write(1)", line)

	n, _ = FirstNonBlank("   \n\t\n")
	assert.Equal(t, 0, n)
}

func TestSpellings(t *testing.T) {
	en, pt := Lookup("English"), Lookup("Português")
	assert.Equal(t, "none", en.NilName())
	assert.Equal(t, "true", en.BoolName(true))
	assert.Equal(t, "false", en.BoolName(false))
	assert.Equal(t, "nada", pt.NilName())
	assert.Equal(t, "verdadeiro", pt.BoolName(true))
	assert.Equal(t, "falso", pt.BoolName(false))
}
