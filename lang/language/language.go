// Package language holds the locale tables of the wiz language: the mapping
// from keyword phrases (possibly multi-word) to token kinds, the localized
// scanner error messages, the user-visible names of the standard library,
// and the spellings of the nil/true/false values. The language directive of
// a source file selects one of the registered languages.
package language

import (
	"regexp"
	"strings"

	"github.com/wiz-lang/wiz/lang/token"
)

// Role identifies a standard-library function independently of its
// user-visible, locale-specific name.
type Role int8

// List of standard-library roles.
const (
	Clock Role = iota
	Write
	Read
	Text
)

// ErrorKind identifies a scanner error independently of its localized
// message.
type ErrorKind int8

// List of scanner error kinds.
const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedString
	IncompleteKeyword
)

// A Language bundles every locale-specific table the pipeline needs. The
// scanner consumes Keywords, the error sink consumes the error messages,
// the resolver and interpreter ask for the spellings of "this" and "super",
// and the interpreter installs the standard library under the StdLib names.
type Language struct {
	// Name is the display name of the language, as written in the locale
	// directive.
	Name string

	// Keywords maps each keyword phrase to its token kind. Multi-word
	// phrases are space-separated.
	Keywords map[string]token.Kind

	// StdLib maps each standard-library role to its user-visible name.
	StdLib map[Role]string

	errors map[ErrorKind]string

	nilName, trueName, falseName string
}

// ErrorMessage returns the localized message for the scanner error kind.
func (l *Language) ErrorMessage(k ErrorKind) string { return l.errors[k] }

// KeywordFor returns the phrase that spells the keyword kind in this
// language, or "" if no phrase maps to it.
func (l *Language) KeywordFor(k token.Kind) string {
	for phrase, kind := range l.Keywords {
		if kind == k {
			return phrase
		}
	}
	return ""
}

// NilName returns the spelling of the nil value.
func (l *Language) NilName() string { return l.nilName }

// BoolName returns the spelling of the boolean value b.
func (l *Language) BoolName(b bool) string {
	if b {
		return l.trueName
	}
	return l.falseName
}

var english = &Language{
	Name: "English",
	Keywords: map[string]token.Kind{
		"and":      token.AND,
		"begin":    token.BEGIN,
		"class":    token.CLASS,
		"do":       token.DO,
		"else":     token.ELSE,
		"end":      token.END,
		"false":    token.FALSE,
		"function": token.FUNCTION,
		"for":      token.FOR,
		"if":       token.IF,
		"inherits": token.INHERITS,
		"not":      token.NOT,
		"none":     token.NONE,
		"or":       token.OR,
		"return":   token.RETURN,
		"super":    token.SUPER,
		"this":     token.THIS,
		"true":     token.TRUE,
		"variable": token.VARIABLE,
		"while":    token.WHILE,
	},
	StdLib: map[Role]string{
		Clock: "clock",
		Write: "write",
		Read:  "read",
		Text:  "text",
	},
	errors: map[ErrorKind]string{
		UnexpectedCharacter: "Unexpected character",
		UnterminatedString:  "Unterminated text value (string)",
		IncompleteKeyword:   "Incomplete keyword",
	},
	nilName:   "none",
	trueName:  "true",
	falseName: "false",
}

var portuguese = &Language{
	Name: "Português",
	Keywords: map[string]token.Kind{
		"e":          token.AND,
		"inicio":     token.BEGIN,
		"classe":     token.CLASS,
		"faca":       token.DO,
		"se nao":     token.ELSE,
		"fim":        token.END,
		"falso":      token.FALSE,
		"funcao":     token.FUNCTION,
		"para":       token.FOR,
		"se":         token.IF,
		"herda de":   token.INHERITS,
		"nao":        token.NOT,
		"nada":       token.NONE,
		"ou":         token.OR,
		"retorne":    token.RETURN,
		"super":      token.SUPER,
		"isto":       token.THIS,
		"verdadeiro": token.TRUE,
		"variavel":   token.VARIABLE,
		"enquanto":   token.WHILE,
	},
	StdLib: map[Role]string{
		Clock: "relogio",
		Write: "escreva",
		Read:  "leia",
		Text:  "texto",
	},
	errors: map[ErrorKind]string{
		UnexpectedCharacter: "Caráter inesperado",
		UnterminatedString:  "Valor de texto não terminado",
		IncompleteKeyword:   "Palavra-chave incompleta",
	},
	nilName:   "nada",
	trueName:  "verdadeiro",
	falseName: "falso",
}

// Names returns the display names of the registered languages, in menu
// order.
func Names() []string { return []string{"English", "Português"} }

// Lookup returns the language registered under name, or nil if the name is
// unknown. The mojibake form "PortuguÃªs" (a UTF-8 "Português" read as
// Latin-1) is normalized before lookup.
func Lookup(name string) *Language {
	if name == "PortuguÃªs" {
		name = "Português"
	}
	switch name {
	case "English":
		return english
	case "Português":
		return portuguese
	}
	return nil
}

var directiveRx = regexp.MustCompile(`^\s*@[ \t]*([\p{L}\p{N}_]+)`)

// Directive extracts the language name from the locale directive that must
// open a source file: the first non-blank content must match `@ <Name>`.
// It returns ok=false if no directive is present.
func Directive(src string) (name string, ok bool) {
	m := directiveRx.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FirstNonBlank returns the 1-based number and the content of the first
// line of src with non-whitespace content, for the "language not defined"
// diagnostic. It returns 0, "" for an all-blank source.
func FirstNonBlank(src string) (int, string) {
	for i, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) != "" {
			return i + 1, line
		}
	}
	return 0, ""
}
