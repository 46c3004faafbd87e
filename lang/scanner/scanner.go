// Package scanner implements the locale-aware scanner that tokenizes wiz
// source code. Keyword recognition goes through the active language's
// phrase table, so the same scanner handles every supported locale,
// including multi-word keyword phrases.
package scanner

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wiz-lang/wiz/lang/language"
	"github.com/wiz-lang/wiz/lang/report"
	"github.com/wiz-lang/wiz/lang/token"
)

// Scan tokenizes src with the keyword table of lang and returns the token
// sequence, terminated by one EOF token. Errors are reported to h, which
// also receives the source lines for diagnostic underlining.
func Scan(src string, lang *language.Language, h *report.Handler) []token.Token {
	h.SetSource(src)

	s := scanner{src: src, lang: lang, h: h, line: 1, col: 1}
	for !s.atEnd() {
		s.start = s.cur
		s.startLine, s.startCol = s.line, s.col
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Line: s.line, Col: s.col})
	return s.tokens
}

type scanner struct {
	src  string
	lang *language.Language
	h    *report.Handler

	tokens []token.Token

	start, cur          int // byte offsets: token start, next unread
	line, col           int // 1-based position of the next unread byte
	startLine, startCol int // position of the token start
}

func (s *scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.add(token.LPAREN)
	case ')':
		s.add(token.RPAREN)
	case ',':
		s.add(token.COMMA)
	case '.':
		s.add(token.DOT)
	case '-':
		s.add(token.MINUS)
	case '+':
		s.add(token.PLUS)
	case '*':
		s.add(token.STAR)
	case '/':
		s.add(token.SLASH)
	case '!':
		s.addIf('=', token.BANGEQ, token.BANG)
	case '=':
		s.addIf('=', token.EQEQ, token.EQ)
	case '<':
		s.addIf('=', token.LTEQ, token.LT)
	case '>':
		s.addIf('=', token.GTEQ, token.GT)
	case '#', '@':
		// comment to end of line; the locale directive is an '@' line too,
		// parsed by the driver before scanning begins
		for s.peek() != '\n' && !s.atEnd() {
			s.advance()
		}
	case ' ', '\r', '\t':
		// ignore
	case '\n':
		s.tokens = append(s.tokens, token.Token{
			Kind: token.NEWLINE, Lexeme: "\n", Line: s.startLine, Col: s.startCol,
		})
	case '\'', '"':
		s.string(ch)
	default:
		switch {
		case isDigit(ch):
			s.number()
		case isAlpha(ch):
			s.identifier()
		default:
			errTok := token.Token{Kind: token.IDENT, Lexeme: s.src[s.start:s.cur], Line: s.startLine, Col: s.startCol}
			s.h.Syntax(errTok, language.UnexpectedCharacter, "Invalid character")
		}
	}
}

func (s *scanner) add(kind token.Kind) {
	s.tokens = append(s.tokens, token.Token{
		Kind:   kind,
		Lexeme: s.src[s.start:s.cur],
		Line:   s.startLine,
		Col:    s.startCol,
	})
}

func (s *scanner) addIf(next byte, then, els token.Kind) {
	if s.match(next) {
		s.add(then)
	} else {
		s.add(els)
	}
}

func (s *scanner) advance() byte {
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *scanner) string(quote byte) {
	for s.peek() != quote && !s.atEnd() {
		s.advance() // embedded newlines are permitted; advance tracks them
	}

	if s.atEnd() {
		errTok := token.Token{Kind: token.QUOTES, Lexeme: string(quote), Line: s.startLine, Col: s.startCol}
		s.h.Syntax(errTok, language.UnterminatedString,
			"Expected another "+string(quote)+" at end to close text value")
		return
	}

	s.advance() // closing quote

	s.tokens = append(s.tokens, token.Token{
		Kind:   token.STRING,
		Lexeme: s.src[s.start:s.cur],
		Text:   s.src[s.start+1 : s.cur-1], // no escape sequences
		Line:   s.startLine,
		Col:    s.startCol,
	})
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := s.src[s.start:s.cur]
	n, _ := strconv.ParseFloat(lit, 64) // the scan guarantees a valid float
	s.tokens = append(s.tokens, token.Token{
		Kind:   token.NUMBER,
		Lexeme: lit,
		Number: n,
		Line:   s.startLine,
		Col:    s.startCol,
	})
}

// identifier scans an identifier run and resolves it against the locale's
// keyword table. A run that starts a multi-word phrase must complete one of
// the candidate phrases (tried longest first) or the whole run is an
// incomplete-keyword error.
func (s *scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	head := s.src[s.start:s.cur]

	var candidates []string
	for phrase := range s.lang.Keywords {
		if firstWord(phrase) == head {
			candidates = append(candidates, phrase)
		}
	}

	if len(candidates) == 0 {
		s.add(token.IDENT)
		return
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})

	for _, phrase := range candidates {
		words := strings.Split(phrase, " ")
		if s.matchSequence(words[1:]) {
			s.add(s.lang.Keywords[phrase])
			return
		}
	}

	errTok := token.Token{Kind: token.IDENT, Lexeme: head, Line: s.startLine, Col: s.startCol}
	s.h.Syntax(errTok, language.IncompleteKeyword, "Could be: "+strings.Join(candidates, ", "))
}

// matchSequence consumes the remaining words of a keyword phrase, each
// optionally preceded by one space and bounded by a non-alphanumeric
// character. On failure the scanner position is restored.
func (s *scanner) matchSequence(words []string) bool {
	saveCur, saveLine, saveCol := s.cur, s.line, s.col

	for _, word := range words {
		if s.peek() == ' ' {
			s.advance()
		}
		if !s.matchWord(word) {
			s.cur, s.line, s.col = saveCur, saveLine, saveCol
			return false
		}
	}
	return true
}

func (s *scanner) matchWord(word string) bool {
	end := s.cur + len(word)
	if end > len(s.src) || s.src[s.cur:end] != word {
		return false
	}
	if end < len(s.src) && isAlphaNumeric(s.src[end]) {
		return false
	}
	s.cur = end
	s.col += len(word)
	return true
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isAlphaNumeric(ch byte) bool { return isAlpha(ch) || isDigit(ch) }

func firstWord(phrase string) string {
	if i := strings.IndexByte(phrase, ' '); i >= 0 {
		return phrase[:i]
	}
	return phrase
}
