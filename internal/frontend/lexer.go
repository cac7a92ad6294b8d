// Package frontend is a minimal, test-only stand-in for the real
// lexer/parser/inferencer pipeline, which is out of scope for this
// module (lexing, parsing and type-inference's unification core are
// explicitly excluded). It supports just enough concrete syntax to let
// evaluator and LSP integration tests exercise real source text end to
// end, producing internal/ast nodes with real internal/langerr.Range
// positions and resolving prelude operator references to pinned hashes.
// It is not, and does not attempt to be, a production parser.
package frontend

import (
	"unicode"
	"unicode/utf8"

	"github.com/corelang/funl/internal/langerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokDouble
	tokHex
	tokText
	tokIdent
	tokImplicitIdent // ?name
	tokEnumTag       // #Name
	tokKeyword
	tokSymbol
)

type token struct {
	kind tokenKind
	text string
	pos  langerr.Position
}

var keywords = map[string]bool{
	"let": true, "in": true, "if": true, "then": true, "else": true,
	"fun": true, "assert": true, "case": true, "of": true, "true": true,
	"false": true, "Some": true, "None": true,
}

// lexer mirrors the teacher's position/readPosition/ch/line/column
// scanning discipline, scoped down to this package's small grammar.
type lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}
		if l.ch == '#' && !isIdentStart(l.peekChar()) {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

func (l *lexer) pos() langerr.Position {
	return langerr.Position{Line: l.line - 1, Character: l.column - 1}
}

func (l *lexer) next() token {
	l.skipWhitespaceAndComments()
	start := l.pos()

	switch {
	case l.ch == 0:
		return token{kind: tokEOF, pos: start}

	case l.ch == '?' && isIdentStart(l.peekChar()):
		l.readChar()
		s := l.readIdentRunes()
		return token{kind: tokImplicitIdent, text: s, pos: start}

	case l.ch == '#' && isIdentStart(l.peekChar()):
		l.readChar()
		s := l.readIdentRunes()
		return token{kind: tokEnumTag, text: s, pos: start}

	case isIdentStart(l.ch):
		s := l.readIdentRunes()
		if keywords[s] {
			return token{kind: tokKeyword, text: s, pos: start}
		}
		if s == "_" {
			return token{kind: tokSymbol, text: s, pos: start}
		}
		return token{kind: tokIdent, text: s, pos: start}

	case unicode.IsDigit(l.ch):
		return l.readNumber(start)

	case l.ch == '"':
		return l.readText(start)

	default:
		return l.readSymbol(start)
	}
}

func (l *lexer) readIdentRunes() string {
	begin := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.input[begin:l.position]
}

func (l *lexer) readNumber(start langerr.Position) token {
	begin := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return token{kind: tokHex, text: l.input[begin:l.position], pos: start}
	}
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	isDouble := false
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		isDouble = true
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	text := l.input[begin:l.position]
	if isDouble {
		return token{kind: tokDouble, text: text, pos: start}
	}
	return token{kind: tokInt, text: text, pos: start}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *lexer) readText(start langerr.Position) token {
	l.readChar() // consume opening quote
	begin := l.position
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	text := l.input[begin:l.position]
	l.readChar() // consume closing quote
	return token{kind: tokText, text: unescape(text), pos: start}
}

func unescape(s string) string {
	out := make([]rune, 0, len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			switch runes[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, runes[i])
			}
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}

var symbols = []string{
	"->", "<=", ">=", "==", "<>", "&&", "||", "..",
	"(", ")", "[", "]", ",", "+", "-", "*", "/", "<", ">", "=",
}

func (l *lexer) readSymbol(start langerr.Position) token {
	for _, sym := range symbols {
		if l.matches(sym) {
			for range sym {
				l.readChar()
			}
			return token{kind: tokSymbol, text: sym, pos: start}
		}
	}
	ch := l.ch
	l.readChar()
	return token{kind: tokSymbol, text: string(ch), pos: start}
}

func (l *lexer) matches(s string) bool {
	if l.position+len(s) > len(l.input) {
		return false
	}
	return l.input[l.position:l.position+len(s)] == s
}
