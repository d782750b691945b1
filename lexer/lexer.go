// Package lexer splits Zig source into tokens. It covers exactly as much of
// the grammar as the minifier needs: it never interprets lexemes, it only
// classifies them and keeps their source text intact.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/jwhear/zig-minifier/token"
)

// Lex scans source into tokens, ending with an EOF token. Input that does not
// lexically conform becomes an INVALID token in the stream; deciding what to
// do with it is the consumer's job.
func Lex(source string) []token.Token {
	l := lexer{
		source: source,
		tokens: []token.Token{},
		line:   1,
	}

	for !l.isAtEnd() {
		l.scanToken()
	}

	l.tokens = append(l.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: l.line})

	return l.tokens
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
	line    int // current line number
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

// peekByte looks offset bytes past the current position. Only used where the
// grammar guarantees ASCII (digits, signs, comment markers).
func (l lexer) peekByte(offset int) byte {
	if l.current+offset >= len(l.source) {
		return '\x00'
	}

	return l.source[l.current+offset]
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

func (l *lexer) match(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()

	return true
}

func (l *lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.line})
}

func (l *lexer) scanToken() {
	l.start = l.current
	char := l.advance()
	switch char {
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '/':
		if l.match('/') {
			l.comment()

			return
		}
		l.match('=')
		l.addToken(token.OTHER)
	case '\'':
		l.charLiteral()
	case '"':
		l.quoted(token.STRING)
	case '\\':
		if l.match('\\') {
			l.multilineString()

			return
		}
		l.addToken(token.INVALID)
	case '@':
		l.builtin()
	case '.':
		if l.match('.') {
			// .. and ... are whole tokens: the name after a slice bound
			// is an ordinary identifier, not a field access
			l.match('.')
			l.addToken(token.OTHER)

			return
		}
		l.addToken(token.DOT)
	default:
		switch {
		case isDigit(char):
			l.number(char)
		case isAlpha(char):
			l.identifier()
		default:
			l.operator(char)
		}
	}
}

// comment is entered with the leading "//" consumed. Exactly "///" opens a
// doc comment ("////" does not) and "//!" a container doc comment; everything
// else is skipped without producing a token.
func (l *lexer) comment() {
	isContainerDoc := l.peek() == '!'
	isDoc := l.peek() == '/' && l.peekByte(1) != '/'

	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}

	switch {
	case isContainerDoc:
		l.addToken(token.CONTAINERDOC)
	case isDoc:
		l.addToken(token.DOCCOMMENT)
	}
}

func (l *lexer) charLiteral() {
	for !l.isAtEnd() && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
			if l.isAtEnd() {
				break
			}
		}
		l.advance()
	}

	if !l.match('\'') {
		l.addToken(token.INVALID)

		return
	}
	l.addToken(token.CHAR)
}

// quoted scans the remainder of a double-quoted literal and tags it with
// kind. Zig strings cannot contain a raw newline, so one terminates the scan
// as an error.
func (l *lexer) quoted(kind token.Kind) {
	for !l.isAtEnd() && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
			if l.isAtEnd() {
				break
			}
		}
		l.advance()
	}

	if !l.match('"') {
		l.addToken(token.INVALID)

		return
	}
	l.addToken(kind)
}

// multilineString is entered with the leading "\\" consumed. The lexeme keeps
// the terminating newline: the literal is line-based and emitting it verbatim
// must preserve that structure.
func (l *lexer) multilineString() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
	if !l.isAtEnd() {
		l.advance()
		l.line++
	}
	l.addToken(token.STRING)
}

func (l *lexer) builtin() {
	if l.match('"') {
		// @"..." is a quoted identifier, not a builtin reference
		l.quoted(token.IDENT)

		return
	}

	if !isAlpha(l.peek()) {
		l.addToken(token.INVALID)

		return
	}
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	l.addToken(token.BUILTIN)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// number is entered with the first digit consumed. A '.' only joins the
// number when a digit of the same base follows, so "0..5" stays three tokens.
func (l *lexer) number(first rune) {
	digits := isDigit
	exponents := "eE"
	if first == '0' {
		switch l.peek() {
		case 'x':
			l.advance()
			digits = isHexDigit
			exponents = "pP"
		case 'o':
			l.advance()
			digits = isOctalDigit
			exponents = ""
		case 'b':
			l.advance()
			digits = isBinaryDigit
			exponents = ""
		}
	}

	consume := func() {
		for digits(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	kind := token.INTEGER
	consume()
	if l.peek() == '.' && digits(rune(l.peekByte(1))) {
		l.advance()
		consume()
		kind = token.FLOAT
	}
	if l.scanExponent(exponents) {
		kind = token.FLOAT
	}
	l.addToken(kind)
}

// scanExponent consumes an exponent suffix (marker, optional sign, decimal
// digits) and reports whether one was present.
func (l *lexer) scanExponent(markers string) bool {
	marker := l.peek()
	found := false
	for _, m := range markers {
		if marker == m {
			found = true

			break
		}
	}
	if !found {
		return false
	}

	next := l.peekByte(1)
	switch {
	case next == '+' || next == '-':
		if !isDigit(rune(l.peekByte(2))) {
			return false
		}
		l.advance()
		l.advance()
	case isDigit(rune(next)):
		l.advance()
	default:
		return false
	}

	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	return true
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	l.addToken(token.Lookup(l.source[l.start:l.current]))
}

// operator scans the remaining punctuation by maximal munch over Zig's
// operator set. Anything outside it is an INVALID token.
func (l *lexer) operator(char rune) {
	switch char {
	case '(', ')', '{', '}', '[', ']', ';', ',', ':', '?', '~':
	case '=':
		if !l.match('=') {
			l.match('>')
		}
	case '!':
		l.match('=')
	case '<':
		if l.match('<') {
			if !l.match('=') {
				l.match('|')
			}
		} else {
			l.match('=')
		}
	case '>':
		l.match('>')
		l.match('=')
	case '&', '^', '%':
		l.match('=')
	case '|':
		if !l.match('|') {
			l.match('=')
		}
	case '+':
		if l.match('%') || l.match('|') {
			l.match('=')
		} else if !l.match('+') {
			l.match('=')
		}
	case '-':
		if l.match('%') || l.match('|') {
			l.match('=')
		} else if !l.match('>') {
			l.match('=')
		}
	case '*':
		if l.match('%') || l.match('|') {
			l.match('=')
		} else if !l.match('*') {
			l.match('=')
		}
	default:
		l.addToken(token.INVALID)

		return
	}
	l.addToken(token.OTHER)
}
