package minify

import "strconv"

// EncodeChar rewrites a character literal as its decimal code when that is
// not longer than the source spelling. Only the plain quote-byte-quote form
// qualifies; escape sequences other than \n stay verbatim, since their
// decimal form is not guaranteed shorter.
func EncodeChar(lexeme string) string {
	if lexeme == `'\n'` {
		return "10"
	}
	if len(lexeme) == 3 && lexeme[0] == '\'' && lexeme[2] == '\'' {
		return strconv.Itoa(int(lexeme[1]))
	}

	return lexeme
}
