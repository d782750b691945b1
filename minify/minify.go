// Package minify rewrites a Zig token stream into a byte-shorter but
// semantically equivalent rendering: comments dropped, identifiers shortened,
// character literals re-encoded, and every removable space removed.
package minify

import (
	"fmt"
	"strings"

	"github.com/jwhear/zig-minifier/rename"
	"github.com/jwhear/zig-minifier/token"
)

// InvalidTokenError reports input the lexer could not classify. A run stops
// at the first one and produces no output.
type InvalidTokenError struct {
	Line   int
	Lexeme string
}

func (e InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid source: %q at line %d", e.Lexeme, e.Line)
}

// Minify renders tokens as minified Zig source. The whole output is buffered
// so a lexical error never leaves partial output behind. Rename state is
// created here and dies with the call; runs share nothing.
func Minify(tokens []token.Token) (string, error) {
	var out strings.Builder
	renamer := rename.NewRenamer()
	prev := token.INVALID // sentinel, never space-sensitive

	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.INVALID {
			return "", InvalidTokenError{Line: tok.Line, Lexeme: tok.Lexeme}
		}

		if needsSpace(prev, tok.Kind) {
			out.WriteByte(' ')
		}

		switch tok.Kind {
		case token.IDENT:
			if prev == token.DOT {
				// field access: the name belongs to whatever declares
				// it, leave it alone
				out.WriteString(tok.Lexeme)
			} else {
				out.WriteString(renamer.Rename(tok.Lexeme))
			}
		case token.DOCCOMMENT, token.CONTAINERDOC:
			// dropped
		case token.CHAR:
			out.WriteString(EncodeChar(tok.Lexeme))
		default:
			out.WriteString(tok.Lexeme)
		}

		prev = tok.Kind
	}

	return out.String(), nil
}

// needsSpace reports whether a separating space must go between two adjacent
// tokens so the output re-lexes into the same sequence. A builtin reference
// never needs one: its @ sigil already separates it from anything before it.
func needsSpace(prev, cur token.Kind) bool {
	if cur == token.BUILTIN {
		return false
	}

	return prev.SpaceSensitive() && cur.SpaceSensitive()
}
