// Package token defines the lexical vocabulary of Zig source as far as
// minification needs it: enough kinds to tell identifiers, builtins, numbers,
// and keywords apart from the punctuation that never needs a separator.
package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	INVALID

	// Literals and identifiers.
	IDENT
	BUILTIN
	INTEGER
	FLOAT
	CHAR
	STRING

	// Comments that survive lexing as tokens.
	DOCCOMMENT
	CONTAINERDOC

	// Member access. The rewriter treats the identifier after it specially.
	DOT

	// Every remaining operator or punctuation token.
	OTHER

	keywordBeg
	ADDRSPACE
	ALIGN
	ALLOWZERO
	AND
	ANYFRAME
	ANYTYPE
	ASM
	ASYNC
	AWAIT
	BREAK
	CALLCONV
	CATCH
	COMPTIME
	CONST
	CONTINUE
	DEFER
	ELSE
	ENUM
	ERRDEFER
	ERROR
	EXPORT
	EXTERN
	FN
	FOR
	IF
	INLINE
	LINKSECTION
	NOALIAS
	NOINLINE
	NOSUSPEND
	OPAQUE
	OR
	ORELSE
	PACKED
	PUB
	RESUME
	RETURN
	STRUCT
	SUSPEND
	SWITCH
	TEST
	THREADLOCAL
	TRY
	UNION
	UNREACHABLE
	USINGNAMESPACE
	VAR
	VOLATILE
	WHILE
	keywordEnd
)

// Keyword kinds are named by their lexeme so the lookup table below can be
// built straight from this list.
var kindNames = [...]string{
	EOF:          "EOF",
	INVALID:      "INVALID",
	IDENT:        "IDENT",
	BUILTIN:      "BUILTIN",
	INTEGER:      "INTEGER",
	FLOAT:        "FLOAT",
	CHAR:         "CHAR",
	STRING:       "STRING",
	DOCCOMMENT:   "DOCCOMMENT",
	CONTAINERDOC: "CONTAINERDOC",
	DOT:          "DOT",
	OTHER:        "OTHER",

	ADDRSPACE:      "addrspace",
	ALIGN:          "align",
	ALLOWZERO:      "allowzero",
	AND:            "and",
	ANYFRAME:       "anyframe",
	ANYTYPE:        "anytype",
	ASM:            "asm",
	ASYNC:          "async",
	AWAIT:          "await",
	BREAK:          "break",
	CALLCONV:       "callconv",
	CATCH:          "catch",
	COMPTIME:       "comptime",
	CONST:          "const",
	CONTINUE:       "continue",
	DEFER:          "defer",
	ELSE:           "else",
	ENUM:           "enum",
	ERRDEFER:       "errdefer",
	ERROR:          "error",
	EXPORT:         "export",
	EXTERN:         "extern",
	FN:             "fn",
	FOR:            "for",
	IF:             "if",
	INLINE:         "inline",
	LINKSECTION:    "linksection",
	NOALIAS:        "noalias",
	NOINLINE:       "noinline",
	NOSUSPEND:      "nosuspend",
	OPAQUE:         "opaque",
	OR:             "or",
	ORELSE:         "orelse",
	PACKED:         "packed",
	PUB:            "pub",
	RESUME:         "resume",
	RETURN:         "return",
	STRUCT:         "struct",
	SUSPEND:        "suspend",
	SWITCH:         "switch",
	TEST:           "test",
	THREADLOCAL:    "threadlocal",
	TRY:            "try",
	UNION:          "union",
	UNREACHABLE:    "unreachable",
	USINGNAMESPACE: "usingnamespace",
	VAR:            "var",
	VOLATILE:       "volatile",
	WHILE:          "while",
}

var keywords = make(map[string]Kind, keywordEnd-keywordBeg-1)

func init() {
	for k := keywordBeg + 1; k < keywordEnd; k++ {
		keywords[kindNames[k]] = k
	}
}

// Lookup maps an identifier to its keyword kind, or IDENT if it is not a
// keyword.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

func (k Kind) String() string {
	if 0 <= int(k) && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the keyword kinds.
func (k Kind) IsKeyword() bool {
	return keywordBeg < k && k < keywordEnd
}

// SpaceSensitive reports whether a token of this kind, written directly
// against another space-sensitive token, would merge into a different lexeme.
// These are exactly the kinds spelled with identifier-like or numeric
// characters.
func (k Kind) SpaceSensitive() bool {
	switch k {
	case IDENT, BUILTIN, INTEGER, FLOAT:
		return true
	}
	return k.IsKeyword()
}

type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Lexeme, t.Line)
}
