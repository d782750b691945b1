// Package rename assigns short replacement names to identifiers, keeping
// every occurrence of the same original consistent within one run.
package rename

import "github.com/jwhear/zig-minifier/token"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// reserved identifiers keep their own name: primitive values and types, the
// discard identifier, and the entry point.
var reserved = []string{
	"_", "main",
	"true", "false", "null", "undefined",
	"bool", "void", "type", "noreturn",
	"anyerror", "anyopaque",
	"isize", "usize",
	"comptime_int", "comptime_float",
	"f16", "f32", "f64", "f80", "f128",
	"c_char", "c_short", "c_ushort", "c_int", "c_uint",
	"c_long", "c_ulong", "c_longlong", "c_ulonglong", "c_longdouble",
}

// Renamer maps original identifiers to short names. State is scoped to one
// minification run; a fresh Renamer starts every run.
type Renamer struct {
	table  map[string]string
	supply int
}

func NewRenamer() *Renamer {
	r := &Renamer{table: make(map[string]string, len(reserved))}
	for _, name := range reserved {
		r.table[name] = name
	}

	return r
}

// Rename returns the short name for original, assigning a fresh one on first
// sight. Sized integer type names (i32, u7, ...) pass through untouched and
// untabled: every spelling is its own type and must survive verbatim.
func (r *Renamer) Rename(original string) string {
	if short, ok := r.table[original]; ok {
		return short
	}
	if isSizedIntType(original) {
		return original
	}

	short := r.fresh()
	r.table[original] = short

	return short
}

// fresh advances the supply to the next usable candidate. Candidates that
// spell a keyword or a reserved identifier are skipped; they can only show up
// once the supply has moved past the 52 single letters.
func (r *Renamer) fresh() string {
	for {
		name := nameAt(r.supply)
		r.supply++
		if token.Lookup(name) != token.IDENT {
			continue
		}
		if r.table[name] == name {
			continue
		}

		return name
	}
}

// nameAt spells the n-th candidate: the 52 single letters first, then
// two-letter combinations, and so on.
func nameAt(n int) string {
	var buf []byte
	for {
		buf = append([]byte{letters[n%len(letters)]}, buf...)
		n = n/len(letters) - 1
		if n < 0 {
			return string(buf)
		}
	}
}

func isSizedIntType(name string) bool {
	if len(name) < 2 || (name[0] != 'i' && name[0] != 'u') {
		return false
	}
	for _, c := range name[1:] {
		if !('0' <= c && c <= '9') {
			return false
		}
	}

	return true
}
