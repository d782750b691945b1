// Package driver wires the lexer and the minifier together.
package driver

import (
	"fmt"
	"os"

	"github.com/jwhear/zig-minifier/lexer"
	"github.com/jwhear/zig-minifier/minify"
)

// MaxSourceSize bounds a single input file. The rewriting core itself is
// size-agnostic; the limit lives at the I/O boundary.
const MaxSourceSize = 1 << 20

// Minify runs the whole pipeline over one source text.
func Minify(source string) (string, error) {
	out, err := minify.Minify(lexer.Lex(source))
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}

	return out, nil
}

// MinifyFile reads path and minifies its contents.
func MinifyFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}
	if info.Size() > MaxSourceSize {
		return "", fmt.Errorf("%s: source exceeds %d bytes", path, MaxSourceSize)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	return Minify(string(source))
}
