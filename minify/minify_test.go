package minify_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jwhear/zig-minifier/driver"
	"github.com/jwhear/zig-minifier/lexer"
	"github.com/jwhear/zig-minifier/minify"
	"github.com/jwhear/zig-minifier/token"
	"github.com/jwhear/zig-minifier/utils"
	"github.com/sebdah/goldie/v2"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}

	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		out, err := minify.Minify(lexer.Lex(string(source)))
		if err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			return
		}

		g := goldie.New(t)
		g.Assert(t, filepath.Base(testfile), []byte(out))
	}
}

func TestMinifyCases(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("../testdata/minify.yaml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	for _, testcase := range utils.ReadTestData(data) {
		out, err := driver.Minify(testcase.Input)

		if want, ok := testcase.Expected["error"]; ok {
			if err == nil {
				t.Errorf("%s: expected error, got %q", testcase.Label, out)
			} else if !strings.Contains(err.Error(), want) {
				t.Errorf("%s: error %q does not mention %q", testcase.Label, err, want)
			}

			continue
		}

		if err != nil {
			t.Errorf("%s: returned error: %v", testcase.Label, err)

			continue
		}
		if want := testcase.Expected["minify"]; out != want {
			t.Errorf("%s: got %q, want %q", testcase.Label, out, want)
		}
	}
}

// TestRetokenize checks the spacing policy end to end: the minified output
// must lex to the same kind sequence as the input, minus dropped comments and
// with re-encoded character literals turning into integers.
func TestRetokenize(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("../testdata/minify.yaml")
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}

	var sources []string
	for _, testcase := range utils.ReadTestData(data) {
		if _, fails := testcase.Expected["error"]; !fails {
			sources = append(sources, testcase.Input)
		}
	}

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatalf("failed to find test files: %v", err)
	}
	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Fatalf("failed to read %s: %v", testfile, err)
		}
		sources = append(sources, string(source))
	}

	for _, source := range sources {
		tokens := lexer.Lex(source)
		out, err := minify.Minify(tokens)
		if err != nil {
			t.Errorf("Minify(%q) returned error: %v", source, err)

			continue
		}

		var want []token.Kind
		for _, tok := range tokens {
			switch tok.Kind {
			case token.DOCCOMMENT, token.CONTAINERDOC:
			case token.CHAR:
				if minify.EncodeChar(tok.Lexeme) != tok.Lexeme {
					want = append(want, token.INTEGER)
				} else {
					want = append(want, token.CHAR)
				}
			default:
				want = append(want, tok.Kind)
			}
		}

		var got []token.Kind
		for _, tok := range lexer.Lex(out) {
			got = append(got, tok.Kind)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("minified %q re-lexes differently (-want +got):\n%s", source, diff)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	t.Parallel()

	out, err := minify.Minify(lexer.Lex("const $ = 1;"))
	var invalidErr minify.InvalidTokenError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("got %v, want InvalidTokenError", err)
	}
	if invalidErr.Line != 1 {
		t.Errorf("Line = %d, want 1", invalidErr.Line)
	}
	if out != "" {
		t.Errorf("failed run produced output %q", out)
	}
}

func TestRunsShareNoState(t *testing.T) {
	t.Parallel()

	const source = "const foo = 1; const bar = foo;"
	first, err := minify.Minify(lexer.Lex(source))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := minify.Minify(lexer.Lex(source))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first != second {
		t.Errorf("runs diverged: %q then %q", first, second)
	}
	if first != "const a=1;const b=a;" {
		t.Errorf("got %q, want %q", first, "const a=1;const b=a;")
	}
}
