package flux

import (
	"fmt"
	"strings"
)

// ParseError is a non-recoverable-to-the-caller diagnostic raised while
// building the AST. The parser itself recovers internally (see
// synchronize in parser.go) so that one ParseError doesn't abort the
// whole pass; Parse collects every one it finds. Error() matches
// spec.md §7's required prefix exactly; Line/Col are carried alongside
// for the caret snippet WrapError renders underneath it.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at line %d: %s", e.Line, e.Msg)
}

// RuntimeError is raised by the evaluator. Line/Col identify the AST
// node being evaluated when the failure occurred. Error() matches
// spec.md §7's required "Runtime error: " prefix.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s", e.Msg)
}

// EnableColor turns on ANSI-red rendering of the one-line message inside
// WrapError. Off by default (file mode); cmd/flux turns it on only for
// the REPL, which it enters whenever no script argument is given. Grounded on the teacher's
// printer.go EnableColor/colorize pattern: raw escape codes, no color
// library, since the teacher itself hand-rolls this.
var EnableColor = false

const ansiRed = "\033[31m"
const ansiReset = "\033[0m"

func colorizeRed(s string) string {
	if !EnableColor {
		return s
	}
	return ansiRed + s + ansiReset
}

// WrapError renders any of LexError/ParseError/RuntimeError as a one-line
// message followed by a caret-annotated source snippet, in the style
// grounded on the teacher's errors.go. name identifies the source (a
// filename, or "<repl>" for REPL input). It returns just err.Error()
// unaffected by name/src if err isn't one of the three known diagnostic
// types; if line is out of range of src, the message is followed only by
// an "in NAME" line, with no snippet.
func WrapError(err error, name, src string) string {
	var line, col int
	switch e := err.(type) {
	case *LexError:
		line, col = e.Line, e.Col
	case *ParseError:
		line, col = e.Line, e.Col
	case *RuntimeError:
		line, col = e.Line, e.Col
	default:
		return err.Error()
	}
	return colorizeRed(err.Error()) + "\n" + snippet(src, line, col, name)
}

// snippet renders up to one line of context above and below the error
// line, with a caret placed under the offending column.
func snippet(src string, line, col int, name string) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return fmt.Sprintf("  in %s", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  in %s\n", name)

	numWidth := len(fmt.Sprintf("%d", line+1))

	writeLine := func(n int) {
		fmt.Fprintf(&b, "  %*d | %s\n", numWidth, n, lines[n-1])
	}

	if line > 1 {
		writeLine(line - 1)
	}
	writeLine(line)

	caretPad := strings.Repeat(" ", col-1)
	fmt.Fprintf(&b, "  %*s | %s^\n", numWidth, "", caretPad)

	if line < len(lines) {
		writeLine(line + 1)
	}

	return strings.TrimRight(b.String(), "\n")
}
