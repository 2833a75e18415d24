// errors.go: runtime error taxonomy and caret-snippet rendering.
//
// The interpreter surfaces three error types: *LexError (lexer.go),
// *SyntaxError (parser.go) and *RuntimeError (below). All carry 1-based
// line/column coordinates. WrapErrorWithSource turns any of them into a
// readable multi-line snippet with a caret pointing at the offending column;
// other errors pass through unchanged.
package racket

import (
	"fmt"
	"strings"
)

// ErrKind classifies runtime failures so callers can react without parsing
// message text.
type ErrKind int

const (
	ErrGeneric ErrKind = iota
	ErrUnboundIdentifier
	ErrNotAProcedure
	ErrArity
	ErrArgumentType
	ErrNoMatchingClause
	ErrQuestionResult
	ErrDivisionByZero
	ErrStructureType
	ErrRecursionLimit
)

// RuntimeError represents an evaluation-time failure with a source location.
// Line/Col are 1-based.
type RuntimeError struct {
	Line int
	Col  int
	Kind ErrKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

/* ===========================
   message builders
   =========================== */

// arityMsg renders "name: expects ..., but found ..." exactly the way the
// student language words it. upper < 0 means no upper bound.
func arityMsg(name string, lower, upper, got int) string {
	var expects string
	if upper < 0 {
		s := ""
		if lower > 1 {
			s = "s"
		}
		expects = fmt.Sprintf("expects at least %d argument%s", lower, s)
	} else {
		only := ""
		if lower == 1 {
			only = "only "
		}
		s := "s"
		if lower == 1 {
			s = ""
		}
		expects = fmt.Sprintf("expects %s%d argument%s", only, lower, s)
	}
	found := "found none"
	if got > 0 {
		found = fmt.Sprintf("found %d", got)
	}
	return fmt.Sprintf("%s: %s, but %s", name, expects, found)
}

// argTypeMsg renders "name: expects a <type>[ as <n>th argument], given
// <value>". idx is 0-based; pass idx < 0 for single-argument procedures.
func argTypeMsg(name, expected string, idx int, given Value) string {
	pos := ""
	if idx >= 0 {
		pos = fmt.Sprintf(" as %s argument", ordinal(idx+1))
	}
	return fmt.Sprintf("%s: expects a %s%s, given %s", name, expected, pos, FormatValue(given))
}

func ordinal(n int) string {
	suffix := "th"
	if n < 4 || n >= 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// IsIncomplete reports whether err indicates that the source ended in the
// middle of a form (unclosed parenthesis, string or block comment). The REPL
// uses it to keep reading continuation lines instead of reporting an error.
func IsIncomplete(err error) bool {
	e, ok := err.(*LexError)
	if !ok {
		return false
	}
	switch {
	case strings.HasPrefix(e.Msg, "read-syntax: expected a `") && strings.Contains(e.Msg, "` to close `"):
		return true
	case e.Msg == "read-syntax: expected a closing `\"`":
		return true
	case e.Msg == "read-syntax: end of file in `#|` comment":
		return true
	}
	return false
}

/* ===========================
   caret-snippet rendering
   =========================== */

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes this package's error types
// and leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *SyntaxError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "SYNTAX ERROR", srcName, e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettyErrorStringLabeled builds a snippet with a header and a caret. It
// shows at most one previous and one next line when available. Coordinates
// are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
