package racket

import "fmt"

// TestOutcome records one check-expect result. Actual and Expected hold the
// printed forms of both sides; Line and Col point at the check-expect form.
type TestOutcome struct {
	Passed   bool
	Actual   string
	Expected string
	Line     int
	Col      int
}

// String renders the outcome the way the test runner reports it.
func (t *TestOutcome) String() string {
	if t.Passed {
		return fmt.Sprintf("check-expect at %d:%d passed", t.Line, t.Col)
	}
	return fmt.Sprintf("check-expect at %d:%d failed: actual value %s differs from %s, the expected value",
		t.Line, t.Col, t.Actual, t.Expected)
}
