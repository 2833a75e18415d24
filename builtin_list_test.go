package racket

import "testing"

func TestListConstruction(t *testing.T) {
	wantOutputs(t, "(list 1 2 3)", "'(1 2 3)")
	wantOutputs(t, "(list)", "'()")
	wantOutputs(t, "(cons 1 empty)", "'(1)")
	wantOutputs(t, "(cons 1 (cons 2 empty))", "'(1 2)")
	wantOutputs(t, "(append '(1 2) '(3) empty)", "'(1 2 3)")
	wantOutputs(t, "(append)", "'()")
	wantOutputs(t, "(make-list 3 'x)", "'('x 'x 'x)")
	wantOutputs(t, "(make-list 0 1)", "'()")
}

func TestConsSecondArgument(t *testing.T) {
	wantRuntimeError(t, "(cons 1 2)",
		ErrArgumentType, "cons: second argument must be a list, but received 1 and 2")
}

func TestListSelectors(t *testing.T) {
	wantOutputs(t, "(first '(1 2 3))", "1")
	wantOutputs(t, "(rest '(1 2 3))", "'(2 3)")
	wantOutputs(t, "(second '(1 2 3))", "2")
	wantOutputs(t, "(third '(1 2 3))", "3")
	wantOutputs(t, "(eighth '(1 2 3 4 5 6 7 8))", "8")
	wantRuntimeError(t, "(first empty)",
		ErrArgumentType, "first: expects a non-empty list, given '()")
	wantRuntimeError(t, "(rest empty)",
		ErrArgumentType, "rest: expects a non-empty list, given '()")
	wantRuntimeError(t, "(third '(1 2))",
		ErrArgumentType, "third: expects a list with 3 or more elements, given '(1 2)")
}

func TestListPredicates(t *testing.T) {
	wantOutputs(t, "(empty? empty)", "#t")
	wantOutputs(t, "(empty? '(1))", "#f")
	wantOutputs(t, "(empty? 5)", "#f")
	wantOutputs(t, "(null? null)", "#t")
	wantOutputs(t, "(cons? '(1))", "#t")
	wantOutputs(t, "(cons? empty)", "#f")
	wantOutputs(t, "(list? empty)", "#t")
	wantOutputs(t, "(list? '(1 2))", "#t")
	wantOutputs(t, "(list? 5)", "#f")
}

func TestListOperations(t *testing.T) {
	wantOutputs(t, "(length '(1 2 3))", "3")
	wantOutputs(t, "(length empty)", "0")
	wantOutputs(t, "(reverse '(1 2 3))", "'(3 2 1)")
	wantOutputs(t, "(reverse empty)", "'()")
	wantOutputs(t, "(member 2 '(1 2 3))", "#t")
	wantOutputs(t, "(member? 9 '(1 2 3))", "#f")
	wantOutputs(t, `(member "a" (list "a" "b"))`, "#t")
}

func TestListsAreImmutable(t *testing.T) {
	src := `
(define xs '(1 2 3))
(reverse xs)
xs`
	wantOutputs(t, src, "'(3 2 1)", "'(1 2 3)")
}

func TestNestedQuotedData(t *testing.T) {
	wantOutputs(t, "'(1 (2 3) red)", "'(1 '(2 3) 'red)")
	wantOutputs(t, "(first '((a b) c))", "'('a 'b)")
}
