package linecalc

import "strings"

// Validate runs every string-level check on one line of input, before any
// parsing. It returns nil for a well-formed expression, ErrEmptyLine for a
// blank line, and an InputError describing the first violated check
// otherwise. A single trailing newline is tolerated.
func Validate(src string, opts ...Option) error {
	return validate(trimLine(src), defaultConfig().with(opts))
}

// trimLine strips one trailing newline so callers can pass lines straight
// from a reader.
func trimLine(src string) string {
	src = strings.TrimSuffix(src, "\n")
	return strings.TrimSuffix(src, "\r")
}

// validate applies the checks in a fixed order. The order does not change
// which inputs are accepted, only which error is reported first.
func validate(src string, cfg config) error {
	if strings.TrimSpace(src) == "" {
		return ErrEmptyLine
	}
	if len(src) >= cfg.maxLen {
		return &LengthError{Len: len(src), Max: cfg.maxLen}
	}
	if err := checkBounds(src); err != nil {
		return err
	}
	if err := checkCharset(src); err != nil {
		return err
	}
	if err := checkOperands(src); err != nil {
		return err
	}
	if err := checkPairs(src); err != nil {
		return err
	}
	if err := checkBrackets(src, cfg.maxDepth); err != nil {
		return err
	}
	if err := checkPoints(src); err != nil {
		return err
	}
	if err := checkSpaces(src); err != nil {
		return err
	}
	return checkNames(src)
}

// checkBounds rejects characters that cannot begin or end an expression. A
// minus is the only operator that may open a line; nothing but a digit,
// letter, or parenthesis may close one.
func checkBounds(src string) error {
	switch ch := src[0]; {
	case ch == ' ',
		isOperator(ch) && ch != '-',
		ch == '.', ch == ')', ch == ',':
		return &BoundaryError{Col: 1, Char: ch, Leading: true}
	}
	i := len(src) - 1
	for i > 0 && src[i] == ' ' {
		i--
	}
	switch ch := src[i]; {
	case isOperator(ch), ch == '.', ch == '(', ch == ',':
		return &BoundaryError{Col: i + 1, Char: ch}
	}
	return nil
}

// checkCharset rejects any character outside the expression alphabet:
// digits, ASCII letters, the operators, parentheses, point, comma, space.
func checkCharset(src string) error {
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if isDigit(ch) || isLetter(ch) || isOperator(ch) || strings.IndexByte(".(), ", ch) >= 0 {
			continue
		}
		return &CharError{Col: i + 1, Char: ch}
	}
	return nil
}

// checkOperands rejects degenerate content. Every well-formed expression
// bottoms out at a number literal, so a line with no digit at all (only
// operators, or only letters) can never evaluate. Letter runs that resolve
// and open a call are exempt here: their empty argument lists are rejected
// as adjacency violations, which names the actual problem.
func checkOperands(src string) error {
	for i := 0; i < len(src); i++ {
		if isDigit(src[i]) {
			return nil
		}
	}
	for i := 0; i < len(src); {
		if !isLetter(src[i]) {
			i++
			continue
		}
		j := i
		for j < len(src) && isLetter(src[j]) {
			j++
		}
		if _, ok := Resolve(src[i:j]); !ok || j >= len(src) || src[j] != '(' {
			return &OperandError{Col: 1}
		}
		i = j
	}
	return nil
}

// checkPairs applies the adjacency blacklist. Decimal points and doubled
// spaces are judged against their immediate neighbors; the structural rules
// look through spaces, so "2+ +2" is as doubled as "2++2".
func checkPairs(src string) error {
	for i := 0; i+1 < len(src); i++ {
		a, b := src[i], src[i+1]
		if a == ' ' && b == ' ' {
			return &PairError{Col: i + 2, Pair: "  "}
		}
		if (a == '.' && !isDigit(b)) || (b == '.' && !isDigit(a)) {
			return &PairError{Col: i + 2, Pair: src[i : i+2]}
		}
	}
	prev := byte(0)
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == ' ' {
			continue
		}
		if prev != 0 && forbiddenPair(prev, ch) {
			return &PairError{Col: i + 1, Pair: string(prev) + string(ch)}
		}
		prev = ch
	}
	return nil
}

// forbiddenPair reports whether a may never be followed by b, spaces aside:
// doubled operators, operators against a closing parenthesis or comma, empty
// parentheses, empty argument slots, and the digit-parenthesis adjacencies
// that would read as implicit multiplication, which the grammar does not
// support.
func forbiddenPair(a, b byte) bool {
	switch {
	case isOperator(a):
		return isOperator(b) || b == ')' || b == ','
	case a == '(', a == ',':
		return (isOperator(b) && b != '-') || b == ')' || b == ','
	case a == ')':
		return isDigit(b) || isLetter(b) || b == '('
	case isDigit(a):
		return b == '(' || isLetter(b)
	}
	return false
}

// checkBrackets verifies parenthesis balance with a stack walk and caps
// nesting depth so evaluator recursion stays bounded. The stack records
// whether each opener belongs to a function call, which is what makes a
// comma legal inside it.
func checkBrackets(src string, maxDepth int) error {
	type opener struct {
		pos  int
		call bool
	}
	var stack []opener
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			stack = append(stack, opener{pos: i, call: i > 0 && isLetter(src[i-1])})
			if len(stack) > maxDepth {
				return &DepthError{Col: i + 1, Max: maxDepth}
			}
		case ')':
			if len(stack) == 0 {
				return &BracketError{Col: i + 1}
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) == 0 || !stack[len(stack)-1].call {
				return &SepError{Col: i + 1}
			}
		}
	}
	if len(stack) > 0 {
		return &BracketError{Col: stack[len(stack)-1].pos + 1, Open: true}
	}
	return nil
}

// checkPoints allows at most one decimal point per digit run. Points not
// glued to digits on both sides are already gone after the pair checks.
func checkPoints(src string) error {
	seen := false
	for i := 0; i < len(src); i++ {
		switch ch := src[i]; {
		case ch == '.':
			if seen {
				return &PointError{Col: i + 1}
			}
			seen = true
		case !isDigit(ch):
			// An operator or any other structure starts a new literal.
			seen = false
		}
	}
	return nil
}

// checkSpaces rejects a space splitting a digit run in two. Spaces elsewhere,
// e.g. around operators, are fine.
func checkSpaces(src string) error {
	for i := 1; i+1 < len(src); i++ {
		if src[i] == ' ' && isDigit(src[i-1]) && isDigit(src[i+1]) {
			return &SpaceError{Col: i + 1}
		}
	}
	return nil
}

// checkNames requires every letter run to resolve in the function catalog
// and to be immediately followed by an opening parenthesis. Anything else is
// stray letters.
func checkNames(src string) error {
	for i := 0; i < len(src); {
		if !isLetter(src[i]) {
			i++
			continue
		}
		j := i
		for j < len(src) && isLetter(src[j]) {
			j++
		}
		name := src[i:j]
		if _, ok := Resolve(name); !ok || j >= len(src) || src[j] != '(' {
			return &NameError{Col: i + 1, Name: name}
		}
		i = j
	}
	return nil
}
