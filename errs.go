package linecalc

import (
	"errors"
	"strconv"
)

// ErrEmptyLine is the sentinel returned by Validate and EvalString for a
// blank line. It is not a failure: interactive callers treat it as the end of
// the session.
var ErrEmptyLine = errors.New("empty line")

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the character that caused the error.
	Pos() int
}

// Kind classifies a failure for callers that do not care about the concrete
// error type.
type Kind int

const (
	// KindInvalidInput marks input the validator (or, defensively, the
	// evaluator) rejected. The expected caller response is to reprompt.
	KindInvalidInput Kind = iota
	// KindUndefinedResult marks a domain guard violation discovered during
	// evaluation, such as sqrt(-1).
	KindUndefinedResult
	// KindUnresolvedFunction marks a function name that did not resolve at
	// evaluation time. It cannot occur if the validator ran first.
	KindUnresolvedFunction
	// KindInternal marks errors that are none of the above.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindUndefinedResult:
		return "UndefinedResult"
	case KindUnresolvedFunction:
		return "UnresolvedFunction"
	case KindInternal:
		return "Internal"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Classify maps an error from Validate or EvalString to its failure kind.
func Classify(err error) Kind {
	var (
		de *DomainError
		ue *UnknownFuncError
		ie InputError
	)
	switch {
	case errors.As(err, &de):
		return KindUndefinedResult
	case errors.As(err, &ue):
		return KindUnresolvedFunction
	case errors.As(err, &ie):
		return KindInvalidInput
	}
	return KindInternal
}

// LengthError indicates input at or beyond the configured maximum length.
type LengthError struct {
	// Len is the length of the rejected input.
	Len int
	// Max is the configured limit.
	Max int
}

func (err *LengthError) Error() string {
	return "input of " + strconv.Itoa(err.Len) + " characters exceeds limit of " + strconv.Itoa(err.Max)
}

func (err *LengthError) Pos() int {
	return err.Max
}

// CharError indicates a character outside the expression alphabet.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char byte
}

func (err *CharError) Error() string {
	return errpos(err.Col, "illegal character "+strconv.QuoteRune(rune(err.Char)))
}

func (err *CharError) Pos() int {
	return err.Col
}

// BoundaryError indicates a character that may not begin or end an
// expression, such as a leading space or a trailing operator.
type BoundaryError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char byte
	// Leading is whether the character begins the expression.
	Leading bool
}

func (err *BoundaryError) Error() string {
	s := "end"
	if err.Leading {
		s = "begin"
	}
	return errpos(err.Col, "expression cannot "+s+" with "+strconv.QuoteRune(rune(err.Char)))
}

func (err *BoundaryError) Pos() int {
	return err.Col
}

// OperandError indicates an expression with no numeric operand anywhere,
// such as one made only of operators or only of letters.
type OperandError struct {
	// Col is the position of the error, always 1.
	Col int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "expression has no numeric operand")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// PairError indicates two adjacent characters that can never legally appear
// next to each other, such as doubled operators or empty parentheses.
type PairError struct {
	// Col is the position of the second character of the pair.
	Col int
	// Pair is the offending pair.
	Pair string
}

func (err *PairError) Error() string {
	return errpos(err.Col, "illegal sequence "+strconv.Quote(err.Pair))
}

func (err *PairError) Pos() int {
	return err.Col
}

// BracketError indicates unbalanced parentheses.
type BracketError struct {
	// Col is the position of the offending parenthesis, or of the end of the
	// input for an unclosed one.
	Col int
	// Open is whether an opening parenthesis was left unclosed; otherwise a
	// closing parenthesis had no opener.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "opening parenthesis is never closed")
	}
	return errpos(err.Col, "closing parenthesis without opener")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SepError indicates a comma outside a function argument list.
type SepError struct {
	// Col is the position of the comma.
	Col int
}

func (err *SepError) Error() string {
	return errpos(err.Col, "comma outside function call")
}

func (err *SepError) Pos() int {
	return err.Col
}

// DepthError indicates parenthesis nesting beyond the configured maximum,
// which bounds evaluator recursion.
type DepthError struct {
	// Col is the position of the parenthesis that exceeded the limit.
	Col int
	// Max is the configured limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// PointError indicates a second decimal point within one number literal.
type PointError struct {
	// Col is the position of the point.
	Col int
}

func (err *PointError) Error() string {
	return errpos(err.Col, "number has more than one decimal point")
}

func (err *PointError) Pos() int {
	return err.Col
}

// SpaceError indicates a space splitting a number in two.
type SpaceError struct {
	// Col is the position of the space.
	Col int
}

func (err *SpaceError) Error() string {
	return errpos(err.Col, "space between digits")
}

func (err *SpaceError) Pos() int {
	return err.Col
}

// NameError indicates a letter run that is not a recognized function call:
// either the name resolves to nothing, or it is not immediately followed by
// an opening parenthesis.
type NameError struct {
	// Col is the position of the first letter of the run.
	Col int
	// Name is the letter run.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, strconv.Quote(err.Name)+" is not a function call")
}

func (err *NameError) Pos() int {
	return err.Col
}

// CallError indicates a function call with the wrong number of arguments.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the canonical name of the called function.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token the evaluator could not place in the grammar.
// The validator rejects such input first, so this error is defensive.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Char is the unexpected character, or 0 at end of input.
	Char byte
}

func (err *SyntaxError) Error() string {
	if err.Char == 0 {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected "+strconv.QuoteRune(rune(err.Char)))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// UnknownFuncError indicates a name that did not resolve in the function
// catalog at evaluation time. The validator resolves every name before
// evaluation starts, so this error is defensive.
type UnknownFuncError struct {
	// Col is the position of the name.
	Col int
	// Name is the unresolved name.
	Name string
}

func (err *UnknownFuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFuncError) Pos() int {
	return err.Col
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is the canonical name of the function, or the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LengthError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*BoundaryError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*PairError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SepError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*PointError)(nil)
	_ InputError = (*SpaceError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*UnknownFuncError)(nil)
)
