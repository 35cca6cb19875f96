package linecalc

import (
	"strconv"
	"strings"
)

type token struct {
	ch   byte
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + string(t.ch) + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenDigit is a single decimal digit.
	tokenDigit
	// tokenLetter is a single ASCII letter, part of a function name.
	tokenLetter
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an opening parenthesis.
	tokenOpen
	// tokenClose is a closing parenthesis.
	tokenClose
	// tokenSep is the function argument separator, a comma.
	tokenSep
	// tokenPoint is a decimal point.
	tokenPoint
	// tokenOther is any character outside the expression alphabet. The
	// validator rejects these before any parsing happens.
	tokenOther
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenDigit:
		return "Digit"
	case tokenLetter:
		return "Letter"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	case tokenPoint:
		return "Point"
	case tokenOther:
		return "Other"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the characters which are considered to be binary
// operators. Both / and : denote division.
const Operators = "+-*/:%^"

func isOperator(ch byte) bool {
	return strings.IndexByte(Operators, ch) >= 0
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// cursor is the parse position into one line of input. It is the only mutable
// parse state; every grammar routine threads the same cursor and it never
// moves backward.
type cursor struct {
	src string
	pos int
}

// classify assigns a token kind to a single character.
func classify(ch byte, pos int) token {
	t := token{ch: ch, pos: pos}
	switch {
	case isDigit(ch):
		t.kind = tokenDigit
	case isLetter(ch):
		t.kind = tokenLetter
	case isOperator(ch):
		t.kind = tokenOp
	case ch == '(':
		t.kind = tokenOpen
	case ch == ')':
		t.kind = tokenClose
	case ch == ',':
		t.kind = tokenSep
	case ch == '.':
		t.kind = tokenPoint
	default:
		t.kind = tokenOther
	}
	return t
}

// peek classifies the next significant character without consuming it.
// Spaces are skipped; at the end of the line the result is an EOF token.
func (c *cursor) peek() token {
	i := c.pos
	for i < len(c.src) && c.src[i] == ' ' {
		i++
	}
	if i >= len(c.src) {
		return token{kind: tokenEOF, pos: i}
	}
	return classify(c.src[i], i)
}

// next returns the next significant token and advances the cursor past it.
func (c *cursor) next() token {
	t := c.peek()
	if t.kind == tokenEOF {
		c.pos = t.pos
	} else {
		c.pos = t.pos + 1
	}
	return t
}

// scanNumber consumes the maximal digit and point run starting at the current
// position and returns its text. The validator guarantees the run is a
// well-formed literal before evaluation starts.
func (c *cursor) scanNumber() string {
	start := c.pos
	for c.pos < len(c.src) {
		ch := c.src[c.pos]
		if !isDigit(ch) && ch != '.' {
			break
		}
		c.pos++
	}
	return c.src[start:c.pos]
}

// scanName consumes the maximal letter run starting at the current position
// and returns its text.
func (c *cursor) scanName() string {
	start := c.pos
	for c.pos < len(c.src) && isLetter(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}
