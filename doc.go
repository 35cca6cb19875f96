// Package linecalc implements a line-oriented arithmetic calculator.
//
// One line of text is one expression. A line is first validated as a whole
// (character set, operator placement, bracket balance, decimal points,
// function names), then evaluated in a single recursive descent without
// building a syntax tree. Function names are case-insensitive and most have
// several spellings: "tg(0)" and "TAN(0)" mean the same thing.
//
// A blank line is not an error; it is the end-of-session sentinel ErrEmptyLine
// that interactive callers use as their termination condition.
package linecalc
