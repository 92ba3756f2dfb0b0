// Package evaluator implements the calculator's input engine.
//
// An Evaluator consumes one input token at a time (digits, the decimal point,
// binary and unary operators, "=", "C" and "±") and returns the text the
// calculator should display. Arithmetic is exact decimal arithmetic with ten
// significant digits, rounded half-up.
//
// An Evaluator is not safe for concurrent use. Callers that deliver input from
// more than one goroutine must serialize access themselves.
package evaluator
