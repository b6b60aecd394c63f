package evalexpr

import "strconv"

// InputError is an error with position information. Every error produced
// while tokenizing or parsing a source expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune offset of
	// the first rune of the token that caused the error.
	Pos() int
}

// errpos formats an error message with a position prefix, matching the
// convention used throughout this package's error types.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// TokenizeError indicates an unrecognized character or malformed literal
// encountered while tokenizing.
type TokenizeError struct {
	Pos_   int
	Reason string
}

func (err *TokenizeError) Error() string { return errpos(err.Pos_, err.Reason) }
func (err *TokenizeError) Pos() int      { return err.Pos_ }

// UnmatchedQuoteError indicates a string literal with no closing quote.
type UnmatchedQuoteError struct {
	Pos_ int
}

func (err *UnmatchedQuoteError) Error() string { return errpos(err.Pos_, "unmatched quote") }
func (err *UnmatchedQuoteError) Pos() int      { return err.Pos_ }

// UnmatchedPartialTokenError indicates a token in a place where the parser
// cannot use it, such as two adjacent value-producing tokens with no
// operator between them. An operator left dangling at the end of input is
// reported as WrongOperatorArgumentAmountError instead.
type UnmatchedPartialTokenError struct {
	Pos_          int
	First, Second string
}

func (err *UnmatchedPartialTokenError) Error() string {
	if err.Second == "" {
		return errpos(err.Pos_, "unmatched token "+strconv.Quote(err.First))
	}
	return errpos(err.Pos_, "unmatched tokens "+strconv.Quote(err.First)+" and "+strconv.Quote(err.Second))
}
func (err *UnmatchedPartialTokenError) Pos() int { return err.Pos_ }

// UnmatchedRBraceError indicates a closing brace with no matching open brace.
type UnmatchedRBraceError struct {
	Pos_ int
}

func (err *UnmatchedRBraceError) Error() string { return errpos(err.Pos_, "unmatched )") }
func (err *UnmatchedRBraceError) Pos() int       { return err.Pos_ }

// MissingOperatorOutsideOfBraceError indicates an open brace with no
// matching close brace before the end of input.
type MissingOperatorOutsideOfBraceError struct {
	Pos_ int
}

func (err *MissingOperatorOutsideOfBraceError) Error() string {
	return errpos(err.Pos_, "missing closing ) before end of input")
}
func (err *MissingOperatorOutsideOfBraceError) Pos() int { return err.Pos_ }

// WrongOperatorArgumentAmountError indicates that an operator was reduced
// with the wrong number of operands, generally because the source ended or
// an enclosing brace closed before the operator found enough operands.
type WrongOperatorArgumentAmountError struct {
	Pos_             int
	Expected, Actual int
}

func (err *WrongOperatorArgumentAmountError) Error() string {
	return errpos(err.Pos_, "operator expected "+strconv.Itoa(err.Expected)+" argument(s), got "+strconv.Itoa(err.Actual))
}
func (err *WrongOperatorArgumentAmountError) Pos() int { return err.Pos_ }

// EmptyExpressionError is reserved: in this implementation, an empty pair of
// parentheses evaluates to Empty and is not an error. It is defined so that
// future versions may use it without breaking the error type set.
type EmptyExpressionError struct {
	Pos_ int
}

func (err *EmptyExpressionError) Error() string { return errpos(err.Pos_, "empty expression") }
func (err *EmptyExpressionError) Pos() int       { return err.Pos_ }

// ExpectedTypeError indicates that a Value of the wrong ValueType was
// supplied where Expected was required.
type ExpectedTypeError struct {
	Expected ValueType
	Actual   ValueType
}

func (err *ExpectedTypeError) Error() string {
	return "expected " + err.Expected.String() + ", got " + err.Actual.String()
}

// ExpectedVariableError indicates that the left operand of an assignment was
// not a variable identifier.
type ExpectedVariableError struct {
	Actual string
}

func (err *ExpectedVariableError) Error() string {
	return "expected a variable identifier on the left of assignment, got " + err.Actual
}

// VariableIdentifierNotFoundError indicates a lookup for a variable that has
// no value in the evaluating Context.
type VariableIdentifierNotFoundError struct {
	Name string
}

func (err *VariableIdentifierNotFoundError) Error() string {
	return "variable identifier not found: " + err.Name
}

// FunctionIdentifierNotFoundError indicates a call to a function that has no
// definition in the evaluating Context.
type FunctionIdentifierNotFoundError struct {
	Name string
}

func (err *FunctionIdentifierNotFoundError) Error() string {
	return "function identifier not found: " + err.Name
}

// ContextNotManipulableError indicates that an expression containing an
// assignment was evaluated against a Context that does not implement
// MutableContext.
type ContextNotManipulableError struct{}

func (err *ContextNotManipulableError) Error() string {
	return "context is not manipulable: assignment requires a mutable context"
}

// WrongFunctionArgumentAmountError indicates a function call whose argument
// did not match the function's declared fixed argument count.
type WrongFunctionArgumentAmountError struct {
	Name             string
	Expected, Actual int
}

func (err *WrongFunctionArgumentAmountError) Error() string {
	return "function " + err.Name + " expected " + strconv.Itoa(err.Expected) + " argument(s), got " + strconv.Itoa(err.Actual)
}

// DivisionError indicates integer division or remainder by zero.
type DivisionError struct {
	Op string
}

func (err *DivisionError) Error() string { return "division by zero in " + err.Op }

// OverflowError indicates that checked integer arithmetic overflowed.
type OverflowError struct {
	Op string
}

func (err *OverflowError) Error() string { return "integer overflow in " + err.Op }

// CustomMessageError is a failure reported by a caller-registered or builtin
// function. It carries only a message; functions that need richer error
// information should define and return their own error type instead.
type CustomMessageError struct {
	Message string
}

func (err *CustomMessageError) Error() string { return err.Message }

// CustomMessage constructs a CustomMessageError. Builtin and user functions
// use it to report domain failures, such as a regular expression that fails
// to compile or a square root of a negative number.
func CustomMessage(message string) error {
	return &CustomMessageError{Message: message}
}
