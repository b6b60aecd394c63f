package evalexpr

import (
	"math"
	"regexp"
	"strings"
	"sync"
)

// Function is a function callable from a compiled expression via nodeCall.
// Functions are ordinary data, stored and looked up through a Context the
// same way variables are; there is no special-cased set of function names
// known to the evaluator itself.
//
// A call always carries exactly one argument expression. Functions that
// logically take more than one argument receive them packed into a Tuple,
// matching how "f(a, b, c)" is actually parsed: the aggregate operator
// builds a 3-element Tuple, which becomes f's single argument.
type Function struct {
	// argCount is the required number of elements when the argument is
	// unpacked by tupleElems, or -1 to accept any number including zero.
	argCount int
	fn       func(Value) (Value, error)
}

// NewFunction wraps fn as a Function that accepts any number of arguments.
// fn is responsible for validating the shape of its argument itself, using
// CustomMessage to report a mismatch.
func NewFunction(fn func(Value) (Value, error)) Function {
	return Function{argCount: -1, fn: fn}
}

// NewFunctionWithArgumentCount wraps fn as a Function that requires exactly
// n arguments. A call with a different number of arguments fails with
// WrongFunctionArgumentAmountError before fn is invoked.
func NewFunctionWithArgumentCount(n int, fn func(Value) (Value, error)) Function {
	return Function{argCount: n, fn: fn}
}

// Call invokes f with arg, which is the already-evaluated value of the call
// node's single child. name is used only to build
// WrongFunctionArgumentAmountError when f has a fixed argument count.
func (f Function) Call(name string, arg Value) (Value, error) {
	if f.fn == nil {
		return Value{}, &FunctionIdentifierNotFoundError{Name: name}
	}
	if f.argCount >= 0 {
		if n := len(tupleElems(arg)); n != f.argCount {
			return Value{}, &WrongFunctionArgumentAmountError{Name: name, Expected: f.argCount, Actual: n}
		}
	}
	return f.fn(arg)
}

// tupleElems returns arg's elements if arg is a Tuple, zero elements if arg
// is Empty (the argument value of a call written with empty parens, "f()"),
// or a single-element slice containing arg otherwise. It lets a builtin
// handle "f()", "f(x)", and "f(a, b)" call shapes uniformly.
func tupleElems(arg Value) []Value {
	switch arg.kind {
	case Tuple:
		return arg.tup
	case Empty:
		return nil
	default:
		return []Value{arg}
	}
}

// RegisterBuiltins registers the standard library of functions (math,
// string, bitwise, and control-flow helpers) into ctx, overwriting any
// existing bindings of the same names.
func RegisterBuiltins(ctx MutableContext) {
	for name, fn := range builtins {
		ctx.SetFunction(name, fn)
	}
}

var builtins = map[string]Function{
	"floor": NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Floor)),
	"ceil":  NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Ceil)),
	"round": NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Round)),
	"sqrt":  NewFunctionWithArgumentCount(1, builtinSqrt),
	"ln":    NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Log)),
	"log2":  NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Log2)),
	"log10": NewFunctionWithArgumentCount(1, builtinUnaryFloat(math.Log10)),
	"abs":   NewFunctionWithArgumentCount(1, builtinAbs),
	"min":   NewFunction(builtinMin),
	"max":   NewFunction(builtinMax),

	"len":                NewFunctionWithArgumentCount(1, builtinLen),
	"str::to_uppercase":  NewFunctionWithArgumentCount(1, builtinUnaryString(strings.ToUpper)),
	"str::to_lowercase":  NewFunctionWithArgumentCount(1, builtinUnaryString(strings.ToLower)),
	"str::trim":          NewFunctionWithArgumentCount(1, builtinUnaryString(strings.TrimSpace)),
	"str::concat":        NewFunction(builtinConcat),
	"str::regex_matches": NewFunctionWithArgumentCount(2, builtinRegexMatches),
	"str::regex_replace": NewFunctionWithArgumentCount(3, builtinRegexReplace),

	"bitand": NewFunctionWithArgumentCount(2, builtinBinaryInt(func(a, b int64) int64 { return a & b })),
	"bitor":  NewFunctionWithArgumentCount(2, builtinBinaryInt(func(a, b int64) int64 { return a | b })),
	"bitxor": NewFunctionWithArgumentCount(2, builtinBinaryInt(func(a, b int64) int64 { return a ^ b })),
	"bitnot": NewFunctionWithArgumentCount(1, builtinBitnot),
	"shl":    NewFunctionWithArgumentCount(2, builtinBinaryInt(func(a, b int64) int64 { return a << uint(b) })),
	"shr":    NewFunctionWithArgumentCount(2, builtinBinaryInt(func(a, b int64) int64 { return a >> uint(b) })),

	"if": NewFunctionWithArgumentCount(3, builtinIf),
}

func builtinUnaryFloat(f func(float64) float64) func(Value) (Value, error) {
	return func(arg Value) (Value, error) {
		v, err := arg.AsNumber()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f(v)), nil
	}
}

func builtinUnaryString(f func(string) string) func(Value) (Value, error) {
	return func(arg Value) (Value, error) {
		s, err := arg.AsString()
		if err != nil {
			return Value{}, err
		}
		return StringValue(f(s)), nil
	}
}

func builtinBinaryInt(f func(a, b int64) int64) func(Value) (Value, error) {
	return func(arg Value) (Value, error) {
		elems := tupleElems(arg)
		a, err := elems[0].AsInt()
		if err != nil {
			return Value{}, err
		}
		b, err := elems[1].AsInt()
		if err != nil {
			return Value{}, err
		}
		return IntValue(f(a, b)), nil
	}
}

func builtinSqrt(arg Value) (Value, error) {
	v, err := arg.AsNumber()
	if err != nil {
		return Value{}, err
	}
	if v < 0 {
		return Value{}, CustomMessage("sqrt of negative number")
	}
	return FloatValue(math.Sqrt(v)), nil
}

func builtinAbs(arg Value) (Value, error) {
	switch arg.kind {
	case Int:
		if arg.i == math.MinInt64 {
			return Value{}, &OverflowError{Op: "abs"}
		}
		if arg.i < 0 {
			return IntValue(-arg.i), nil
		}
		return arg, nil
	case Float:
		return FloatValue(math.Abs(arg.f)), nil
	default:
		return Value{}, &ExpectedTypeError{Expected: Number, Actual: arg.kind}
	}
}

func builtinBitnot(arg Value) (Value, error) {
	v, err := arg.AsInt()
	if err != nil {
		return Value{}, err
	}
	return IntValue(^v), nil
}

func builtinMin(arg Value) (Value, error) {
	return extremum(arg, false)
}

func builtinMax(arg Value) (Value, error) {
	return extremum(arg, true)
}

func extremum(arg Value, wantMax bool) (Value, error) {
	elems := tupleElems(arg)
	if len(elems) == 0 {
		return Value{}, CustomMessage("min/max requires at least one argument")
	}
	best := elems[0]
	bestF, err := best.AsNumber()
	if err != nil {
		return Value{}, err
	}
	for _, e := range elems[1:] {
		f, err := e.AsNumber()
		if err != nil {
			return Value{}, err
		}
		if (wantMax && f > bestF) || (!wantMax && f < bestF) {
			best, bestF = e, f
		}
	}
	return best, nil
}

func builtinLen(arg Value) (Value, error) {
	s, err := arg.AsString()
	if err != nil {
		return Value{}, err
	}
	return IntValue(int64(len([]rune(s)))), nil
}

func builtinConcat(arg Value) (Value, error) {
	var b strings.Builder
	for _, e := range tupleElems(arg) {
		s, err := e.AsString()
		if err != nil {
			return Value{}, err
		}
		b.WriteString(s)
	}
	return StringValue(b.String()), nil
}

// regexCache memoizes compiled patterns across calls and Contexts. Go's
// regexp.Regexp is safe for concurrent use once compiled, so only
// compilation itself needs to be serialized.
var (
	regexMu    sync.Mutex
	regexCache = make(map[string]*regexp.Regexp)
)

func compileRegex(pattern string) (*regexp.Regexp, error) {
	regexMu.Lock()
	defer regexMu.Unlock()
	if re, ok := regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, CustomMessage("invalid regular expression: " + err.Error())
	}
	regexCache[pattern] = re
	return re, nil
}

func builtinRegexMatches(arg Value) (Value, error) {
	elems := tupleElems(arg)
	s, err := elems[0].AsString()
	if err != nil {
		return Value{}, err
	}
	pattern, err := elems[1].AsString()
	if err != nil {
		return Value{}, err
	}
	re, err := compileRegex(pattern)
	if err != nil {
		return Value{}, err
	}
	return BooleanValue(re.MatchString(s)), nil
}

func builtinRegexReplace(arg Value) (Value, error) {
	elems := tupleElems(arg)
	s, err := elems[0].AsString()
	if err != nil {
		return Value{}, err
	}
	pattern, err := elems[1].AsString()
	if err != nil {
		return Value{}, err
	}
	replacement, err := elems[2].AsString()
	if err != nil {
		return Value{}, err
	}
	re, err := compileRegex(pattern)
	if err != nil {
		return Value{}, err
	}
	return StringValue(re.ReplaceAllString(s, replacement)), nil
}

// builtinIf is a plain 3-argument function, not a special form: both the
// "then" and "else" arms are evaluated by the call node before Call is
// invoked, unlike the '&&' and '||' operators, which the evaluator itself
// short-circuits. Callers who need to skip side effects in the untaken arm
// should use '&&'/'||' instead of "if".
func builtinIf(arg Value) (Value, error) {
	elems := tupleElems(arg)
	cond, err := elems[0].AsBoolean()
	if err != nil {
		return Value{}, err
	}
	if cond {
		return elems[1], nil
	}
	return elems[2], nil
}
