package evalexpr

import "strconv"

// ValueType identifies the kind of a Value. It exists mainly for error
// reporting and coercion checks; most callers only need the typed accessors
// on Value.
type ValueType uint8

const (
	// Number is not a distinct Value kind. It is used only in error messages
	// for operations that accept either Int or Float.
	Number ValueType = iota
	String
	Int
	Float
	Boolean
	Tuple
	Empty
)

func (t ValueType) String() string {
	switch t {
	case Number:
		return "Number"
	case String:
		return "String"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case Tuple:
		return "Tuple"
	case Empty:
		return "Empty"
	default:
		return "ValueType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a tagged union of the six value kinds a compiled expression can
// produce: String, Int, Float, Boolean, Tuple, and Empty. A Value is plain
// data, immutable by convention and cheap to copy except for its Tuple
// payload, which is shared by reference between copies.
type Value struct {
	kind ValueType
	str  string
	i    int64
	f    float64
	b    bool
	tup  []Value
}

// EmptyValue is the unique Empty value. It carries no payload and is equal
// only to itself.
var EmptyValue = Value{kind: Empty}

// StringValue constructs a String value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// IntValue constructs an Int value.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue constructs a Float value.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// BooleanValue constructs a Boolean value.
func BooleanValue(b bool) Value { return Value{kind: Boolean, b: b} }

// TupleValue constructs a Tuple value from an ordered sequence of elements.
// The slice is retained by reference; callers should not mutate it after
// passing it to TupleValue.
func TupleValue(elems []Value) Value { return Value{kind: Tuple, tup: elems} }

// Type returns the kind of v.
func (v Value) Type() ValueType { return v.kind }

// IsEmpty reports whether v is the Empty value.
func (v Value) IsEmpty() bool { return v.kind == Empty }

// AsString returns v's payload if v is a String, else an ExpectedTypeError.
func (v Value) AsString() (string, error) {
	if v.kind != String {
		return "", &ExpectedTypeError{Expected: String, Actual: v.kind}
	}
	return v.str, nil
}

// AsInt returns v's payload if v is an Int, else an ExpectedTypeError.
func (v Value) AsInt() (int64, error) {
	if v.kind != Int {
		return 0, &ExpectedTypeError{Expected: Int, Actual: v.kind}
	}
	return v.i, nil
}

// AsFloat returns v's payload if v is a Float, else an ExpectedTypeError.
func (v Value) AsFloat() (float64, error) {
	if v.kind != Float {
		return 0, &ExpectedTypeError{Expected: Float, Actual: v.kind}
	}
	return v.f, nil
}

// AsBoolean returns v's payload if v is a Boolean, else an ExpectedTypeError.
func (v Value) AsBoolean() (bool, error) {
	if v.kind != Boolean {
		return false, &ExpectedTypeError{Expected: Boolean, Actual: v.kind}
	}
	return v.b, nil
}

// AsTuple returns v's payload if v is a Tuple, else an ExpectedTypeError.
func (v Value) AsTuple() ([]Value, error) {
	if v.kind != Tuple {
		return nil, &ExpectedTypeError{Expected: Tuple, Actual: v.kind}
	}
	return v.tup, nil
}

// AsEmpty returns nil if v is Empty, else an ExpectedTypeError.
func (v Value) AsEmpty() error {
	if v.kind != Empty {
		return &ExpectedTypeError{Expected: Empty, Actual: v.kind}
	}
	return nil
}

// AsNumber returns v as a float64 if v is an Int or a Float, else an
// ExpectedTypeError naming Number as the expected type.
func (v Value) AsNumber() (float64, error) {
	switch v.kind {
	case Int:
		return float64(v.i), nil
	case Float:
		return v.f, nil
	default:
		return 0, &ExpectedTypeError{Expected: Number, Actual: v.kind}
	}
}

// IsNumber reports whether v is an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == Int || v.kind == Float }

// Equal reports whether v and other are structurally equal. Numeric kinds do
// not compare equal across kinds: IntValue(1) is not Equal to FloatValue(1).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case String:
		return v.str == other.str
	case Int:
		return v.i == other.i
	case Float:
		return v.f == other.f
	case Boolean:
		return v.b == other.b
	case Empty:
		return true
	case Tuple:
		if len(v.tup) != len(other.tup) {
			return false
		}
		for i := range v.tup {
			if !v.tup[i].Equal(other.tup[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v for diagnostics. It is not parseable as an expression for
// every kind (in particular, String values are not re-quoted).
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.str
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.b)
	case Empty:
		return "()"
	case Tuple:
		s := "("
		for i, e := range v.tup {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + ")"
	default:
		return "<invalid value>"
	}
}

// numericCoerce coerces two numeric values per the promotion rule: if either
// operand is Float, both coerce to Float and the result type is Float;
// otherwise both are Int and the result type is Int.
func numericCoerce(a, b Value) (af, bf float64, isFloat bool, err error) {
	if a.kind != Int && a.kind != Float {
		return 0, 0, false, &ExpectedTypeError{Expected: Number, Actual: a.kind}
	}
	if b.kind != Int && b.kind != Float {
		return 0, 0, false, &ExpectedTypeError{Expected: Number, Actual: b.kind}
	}
	isFloat = a.kind == Float || b.kind == Float
	af, _ = a.AsNumber()
	bf, _ = b.AsNumber()
	return af, bf, isFloat, nil
}
