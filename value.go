package stackr

import "strconv"

// ValueKind distinguishes the two kinds of Value.
type ValueKind uint8

// Value kinds; the zero ValueKind is not a valid value.
const (
	NumberValue ValueKind = iota + 1
	StringValue
)

// Value is an immutable number or string.
type Value struct {
	Kind   ValueKind
	Number float32
	String string
}

// Num returns a number Value.
func Num(n float32) Value { return Value{Kind: NumberValue, Number: n} }

// Str returns a string Value.
func Str(s string) Value { return Value{Kind: StringValue, String: s} }

// Text returns the value as printed by the print word: numbers in their
// shortest form, strings as they are.
func (v Value) Text() string {
	switch v.Kind {
	case NumberValue:
		return formatNumber(v.Number)
	case StringValue:
		return v.String
	}
	return ""
}

// Literal returns the value as it would be written in source.
func (v Value) Literal() string {
	if v.Kind == StringValue {
		return `"` + v.String + `"`
	}
	return v.Text()
}

func formatNumber(n float32) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 32)
}

// StackValue is either an Address or a Value; it is the only thing that lives
// on the stack. StackValues are comparable with ==.
type StackValue struct {
	Addr  Address
	Value Value
}

// AddressValue returns a StackValue holding an address.
func AddressValue(addr Address) StackValue { return StackValue{Addr: addr} }

// NumberValueOf returns a StackValue holding a number.
func NumberValueOf(n float32) StackValue { return StackValue{Value: Num(n)} }

// StringValueOf returns a StackValue holding a string.
func StringValueOf(s string) StackValue { return StackValue{Value: Str(s)} }

// IsAddress returns true if the value holds an address.
func (sv StackValue) IsAddress() bool { return sv.Addr != 0 }
