package stackr

import (
	"fmt"
	"io"
	"strings"
)

// Push pushes any value onto the stack.
func (e *Engine[S]) Push(val StackValue) { e.stack = append(e.stack, val) }

// PushNumber pushes a number onto the stack.
func (e *Engine[S]) PushNumber(n float32) { e.Push(NumberValueOf(n)) }

// PushString pushes a string onto the stack.
func (e *Engine[S]) PushString(s string) { e.Push(StringValueOf(s)) }

// PushAddress pushes an address onto the stack.
func (e *Engine[S]) PushAddress(addr Address) { e.Push(AddressValue(addr)) }

// PushBool pushes 1 for true, 0 for false.
func (e *Engine[S]) PushBool(b bool) {
	if b {
		e.PushNumber(1)
	} else {
		e.PushNumber(0)
	}
}

// Pop removes and returns the top of the stack.
func (e *Engine[S]) Pop() (StackValue, error) {
	i := len(e.stack) - 1
	if i < 0 {
		return StackValue{}, e.Errorf(ErrStackEmpty, "Stack is empty")
	}
	val := e.stack[i]
	e.stack = e.stack[:i]
	return val, nil
}

// PopNumber pops a number; any other value is still removed.
func (e *Engine[S]) PopNumber() (float32, error) {
	val, err := e.Pop()
	if err != nil {
		return 0, err
	}
	if val.IsAddress() || val.Value.Kind != NumberValue {
		return 0, e.Errorf(ErrExpectedNumber, "Expected a number")
	}
	return val.Value.Number, nil
}

// PopBool pops a number as a boolean, true if it is non-zero.
func (e *Engine[S]) PopBool() (bool, error) {
	val, err := e.Pop()
	if err != nil {
		return false, err
	}
	if val.IsAddress() || val.Value.Kind != NumberValue {
		return false, e.Errorf(ErrExpectedBoolean, "Expected a boolean/number")
	}
	return val.Value.Number != 0, nil
}

// PopString pops a string.
func (e *Engine[S]) PopString() (string, error) {
	val, err := e.Pop()
	if err != nil {
		return "", err
	}
	if val.IsAddress() || val.Value.Kind != StringValue {
		return "", e.Errorf(ErrExpectedString, "Expected a string")
	}
	return val.Value.String, nil
}

// PopAddress pops an address.
func (e *Engine[S]) PopAddress() (Address, error) {
	val, err := e.Pop()
	if err != nil {
		return 0, err
	}
	if !val.IsAddress() {
		return 0, e.Errorf(ErrExpectedAddress, "Expected an address")
	}
	return val.Addr, nil
}

// Stack returns a copy of the stack, bottom first.
func (e *Engine[S]) Stack() []StackValue {
	return append([]StackValue(nil), e.stack...)
}

// Depth returns the number of values on the stack.
func (e *Engine[S]) Depth() int { return len(e.stack) }

// FormatValue returns a stack value as print-stack shows it: numbers as is,
// strings quoted, addresses by name.
func (e *Engine[S]) FormatValue(val StackValue) string {
	if val.IsAddress() {
		return e.Name(val.Addr)
	}
	return val.Value.Literal()
}

func (e *Engine[S]) stackString() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, val := range e.stack {
		sb.WriteString(e.FormatValue(val))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

// WriteStack writes the stack on one line, as print-stack does.
func (e *Engine[S]) WriteStack(w io.Writer) error {
	_, err := fmt.Fprintln(w, e.stackString())
	return err
}
