package stackr

import (
	"errors"
	"fmt"
)

// Error kinds; every error returned by an Engine is an *Error that unwraps to
// one of these, or to an error returned by a host Builtin.
var (
	ErrUnclosedString     = errors.New("unclosed string")
	ErrNoMoreInstructions = errors.New("no more instructions")
	ErrAddressNotFound    = errors.New("address not found")
	ErrUnknownAddress     = errors.New("unknown address")
	ErrUnsupportedGet     = errors.New("unsupported get")
	ErrExpectedNumber     = errors.New("expected a number")
	ErrExpectedBoolean    = errors.New("expected a boolean")
	ErrExpectedString     = errors.New("expected a string")
	ErrExpectedAddress    = errors.New("expected an address")
	ErrStackEmpty         = errors.New("stack is empty")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrRotnNegative       = errors.New("negative rotn index")
	ErrRotnRange          = errors.New("rotn index out of range")
	ErrEndNotFound        = errors.New("end not found")
	ErrLoopNotFound       = errors.New("loop not found")
	ErrBeginNotFound      = errors.New("begin not found")
	ErrNoTerminator       = errors.New("compiler terminator not found")
	ErrMemLimit           = errors.New("memory limit exceeded")
)

// Error is a failure to load or run code, located at the instruction that
// caused it.
type Error struct {
	Kind     error
	Message  string
	Location Location
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: %v", err.Location, err.Message)
}

// Unwrap returns the error's kind.
func (err *Error) Unwrap() error { return err.Kind }

// Errorf returns an *Error of the given kind located at the current
// instruction; host builtins may use it to raise their own errors.
func (e *Engine[S]) Errorf(kind error, mess string, args ...interface{}) *Error {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	return &Error{Kind: kind, Message: mess, Location: e.CurrentLocation()}
}

// locate returns err as an *Error, wrapping any other error at the current
// location.
func (e *Engine[S]) locate(err error) error {
	var located *Error
	if err == nil || errors.As(err, &located) {
		return err
	}
	return &Error{Kind: err, Message: err.Error(), Location: e.CurrentLocation()}
}
