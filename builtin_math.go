package stackr

import "math"

func mathBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"+", "n n -- n", "Add two numbers.", "1 2 +", arith[S](func(b, a float32) float32 { return b + a })},
		{"-", "n n -- n", "Subtract the top number from the one below it.", "5 3 -", arith[S](func(b, a float32) float32 { return b - a })},
		{"*", "n n -- n", "Multiply two numbers.", "4 2 *", arith[S](func(b, a float32) float32 { return b * a })},
		{"/", "n n -- n", "Divide the top number by the one below it.", "2 6 /", opDivide[S]},
		{"%", "n n -- n", "The remainder of the top number divided by the one below it.", "2 10 %", opModulo[S]},
		{"int", "n -- n", "Truncates a number to an integer.", "1.3 int", opInt[S]},
		{"concat", "string string -- string", "Concatenates two strings.", `"hello" " world" concat`, opConcat[S]},
	}
}

// popNumbers pops the top number, then the one below it.
func popNumbers[S any](e *Engine[S]) (top, next float32, err error) {
	if top, err = e.PopNumber(); err == nil {
		next, err = e.PopNumber()
	}
	return top, next, err
}

// arith builds a word from an operation on the deeper operand b and the top
// operand a.
func arith[S any](op func(b, a float32) float32) Builtin[S] {
	return func(e *Engine[S]) error {
		a, b, err := popNumbers(e)
		if err != nil {
			return err
		}
		e.PushNumber(op(b, a))
		return nil
	}
}

func opDivide[S any](e *Engine[S]) error {
	top, next, err := popNumbers(e)
	if err != nil {
		return err
	}
	if next == 0 {
		return e.Errorf(ErrDivisionByZero, "Division by zero")
	}
	e.PushNumber(top / next)
	return nil
}

func opModulo[S any](e *Engine[S]) error {
	top, next, err := popNumbers(e)
	if err != nil {
		return err
	}
	e.PushNumber(float32(math.Mod(float64(top), float64(next))))
	return nil
}

func opInt[S any](e *Engine[S]) error {
	n, err := e.PopNumber()
	if err != nil {
		return err
	}
	e.PushNumber(float32(math.Trunc(float64(n))))
	return nil
}

func opConcat[S any](e *Engine[S]) error {
	b, err := e.PopString()
	if err != nil {
		return err
	}
	a, err := e.PopString()
	if err != nil {
		return err
	}
	e.PushString(a + b)
	return nil
}
