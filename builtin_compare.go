package stackr

func compareBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"==", "any any -- 0|1",
			"Checks if two values are equal. Puts 1 on the stack if they are equal, 0 otherwise.",
			"1 1 ==", equality[S](true)},
		{"!=", "any any -- 0|1",
			"Checks if two values are not equal. Puts 1 on the stack if they are not equal, 0 otherwise.",
			"1 2 !=", equality[S](false)},
		{">", "n n -- 0|1",
			"Checks if the top number is greater than the one below it.",
			"1 2 >", compare[S](func(a, b float32) bool { return a > b })},
		{">=", "n n -- 0|1",
			"Checks if the top number is greater than or equal to the one below it.",
			"1 2 >=", compare[S](func(a, b float32) bool { return a >= b })},
		{"<", "n n -- 0|1",
			"Checks if the top number is less than the one below it.",
			"2 1 <", compare[S](func(a, b float32) bool { return a < b })},
		{"<=", "n n -- 0|1",
			"Checks if the top number is less than or equal to the one below it.",
			"2 1 <=", compare[S](func(a, b float32) bool { return a <= b })},
		{"&&", "n n -- 0|1",
			"Checks if both numbers are true. Puts 1 on the stack if they are, 0 otherwise.",
			"1 1 &&", logic[S](func(a, b bool) bool { return a && b })},
		{"||", "n n -- 0|1",
			"Checks if one of the numbers is true. Puts 1 on the stack if it is, 0 otherwise.",
			"0 1 ||", logic[S](func(a, b bool) bool { return a || b })},
		{"!", "n -- 0|1",
			"Inverts a boolean. Puts 1 on the stack if the value is 0, 0 otherwise.",
			"0 !", opNot[S]},
	}
}

func equality[S any](equal bool) Builtin[S] {
	return func(e *Engine[S]) error {
		a, err := e.Pop()
		if err != nil {
			return err
		}
		b, err := e.Pop()
		if err != nil {
			return err
		}
		e.PushBool((a == b) == equal)
		return nil
	}
}

// compare builds a word from a relation between the top number a and the one
// below it, b.
func compare[S any](rel func(a, b float32) bool) Builtin[S] {
	return func(e *Engine[S]) error {
		a, b, err := popNumbers(e)
		if err != nil {
			return err
		}
		e.PushBool(rel(a, b))
		return nil
	}
}

func logic[S any](op func(a, b bool) bool) Builtin[S] {
	return func(e *Engine[S]) error {
		a, err := e.PopBool()
		if err != nil {
			return err
		}
		b, err := e.PopBool()
		if err != nil {
			return err
		}
		e.PushBool(op(a, b))
		return nil
	}
}

func opNot[S any](e *Engine[S]) error {
	a, err := e.PopBool()
	if err != nil {
		return err
	}
	e.PushBool(!a)
	return nil
}
