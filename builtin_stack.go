package stackr

func stackBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"clear-stack", ".. --", "Clears the entire stack.", "clear-stack", opClearStack[S]},
		{"stack-size", "-- n", "Pushes the size of the stack onto the stack.", "stack-size", opStackSize[S]},
		{"dup", "n -- n n", "Duplicates the top item on the stack.", "2 dup", opDup[S]},
		{"swap", "a b -- b a", "Swaps the top two items on the stack.", "1 2 swap", opSwap[S]},
		{"drop", "n --", "Drops the top item on the stack.", "1 drop", opDrop[S]},
		{"over", "a b -- a b a", "Copies the second item on the stack to the top.", "1 2 over", opOver[S]},
		{"rot", "1 2 3 -- 2 3 1", "Rotates the top three items on the stack.", "1 2 3 rot", opRot[S]},
		{"rotn", "n rotn --", "Swaps the top of the stack with the item n below it.", "1 2 3 2 rotn", opRotn[S]},
	}
}

func opClearStack[S any](e *Engine[S]) error {
	e.stack = e.stack[:0]
	return nil
}

func opStackSize[S any](e *Engine[S]) error {
	e.PushNumber(float32(len(e.stack)))
	return nil
}

func opDup[S any](e *Engine[S]) error {
	a, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(a)
	e.Push(a)
	return nil
}

func opSwap[S any](e *Engine[S]) error {
	a, err := e.Pop()
	if err != nil {
		return err
	}
	b, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(a)
	e.Push(b)
	return nil
}

func opDrop[S any](e *Engine[S]) error {
	_, err := e.Pop()
	return err
}

func opOver[S any](e *Engine[S]) error {
	a, err := e.Pop()
	if err != nil {
		return err
	}
	b, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(b)
	e.Push(a)
	e.Push(b)
	return nil
}

func opRot[S any](e *Engine[S]) error {
	var abc [3]StackValue
	for i := range abc {
		val, err := e.Pop()
		if err != nil {
			return err
		}
		abc[i] = val
	}
	e.Push(abc[1])
	e.Push(abc[0])
	e.Push(abc[2])
	return nil
}

func opRotn[S any](e *Engine[S]) error {
	n, err := e.PopNumber()
	if err != nil {
		return err
	}
	if n < 0 {
		return e.Errorf(ErrRotnNegative, "n must be greater than 0, got %v", formatNumber(n))
	}
	size := len(e.stack)
	i := int(n)
	if i > size {
		return e.Errorf(ErrRotnRange, "n is greater than the stack size, got %v", i)
	}
	if size == 0 {
		return e.Errorf(ErrStackEmpty, "Stack is empty")
	}
	if i == size {
		return e.Errorf(ErrRotnRange, "n must be less than the stack size, got %v", i)
	}
	last := size - 1
	e.stack[last-i], e.stack[last] = e.stack[last], e.stack[last-i]
	return nil
}
