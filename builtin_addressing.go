package stackr

func addressingBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"var", "var $name --",
			"Declares a variable. Calling the $name will return the address of the variable.",
			"var life \t 42 life set", opVar[S]},
		{"set", "<value> $name set --",
			"Stores a value at the address on top of the stack.",
			"42 life set", opSet[S]},
		{"get", "@name get -- <value>",
			"Gets the value stored at the address on top of the stack.",
			"life get", opGet[S]},
		{"[", ".. -- ..",
			"Begins read mode. The addresses of all following words are put on the stack. Use ']' to end.",
			"[ rot drop dup ]", opOpenQuote[S]},
		{"]", "",
			"Ends read mode. All following words are evaluated.",
			"[ rot drop dup ]", opCloseQuote[S]},
		{"@", "$addr @ -- ..",
			"Runs the word at the address on top of the stack.",
			"1 2 [ + ] @", opExecute[S]},
	}
}

func opVar[S any](e *Engine[S]) error {
	e.mode = readSingleWord
	return nil
}

// opSet stores a value at the address on top of the stack. A variable
// evaluates to its storage cell, so "42 x set" fills x's cell while x itself
// stays an alias to it.
func opSet[S any](e *Engine[S]) error {
	addr, err := e.PopAddress()
	if err != nil {
		return err
	}
	val, err := e.Pop()
	if err != nil {
		return err
	}
	if val.IsAddress() {
		return e.mem.stor(addr, aliasOf[S](val.Addr))
	}
	return e.mem.stor(addr, valueOf[S](val.Value))
}

func opGet[S any](e *Engine[S]) error {
	addr, err := e.PopAddress()
	if err != nil {
		return err
	}
	ent, err := e.mem.load(addr)
	if err != nil {
		return err
	}
	switch ent.kind {
	case valueEntry:
		e.Push(StackValue{Value: ent.value})
	case aliasEntry:
		e.PushAddress(ent.alias)
	case unboundEntry:
		return e.Errorf(ErrUnknownAddress, "Unknown address")
	default:
		return e.Errorf(ErrUnsupportedGet, "Can't get value of %v word '%v'", ent.kind, e.Name(addr))
	}
	return nil
}

func opOpenQuote[S any](e *Engine[S]) error {
	e.mode = readOn
	return nil
}

func opCloseQuote[S any](e *Engine[S]) error {
	e.mode = readOff
	return nil
}

func opExecute[S any](e *Engine[S]) error {
	addr, err := e.PopAddress()
	if err != nil {
		return err
	}
	return e.execute(addr)
}
