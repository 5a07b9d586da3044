package stackr

const defineExample = `: squared "squares a number" "n -- n" "2 squared" dup * ;`

func compilerBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{":", `$name "documentation" "stack modification" "example" .. --`,
			"Defines the word $name as everything up to the next ';'.",
			defineExample, opDefine[S]},
		{";", "",
			"Ends a definition.",
			defineExample, nop[S]},
	}
}

// opDefine captures everything between its header and the next ';' as the
// body of a new word, then resumes after the ';'.
func opDefine[S any](e *Engine[S]) error {
	f := &e.frame
	endAt := f.prog.scan(f.pc, len(f.prog.code), e.cache.terminate)
	if endAt < 0 {
		return e.Errorf(ErrNoTerminator, "No ; found, unable to compile")
	}

	defAt := f.pc
	chomp := func() (instruction, error) {
		f.pc++
		if f.pc >= len(f.prog.code) {
			return instruction{}, e.Errorf(ErrNoMoreInstructions, "No more instructions")
		}
		return f.prog.code[f.pc], nil
	}
	chompString := func() (string, error) {
		in, err := chomp()
		if err == nil && in.op != opPushString {
			err = e.Errorf(ErrExpectedString, "Expected a string, got %v", e.describe(in))
		}
		return in.string, err
	}

	in, err := chomp()
	if err != nil {
		return err
	}
	if in.op != opAddressRef {
		return e.Errorf(ErrExpectedAddress, "Expected an address, got %v", e.describe(in))
	}
	name := in.addr

	var header [3]string // documentation, stack effect, example
	for i := range header {
		if header[i], err = chompString(); err != nil {
			return err
		}
	}

	start := f.pc + 1
	if start > endAt {
		f.pc = defAt
		return e.Errorf(ErrNoTerminator, "No ; found, unable to compile")
	}

	body := f.prog.slice(start, endAt)
	if err := e.mem.stor(name, compiledOf[S](&body)); err != nil {
		return err
	}
	e.document(name, header[1], header[0], header[2])
	e.logf("+", "define %v with %v instructions", e.Name(name), len(body.code))
	f.pc = endAt
	return nil
}
