package stackr

const loopExample = "0 begin 1 + dup 10 == if break end loop"

func controlBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"if", "0|1 if .. end -- ..",
			"If the top of the stack is true, runs the code up to the next else or end; otherwise runs the code between else and end, if there is an else.",
			"1 1 == if 1 end", opIf[S]},
		{"else", "0|1 if .. else .. end -- ..",
			"Separates the two branches of an if.",
			"1 0 == if 1 else 0 end", nop[S]},
		{"end", "0|1 if .. end -- ..",
			"Ends a conditional.",
			"1 1 == if 1 end", nop[S]},
		{"begin", "--",
			"Starts a loop. 'break' must be called to end it.",
			loopExample, opBegin[S]},
		{"loop", "--",
			"Ends a loop body, jumping back to its begin unless the loop was broken.",
			loopExample, opLoop[S]},
		{"break", "--",
			"Leaves the innermost loop, continuing after the next loop word.",
			loopExample, opBreak[S]},
	}
}

// opIf scans for the first end after it, and the first else before that end;
// the scans do not account for nesting. The chosen branch runs in place, one
// instruction after another, and the pc then resumes at the end: words inside
// the branch that move the pc, like break, do not cut it short.
func opIf[S any](e *Engine[S]) error {
	cond, err := e.PopBool()
	if err != nil {
		return err
	}
	f := &e.frame
	ifAt := f.pc
	endAt := f.prog.scan(ifAt+1, len(f.prog.code), e.cache.endWord)
	if endAt < 0 {
		return e.Errorf(ErrEndNotFound, "'end' statement not found")
	}
	elseAt := f.prog.scan(ifAt+1, endAt, e.cache.elseWord)

	from, to := ifAt+1, endAt
	switch {
	case cond && elseAt >= 0:
		to = elseAt
	case !cond && elseAt >= 0:
		from = elseAt + 1
	case !cond:
		from = to
	}
	if err := e.runRange(from, to); err != nil {
		return err
	}
	f.pc = endAt
	return nil
}

func opBegin[S any](e *Engine[S]) error {
	f := &e.frame
	f.pcs = append(f.pcs, f.pc)
	return nil
}

func opLoop[S any](e *Engine[S]) error {
	f := &e.frame
	if f.breaking {
		f.breaking = false
		return nil
	}
	i := len(f.pcs) - 1
	if i < 0 {
		return e.Errorf(ErrBeginNotFound, "'begin' statement not found")
	}
	f.pc = f.pcs[i]
	return nil
}

func opBreak[S any](e *Engine[S]) error {
	f := &e.frame
	loopAt := f.prog.scan(f.pc+1, len(f.prog.code), e.cache.loopWord)
	if loopAt < 0 {
		return e.Errorf(ErrLoopNotFound, "'loop' statement not found")
	}
	if i := len(f.pcs) - 1; i >= 0 {
		f.pcs = f.pcs[:i]
	}
	f.pc = loopAt - 1
	f.breaking = true
	return nil
}
