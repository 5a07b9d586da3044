package stackr

import (
	"fmt"
	"io"
)

func runtimeBuiltins[S any]() []builtinDef[S] {
	return []builtinDef[S]{
		{"print-stack", "", "Prints the stack.", "1 2 print-stack", opPrintStack[S]},
		{"print-program", "", "Prints the loaded program, formatted.", "", opPrintProgram[S]},
		{"print", "any --", "Prints the top of the stack, strings without quotes.", `"hello" print`, opPrint[S]},
		{"dump", "", "Prints the state of the engine.", "", opDump[S]},
		{"documentation", "", "Show documentation for all words", "", opDocumentation[S]},
		{"exit", "", "Exit the program.", "", opExit[S]},
		{"repl-exit", "", "Exits REPL mode.", "", opExit[S]},
		{".", "--", "Does nothing; separates words when formatting.", "1 . 2", nop[S]},
	}
}

func opPrintStack[S any](e *Engine[S]) error {
	return e.WriteStack(e.out)
}

func opPrintProgram[S any](e *Engine[S]) error {
	_, err := io.WriteString(e.out, e.StringifyProgram())
	return err
}

func opPrint[S any](e *Engine[S]) error {
	val, err := e.Pop()
	if err != nil {
		return err
	}
	text := val.Value.Text()
	if val.IsAddress() {
		text = e.Name(val.Addr)
	}
	_, err = fmt.Fprintln(e.out, text)
	return err
}

func opDump[S any](e *Engine[S]) error {
	return e.Dump(e.out)
}

func opDocumentation[S any](e *Engine[S]) error {
	return e.WriteDocumentation(e.out)
}

func opExit[S any](e *Engine[S]) error {
	e.exited = true
	return nil
}
