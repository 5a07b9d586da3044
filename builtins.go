package stackr

import "fmt"

type builtinDef[S any] struct {
	name        string
	stackEffect string
	doc         string
	example     string
	op          Builtin[S]
}

func registerBuiltins[S any](e *Engine[S]) {
	for _, defs := range [][]builtinDef[S]{
		runtimeBuiltins[S](),
		addressingBuiltins[S](),
		compilerBuiltins[S](),
		controlBuiltins[S](),
		stackBuiltins[S](),
		mathBuiltins[S](),
		compareBuiltins[S](),
	} {
		for _, def := range defs {
			if err := e.RegisterBuiltin(def.name, def.stackEffect, def.doc, def.example, def.op); err != nil {
				// no memory limit is in effect yet
				panic(fmt.Sprintf("unable to register builtin %q: %v", def.name, err))
			}
		}
	}
}

func nop[S any](*Engine[S]) error { return nil }
