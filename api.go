package stackr

import (
	"sort"

	"github.com/jcorbin/stackr/internal/panicerr"
)

// Engine runs stackr code on behalf of a host, whose state is carried in
// State and reachable from every Builtin.
type Engine[S any] struct {
	State S

	core
	syms   symbols
	mem    memory[S]
	stack  []StackValue
	prog   program
	frame  frame
	depth  int
	mode   readMode
	cache  addressCache
	docs   map[Address]string
	exited bool
}

// New creates an engine around the given host state, with all builtin words
// installed.
func New[S any](state S, opts ...Option) *Engine[S] {
	e := &Engine[S]{State: state}
	e.core.apply(opts...)
	e.mem.pages.PageSize = e.pageSize
	e.frame.prog = &e.prog
	e.cache.init(&e.syms)
	registerBuiltins(e)
	e.mem.pages.Limit = e.memLimit
	if top := uint(len(e.syms.strings)); e.memLimit != 0 && e.memLimit < top {
		e.mem.pages.Limit = top
	}
	return e
}

// Evaluate loads src and runs it to completion, or until the first error.
// The origin names src in error locations, and may be empty.
//
// Memory and the stack carry over between evaluations; instructions left
// unexecuted by a failed evaluation are not run again.
func (e *Engine[S]) Evaluate(src, origin string) error {
	e.exited = false
	start := len(e.prog.code)
	err := e.load(src, origin)
	if err == nil {
		e.frame = frame{prog: &e.prog, pc: start, pcs: e.frame.pcs, breaking: e.frame.breaking}
		err = panicerr.Recover("stackr", e.run)
		if err != nil {
			err = e.locate(err)
			e.logf("#", "halt error: %v", err)
		}
	}
	if ferr := e.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// RegisterBuiltin installs op as the meaning of name, along with its
// documentation. Any prior meaning of name is replaced.
func (e *Engine[S]) RegisterBuiltin(name, stackEffect, doc, example string, op Builtin[S]) error {
	addr := e.syms.symbolicate(name)
	e.document(addr, stackEffect, doc, example)
	return e.mem.stor(addr, nativeOf(op))
}

// Reset drops the loaded program and any control flow state, keeping memory
// and the stack.
func (e *Engine[S]) Reset() {
	e.prog = program{}
	e.frame = frame{prog: &e.prog}
	e.mode = readOff
}

// Exited returns true if the last evaluation ran the exit word.
func (e *Engine[S]) Exited() bool { return e.exited }

// Lookup returns the address of a name, if it has been seen.
func (e *Engine[S]) Lookup(name string) (Address, bool) {
	addr := e.syms.symbol(name)
	return addr, addr != 0
}

// Words returns every known name, sorted.
func (e *Engine[S]) Words() []string {
	names := e.syms.names()
	sort.Strings(names)
	return names
}
