package stackr

import "fmt"

type readMode uint8

const (
	readOff readMode = iota
	readOn
	readSingleWord
)

// frame is the execution state of one program: the top level program, or
// the body of a compiled word while it runs.
type frame struct {
	prog     *program
	pc       int
	pcs      []int // one saved pc per active begin
	breaking bool  // set by break, cleared by the loop it jumps to
}

// addressCache holds the addresses of the words that control flow scans for.
type addressCache struct {
	define     Address
	terminate  Address
	ifWord     Address
	elseWord   Address
	endWord    Address
	beginWord  Address
	loopWord   Address
	breakWord  Address
	openQuote  Address
	closeQuote Address
}

func (cache *addressCache) init(sym *symbols) {
	cache.define = sym.symbolicate(":")
	cache.terminate = sym.symbolicate(";")
	cache.ifWord = sym.symbolicate("if")
	cache.elseWord = sym.symbolicate("else")
	cache.endWord = sym.symbolicate("end")
	cache.beginWord = sym.symbolicate("begin")
	cache.loopWord = sym.symbolicate("loop")
	cache.breakWord = sym.symbolicate("break")
	cache.openQuote = sym.symbolicate("[")
	cache.closeQuote = sym.symbolicate("]")
}

// run executes the current frame from its pc to the end of its program.
// Words that move the pc leave it on the instruction before the next one to
// run.
func (e *Engine[S]) run() error {
	f := &e.frame
	for ; f.pc < len(f.prog.code); f.pc++ {
		if err := e.exec(); err != nil {
			return e.locate(err)
		}
		if e.exited {
			f.pc++
			break
		}
	}
	return nil
}

// runRange runs instructions [from, to) of the current frame in order, no
// matter where the words among them move the pc; the pc is left on the last
// instruction run.
func (e *Engine[S]) runRange(from, to int) error {
	f := &e.frame
	for i := from; i < to && !e.exited; i++ {
		f.pc = i
		if err := e.exec(); err != nil {
			return err
		}
	}
	return nil
}

// exec runs the instruction at the current frame's pc.
func (e *Engine[S]) exec() error {
	f := &e.frame
	in := f.prog.code[f.pc]
	if e.logfn != nil {
		e.logf(">", "%v @%v stack:%v", e.word(in), f.prog.locs[f.pc], e.stackString())
	}
	return e.step(in)
}

func (e *Engine[S]) step(in instruction) error {
	switch in.op {
	case opPushNumber:
		e.PushNumber(in.number)
	case opPushString:
		e.PushString(in.string)
	case opAddressRef:
		return e.dispatch(in.addr)
	default:
		return fmt.Errorf("invalid instruction op %d", in.op)
	}
	return nil
}

func (e *Engine[S]) dispatch(addr Address) error {
	switch e.mode {
	case readOn:
		if addr != e.cache.closeQuote {
			e.PushAddress(addr)
			return nil
		}

	case readSingleWord:
		e.mode = readOff
		ent, err := e.mem.load(addr)
		if err != nil || ent.kind != unboundEntry {
			return err
		}
		cell := e.syms.anonymous()
		e.logf("+", "var %v -> @%v", e.syms.string(addr), cell)
		return e.mem.stor(addr, aliasOf[S](cell))
	}

	return e.execute(addr)
}

// execute runs whatever addr currently means.
func (e *Engine[S]) execute(addr Address) error {
	ent, err := e.mem.load(addr)
	if err != nil {
		return err
	}
	switch ent.kind {
	case nativeEntry:
		return ent.native(e)
	case valueEntry:
		e.Push(StackValue{Value: ent.value})
	case aliasEntry:
		e.PushAddress(ent.alias)
	case compiledEntry:
		return e.call(addr, ent.body)
	default:
		return e.Errorf(ErrAddressNotFound, "Address not found: %v", e.Name(addr))
	}
	return nil
}

// call runs a compiled body in its own frame, restoring the caller's frame
// afterwards.
func (e *Engine[S]) call(addr Address, body *program) error {
	outer := e.frame
	e.frame = frame{prog: body}
	e.depth++
	if e.logfn != nil {
		e.logf("{", "call %v", e.Name(addr))
		defer e.withLogPrefix("\t")()
	}
	defer func() {
		e.frame = outer
		e.depth--
	}()
	return e.run()
}

// CurrentLocation returns the source location of the instruction being run.
func (e *Engine[S]) CurrentLocation() Location {
	if f := e.frame; f.prog != nil && 0 <= f.pc && f.pc < len(f.prog.locs) {
		return f.prog.locs[f.pc]
	}
	return Location{Line: 1, Column: 1}
}

// Name returns the name of an address. A variable's storage cell is named
// after the variable, like "@x"; addresses with no name at all are named
// like "@UNKNOWN-42".
func (e *Engine[S]) Name(addr Address) string {
	prefix := ""
	for seen, at := map[Address]bool{}, addr; !seen[at]; {
		seen[at] = true
		if name := e.syms.string(at); name != "" {
			return prefix + name
		}
		from, found := e.mem.aliasing(at)
		if !found {
			break
		}
		prefix += "@"
		at = from
	}
	return fmt.Sprintf("@UNKNOWN-%d", addr)
}
