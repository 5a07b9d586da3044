package stackr

import "fmt"

type opCode uint8

const (
	opPushNumber opCode = iota + 1
	opPushString
	opAddressRef
)

// instruction is one loaded word.
type instruction struct {
	op     opCode
	number float32
	string string
	addr   Address
}

func pushNumber(n float32) instruction  { return instruction{op: opPushNumber, number: n} }
func pushString(s string) instruction   { return instruction{op: opPushString, string: s} }
func addressRef(addr Address) instruction { return instruction{op: opAddressRef, addr: addr} }

func (in instruction) isAddress(addr Address) bool {
	return in.op == opAddressRef && in.addr == addr
}

// program is a flat instruction stream, with the source location of each
// instruction kept alongside.
type program struct {
	code []instruction
	locs []Location
}

func (prog *program) append(other program) {
	prog.code = append(prog.code, other.code...)
	prog.locs = append(prog.locs, other.locs...)
}

// slice returns a copy of instructions [i, j).
func (prog program) slice(i, j int) program {
	return program{
		code: append([]instruction(nil), prog.code[i:j]...),
		locs: append([]Location(nil), prog.locs[i:j]...),
	}
}

// scan returns the index of the first reference to addr in [from, to), or
// -1 if there is none.
func (prog program) scan(from, to int, addr Address) int {
	for i := from; i < to && i < len(prog.code); i++ {
		if prog.code[i].isAddress(addr) {
			return i
		}
	}
	return -1
}

// word returns the source text of an instruction.
func (e *Engine[S]) word(in instruction) string {
	switch in.op {
	case opPushNumber:
		return formatNumber(in.number)
	case opPushString:
		return `"` + in.string + `"`
	case opAddressRef:
		return e.Name(in.addr)
	}
	return fmt.Sprintf("<invalid op %d>", in.op)
}

// describe returns an instruction as shown in header errors, where numbers
// are marked with an N.
func (e *Engine[S]) describe(in instruction) string {
	if in.op == opPushNumber {
		return "N" + formatNumber(in.number)
	}
	return e.word(in)
}
