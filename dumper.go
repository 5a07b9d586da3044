package stackr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/stackr/internal/runeio"
)

// Dump writes a human readable picture of the engine: its control state, the
// stack, and every bound memory entry.
func (e *Engine[S]) Dump(w io.Writer) error {
	dump := engineDumper[S]{e: e}
	dump.dump()
	_, err := dump.buf.WriteTo(w)
	return err
}

var readModeNames = [...]string{
	readOff:        "off",
	readOn:         "on",
	readSingleWord: "single-word",
}

type engineDumper[S any] struct {
	e   *Engine[S]
	buf bytes.Buffer

	addrWidth int
}

func (dump *engineDumper[S]) dump() {
	e := dump.e
	fmt.Fprintf(&dump.buf, "# Engine Dump\n")
	fmt.Fprintf(&dump.buf, "  mode: %v depth: %v\n", readModeNames[e.mode], e.depth)
	fmt.Fprintf(&dump.buf, "  prog: %v instructions, pc: %v", len(e.prog.code), e.frame.pc)
	if f := e.frame; f.prog != nil && f.prog != &e.prog {
		fmt.Fprintf(&dump.buf, " (in a body of %v)", len(f.prog.code))
	}
	if pcs := e.frame.pcs; len(pcs) > 0 {
		fmt.Fprintf(&dump.buf, " begins: %v", pcs)
	}
	dump.buf.WriteByte('\n')
	dump.dumpStack()
	dump.dumpMem()
}

func (dump *engineDumper[S]) dumpStack() {
	dump.buf.WriteString("  stack: [")
	for _, val := range dump.e.stack {
		dump.buf.WriteByte(' ')
		dump.formatValue(val)
	}
	dump.buf.WriteString(" ]\n")
}

func (dump *engineDumper[S]) dumpMem() {
	e := dump.e
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(int(e.mem.pages.Size())))
	}
	fmt.Fprintf(&dump.buf, "# Memory\n")
	e.mem.pages.Each(func(addr uint, ent entry[S]) bool {
		if ent.kind != unboundEntry {
			fmt.Fprintf(&dump.buf, "  @%*v %v ", dump.addrWidth, addr, e.Name(Address(addr)))
			dump.formatEntry(ent)
			dump.buf.WriteByte('\n')
		}
		return true
	})
}

func (dump *engineDumper[S]) formatEntry(ent entry[S]) {
	switch ent.kind {
	case nativeEntry:
		dump.buf.WriteString("native")
	case valueEntry:
		dump.buf.WriteString("= ")
		dump.formatValue(StackValue{Value: ent.value})
	case aliasEntry:
		fmt.Fprintf(&dump.buf, "-> @%v", ent.alias)
	case compiledEntry:
		dump.buf.WriteByte(':')
		for _, in := range ent.body.code {
			dump.buf.WriteByte(' ')
			dump.formatValue(dump.instructionValue(in))
		}
	}
}

func (dump *engineDumper[S]) instructionValue(in instruction) StackValue {
	switch in.op {
	case opPushNumber:
		return NumberValueOf(in.number)
	case opPushString:
		return StringValueOf(in.string)
	}
	return AddressValue(in.addr)
}

func (dump *engineDumper[S]) formatValue(val StackValue) {
	switch {
	case val.IsAddress():
		dump.buf.WriteString(dump.e.Name(val.Addr))
	case val.Value.Kind == StringValue:
		dump.buf.WriteByte('"')
		runeio.WriteCaretString(&dump.buf, val.Value.String)
		dump.buf.WriteByte('"')
	default:
		dump.buf.WriteString(val.Value.Text())
	}
}
