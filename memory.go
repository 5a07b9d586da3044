package stackr

import (
	"errors"
	"fmt"

	"github.com/jcorbin/stackr/internal/mem"
)

// Builtin is a native operation, called with the engine that is running it.
type Builtin[S any] func(e *Engine[S]) error

type entryKind uint8

const (
	unboundEntry entryKind = iota
	nativeEntry
	valueEntry
	aliasEntry
	compiledEntry
)

func (kind entryKind) String() string {
	switch kind {
	case unboundEntry:
		return "unbound"
	case nativeEntry:
		return "native"
	case valueEntry:
		return "value"
	case aliasEntry:
		return "alias"
	case compiledEntry:
		return "compiled"
	}
	return fmt.Sprintf("entryKind(%d)", uint8(kind))
}

// entry is what an address currently means; exactly one of its fields
// matters, as selected by kind.
type entry[S any] struct {
	kind   entryKind
	native Builtin[S]
	value  Value
	alias  Address
	body   *program
}

func nativeOf[S any](op Builtin[S]) entry[S] { return entry[S]{kind: nativeEntry, native: op} }
func valueOf[S any](val Value) entry[S]      { return entry[S]{kind: valueEntry, value: val} }
func aliasOf[S any](addr Address) entry[S]   { return entry[S]{kind: aliasEntry, alias: addr} }
func compiledOf[S any](body *program) entry[S] {
	return entry[S]{kind: compiledEntry, body: body}
}

// memory maps addresses to entries, paged so that sparse high addresses stay
// cheap.
type memory[S any] struct {
	pages mem.Pages[entry[S]]
}

func (m *memory[S]) load(addr Address) (entry[S], error) {
	ent, err := m.pages.Load(uint(addr))
	return ent, limitError(err)
}

func (m *memory[S]) stor(addr Address, ent entry[S]) error {
	return limitError(m.pages.Stor(uint(addr), ent))
}

// aliasing returns the first address whose entry is an alias to addr.
func (m *memory[S]) aliasing(addr Address) (from Address, found bool) {
	m.pages.Each(func(at uint, ent entry[S]) bool {
		if ent.kind == aliasEntry && ent.alias == addr {
			from, found = Address(at), true
		}
		return !found
	})
	return from, found
}

func limitError(err error) error {
	var lim mem.LimitError
	if errors.As(err, &lim) {
		return fmt.Errorf("%w: %w", ErrMemLimit, lim)
	}
	return err
}
