package stackr

// Address identifies a word for the life of an Engine. The zero Address is
// never valid.
type Address uint

// symbols interns word names to addresses. Anonymous addresses, used as
// variable storage cells, are allocated from the same space but have no name.
type symbols struct {
	strings []string
	symbols map[string]Address
}

func (sym symbols) string(id Address) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

func (sym symbols) symbol(s string) Address {
	return sym.symbols[s]
}

func (sym *symbols) symbolicate(s string) (id Address) {
	id, defined := sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]Address)
		}
		id = sym.anonymous()
		sym.strings[id-1] = s
		sym.symbols[s] = id
	}
	return id
}

func (sym *symbols) anonymous() Address {
	sym.strings = append(sym.strings, "")
	return Address(len(sym.strings))
}

// names returns all interned names in address order.
func (sym symbols) names() []string {
	names := make([]string, 0, len(sym.symbols))
	for _, s := range sym.strings {
		if s != "" {
			names = append(names, s)
		}
	}
	return names
}
