package stackr

import (
	"fmt"
	"io"
	"strings"
)

// document records the documentation of a word, rendered as an indented
// stack effect line, the description, and an example line.
func (e *Engine[S]) document(addr Address, stackEffect, doc, example string) {
	var sb strings.Builder
	if stackEffect != "" {
		fmt.Fprintf(&sb, "\t( %v )", strings.TrimSpace(strings.ReplaceAll(stackEffect, "...", "..")))
	}
	sb.WriteString("\n\t")
	sb.WriteString(strings.TrimSpace(doc))
	if example != "" {
		fmt.Fprintf(&sb, "\n\tExample '%v'", example)
	}
	if e.docs == nil {
		e.docs = make(map[Address]string)
	}
	e.docs[addr] = sb.String()
}

// Documentation returns the documentation of a named word.
func (e *Engine[S]) Documentation(name string) (string, bool) {
	addr, known := e.Lookup(name)
	if !known {
		return "", false
	}
	doc, documented := e.docs[addr]
	return doc, documented
}

// WriteDocumentation writes the documentation of every documented word,
// sorted by name.
func (e *Engine[S]) WriteDocumentation(w io.Writer) error {
	if _, err := io.WriteString(w, "Documentation:\n"); err != nil {
		return err
	}
	for _, name := range e.Words() {
		if doc, ok := e.Documentation(name); ok {
			if _, err := fmt.Fprintf(w, "%v  %v\n\n", name, doc); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
