// Package runeio renders arbitrary strings legibly for terminal output.
package runeio

import (
	"io"
	"strings"
	"unicode/utf8"
)

// WriteCaretRune writes a rune to the given writer:
//   - printable runes are written in utf8 form
//   - tab and newline are written escaped, as \t and \n
//   - other C0 controls and DEL are written in caret form, e.g. ^[ for ESC
//   - C1 controls are written as their 7-bit escape form in caret notation,
//     e.g. ^[[ for CSI
func WriteCaretRune(w io.Writer, r rune) (n int, err error) {
	var buf [utf8.UTFMax + 2]byte
	switch {
	case r == '\t':
		return io.WriteString(w, `\t`)
	case r == '\n':
		return io.WriteString(w, `\n`)
	case r < 0x20:
		buf[0], buf[1] = '^', byte(r)^0x40
		return w.Write(buf[:2])
	case r == 0x7f:
		return io.WriteString(w, "^?")
	case 0x80 <= r && r <= 0x9f:
		buf[0], buf[1], buf[2] = '^', '[', byte(r)^0xc0
		return w.Write(buf[:3])
	}
	return w.Write(buf[:utf8.EncodeRune(buf[:], r)])
}

// WriteCaretString writes a string using WriteCaretRune for each rune.
func WriteCaretString(w io.Writer, s string) (n int, err error) {
	for _, r := range s {
		m, err := WriteCaretRune(w, r)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Caret returns s as written by WriteCaretString.
func Caret(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	WriteCaretString(&sb, s)
	return sb.String()
}
