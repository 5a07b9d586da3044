package stackr

import "strings"

// maxWordsOnLine is how many words the formatter writes before it breaks a
// line on its own.
const maxWordsOnLine = 8

// Format loads src into a fresh engine and returns its program re-rendered
// in canonical layout. Formatting formatted source returns it unchanged.
func Format(src, origin string) (string, error) {
	e := New(struct{}{})
	if err := e.load(src, origin); err != nil {
		return "", err
	}
	return e.StringifyProgram(), nil
}

// StringifyProgram renders the loaded program: definitions, quotes, and
// control flow bodies are indented with tabs, and other words are joined by
// spaces.
func (e *Engine[S]) StringifyProgram() string {
	lay := layout{words: make([]string, len(e.prog.code))}
	for i, in := range e.prog.code {
		lay.words[i] = e.word(in)
	}

	for len(lay.words) > 0 {
		switch lay.words[0] {
		case ":":
			if last := lay.last(); last != 0 && last != '\n' && last != '\t' {
				lay.newline()
			}
			lay.chomp()
			lay.space()
			lay.chomp()
			lay.indent++
			lay.newline()
			// documentation, stack effect, example
			for i := 0; i < 3; i++ {
				lay.chomp()
				lay.newline()
			}
			lay.newline()

		case ";":
			lay.dedent()
			lay.newline()
			lay.chomp()
			lay.newline()
			lay.newline()

		case "[", "begin", "if":
			lay.newline()
			lay.chomp()
			lay.indent++
			lay.newline()

		case "]":
			lay.dedent()
			lay.newline()
			lay.chomp()
			if lay.peek() != ";" {
				lay.newline()
			}

		case "else":
			lay.dedent()
			lay.newline()
			lay.chomp()
			lay.indent++
			lay.newline()

		case "loop", "end":
			lay.dedent()
			lay.newline()
			lay.chomp()
			if lay.peek() != "loop" {
				lay.newline()
				lay.newline()
			}

		case "break":
			lay.newline()
			lay.chomp()

		default:
			if last := lay.last(); last != '\n' && last != '\t' {
				lay.space()
			}
			lay.chomp()
		}
	}

	return strings.TrimSpace(lay.buf.String()) + "\n"
}

type layout struct {
	words  []string
	buf    strings.Builder
	indent int
	onLine int
}

func (lay *layout) peek() string {
	if len(lay.words) > 0 {
		return lay.words[0]
	}
	return ""
}

func (lay *layout) last() byte {
	if s := lay.buf.String(); len(s) > 0 {
		return s[len(s)-1]
	}
	return 0
}

func (lay *layout) chomp() {
	if len(lay.words) == 0 {
		return
	}
	lay.buf.WriteString(lay.words[0])
	lay.words = lay.words[1:]
	if lay.onLine++; lay.onLine >= maxWordsOnLine {
		lay.newline()
	}
}

func (lay *layout) space() { lay.buf.WriteByte(' ') }

func (lay *layout) dedent() {
	if lay.indent > 0 {
		lay.indent--
	}
}

func (lay *layout) newline() {
	lay.buf.WriteByte('\n')
	for i := 0; i < lay.indent; i++ {
		lay.buf.WriteByte('\t')
	}
	lay.onLine = 0
}
