/*
Package stackr is a small, embeddable, Forth-style stack language.

A host creates an Engine around some state of its own, optionally extends
the vocabulary with native words that read and write that state, and then
feeds it source text:

	e := stackr.New(&counter)
	e.RegisterBuiltin("tick", "--", "Counts a tick.", "tick", func(e *stackr.Engine[*int]) error {
		*e.State++
		return nil
	})
	err := e.Evaluate("3 4 + tick", "")

Source text is split into words on whitespace; a word that parses as a number
pushes that number, a word starting with a double quote pushes a string, and
every other word names an address. Each distinct name gets one address for the
life of an engine, and memory maps each address to what it currently means:
a native operation, a stored value, an alias to another address (which is how
variables work), or a compiled body.

There is no syntax tree. Control flow words like "if", "else", "end",
"begin", "loop" and "break" work by scanning forward through the loaded
instruction stream and moving the program counter. The scans match the first
occurrence of the word they look for, they do not balance nesting. The chosen
branch of an if runs in place, and execution then resumes at its end:

	0 begin 1 + dup 3 == if break end loop   ( leaves 3 )

Words are defined with ":" and ";". A definition names the word, then gives
three strings: its documentation, its stack effect, and an example:

	: sq "squares a number" "n -- n" "3 sq" dup * ;

Quoting with "[" and "]" pushes addresses instead of running them, "@" runs a
quoted address, and "var" declares a variable whose name evaluates to a fresh
storage cell:

	var x  42 x set  x get   ( leaves 42 )
	1 2 [ + ] @              ( leaves 3 )

Engines are not safe for concurrent use, and nothing protects a host from an
infinite loop in the code it evaluates.
*/
package stackr
