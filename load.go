package stackr

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// load tokenizes src, appending its instructions to the top level program
// only if all of it tokenizes.
//
// Words are separated by whitespace, except within a quoted span: a quote
// opens a span that runs to the next quote not preceded by a backslash, and
// the word ends as soon as its span closes. Backslashes are kept as written.
func (e *Engine[S]) load(src, origin string) error {
	var (
		prog    program
		word    strings.Builder
		wordAt  Location
		quoting bool
		escaped bool
	)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		prog.code = append(prog.code, e.classify(word.String()))
		prog.locs = append(prog.locs, wordAt)
		word.Reset()
	}

	cur := newCursor(origin)
	for _, r := range src {
		switch {
		case quoting:
			word.WriteRune(r)
			if r == '"' && !escaped {
				quoting = false
				flush()
			}
			escaped = r == '\\'

		case r == '"':
			if word.Len() == 0 {
				wordAt = cur.Location
			}
			word.WriteRune(r)
			quoting, escaped = true, false

		case unicode.IsSpace(r):
			flush()

		default:
			if word.Len() == 0 {
				wordAt = cur.Location
			}
			word.WriteRune(r)
		}
		cur.advance(r)
	}

	if quoting {
		return &Error{Kind: ErrUnclosedString, Message: "Unclosed string", Location: wordAt}
	}
	flush()

	e.logf("<", "load %v words from %v", len(prog.code), cur.Location)
	e.prog.append(prog)
	return nil
}

// classify turns a word into an instruction: numbers first, then strings,
// with anything else naming an address.
func (e *Engine[S]) classify(word string) instruction {
	if n, ok := parseNumber(word); ok {
		return pushNumber(n)
	}
	if strings.HasPrefix(word, `"`) {
		s := strings.TrimPrefix(word, `"`)
		s = strings.TrimSuffix(s, `"`)
		return pushString(s)
	}
	return addressRef(e.syms.symbolicate(word))
}

func parseNumber(word string) (float32, bool) {
	f, err := strconv.ParseFloat(word, 32)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, false
		}
	}
	return float32(f), true
}
