package stackr

import "fmt"

// Location is a 1-based line and column position within some source.
type Location struct {
	Line   int
	Column int
	Path   string
}

func (loc Location) String() string {
	path := loc.Path
	if path == "" {
		path = "stdin"
	}
	return fmt.Sprintf("%v:%v:%v", path, loc.Line, loc.Column)
}

// cursor tracks the location of the next rune to be scanned.
type cursor struct {
	Location
}

func newCursor(path string) cursor {
	return cursor{Location{Line: 1, Column: 1, Path: path}}
}

func (cur *cursor) advance(r rune) {
	if r == '\n' {
		cur.Line++
		cur.Column = 1
	} else {
		cur.Column++
	}
}
