package parser

import "fmt"

type Position struct {
	Line   int
	Column int
	Offset int
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// positionAt computes the line and column of a byte offset in src
func positionAt(src string, offset int) Position {
	pos := Position{Line: 1, Column: 1}
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset = offset

	return pos
}
