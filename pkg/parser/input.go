package parser

import "strings"

// input is an immutable cursor over the source. Productions return a new
// input on success, so a failed alternative never consumes anything.
type input struct {
	src string // full source text
	off int    // byte offset of the cursor
}

// rest returns the unconsumed text
func (in input) rest() string {
	return in.src[in.off:]
}

// eof reports whether all input has been consumed
func (in input) eof() bool {
	return in.off >= len(in.src)
}

// advance moves the cursor forward by n bytes
func (in input) advance(n int) input {
	in.off += n
	if in.off > len(in.src) {
		in.off = len(in.src)
	}
	return in
}

// skip consumes any run of the given bytes
func (in input) skip(set string) input {
	for !in.eof() && strings.IndexByte(set, in.src[in.off]) >= 0 {
		in.off++
	}
	return in
}

// spaces consumes plain spaces only
func (in input) spaces() input {
	return in.skip(" ")
}

// blanks consumes spaces, tabs and line breaks
func (in input) blanks() input {
	return in.skip(" \t\r\n")
}
