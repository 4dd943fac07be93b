// Package loc carries byte-offset positions and spans through the parser
// and into the AST, so every borrowed slice can be traced back to the
// exact region of the source it came from.
package loc

type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int
}

type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// NewRange builds a Range from a pair of byte offsets.
func NewRange(start, end int) Range {
	return Range{Loc: Loc{Start: start}, Len: end - start}
}

// Span is a range of byte offsets in the source. The start is inclusive,
// the end is exclusive.
type Span struct {
	Start, End int
}
