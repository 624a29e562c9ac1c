// Package output renders a path trie as text lines with box-drawing connectors.
package output

// Part identifies the connector drawn in one column of a rendered row.
type Part int

const (
	// PartEdge marks an entry with at least one sibling still to come at its depth.
	PartEdge Part = iota
	// PartLine marks a column whose ancestor still has pending siblings.
	PartLine
	// PartCorner marks the last entry at its depth.
	PartCorner
	// PartBlank marks a column whose ancestor was the last sibling.
	PartBlank
)

const (
	edgeGlyph   = "├──"
	lineGlyph   = "│   "
	cornerGlyph = "└──"
	blankGlyph  = "    "
)

// Glyph returns the box-drawing text for the part. The continuation glyphs are
// padded so columns stay vertically aligned with the edge and corner glyphs.
func (part Part) Glyph() string {
	switch part {
	case PartEdge:
		return edgeGlyph
	case PartLine:
		return lineGlyph
	case PartCorner:
		return cornerGlyph
	default:
		return blankGlyph
	}
}

type rowParams struct {
	depth  int
	isLast bool
}

// Trunk accumulates connector state across rendered rows. At the moment a row
// is emitted the entry's own future is unknown, so the connector written for
// it is provisional: the next call rewrites the previous row's column to a
// continuation part once the sibling relationship at that depth is resolved.
//
// Callers must feed Row from a genuine depth-first walk: a child's depth is
// always one more than its most recent ancestor's depth and siblings share the
// same depth. Out-of-order depths are not defended against.
type Trunk struct {
	stack      []Part
	lastParams *rowParams
}

// Row records an entry at the given depth and last-sibling state and returns
// the connector parts for columns 1 through depth. Column 0 belongs to the
// implicit root and is never part of the output; returning it would draw a
// spurious top-level connector joining unrelated entries.
func (trunk *Trunk) Row(depth int, isLast bool) []Part {
	if trunk.lastParams != nil {
		if trunk.lastParams.isLast {
			trunk.stack[trunk.lastParams.depth] = PartBlank
		} else {
			trunk.stack[trunk.lastParams.depth] = PartLine
		}
	}

	// The stack grows as deeper entries are visited; slots beyond the current
	// row are left in place and overwritten when their depth is revisited.
	for len(trunk.stack) < depth+1 {
		trunk.stack = append(trunk.stack, PartEdge)
	}
	if isLast {
		trunk.stack[depth] = PartCorner
	} else {
		trunk.stack[depth] = PartEdge
	}

	trunk.lastParams = &rowParams{depth: depth, isLast: isLast}
	return trunk.stack[1 : depth+1]
}
