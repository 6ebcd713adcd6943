// Package tile maps the neighbor pattern of each cell in a categorical grid
// to a tile shape from a fixed autotiling set. Two shape families are
// provided: the solid family for area layers (seas, biomes) and the line
// family for path layers (rivers, roads). Classification is a pure function
// of the membership grid; it never rewrites the input. Out-of-bounds
// neighbors never share membership.
package tile

// Code is a solid-family tile shape.
//
// Edge codes face the differing neighbor (EdgeN borders non-members to the
// north). Convex codes are named by their two open sides (ConvexNE differs
// north and east). Concave codes are named opposite the missing diagonal
// (ConcaveNE has a non-member at its south-west diagonal).
type Code uint8

const (
	Empty Code = iota
	Solid
	EdgeN
	EdgeE
	EdgeS
	EdgeW
	ConvexNE
	ConvexSE
	ConvexSW
	ConvexNW
	ConcaveNE
	ConcaveSE
	ConcaveSW
	ConcaveNW
)

var codeNames = [...]string{
	Empty:     "empty",
	Solid:     "solid",
	EdgeN:     "edge-n",
	EdgeE:     "edge-e",
	EdgeS:     "edge-s",
	EdgeW:     "edge-w",
	ConvexNE:  "convex-ne",
	ConvexSE:  "convex-se",
	ConvexSW:  "convex-sw",
	ConvexNW:  "convex-nw",
	ConcaveNE: "concave-ne",
	ConcaveSE: "concave-se",
	ConcaveSW: "concave-sw",
	ConcaveNW: "concave-nw",
}

// String returns the lowercase name of the code.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// Share-mask bits for the four edge neighbors, in fixed N, E, S, W order.
const (
	maskN = 1 << iota
	maskE
	maskS
	maskW
	maskAll = maskN | maskE | maskS | maskW
)

// solidCodes maps a 4-bit share mask (bit set = neighbor shares membership)
// to a solid-family code. Every one of the 16 patterns has a fixed output:
//
//	all four share        -> Solid (refined to a concave corner by solidCode)
//	one differs           -> the edge facing it
//	two adjacent differ   -> the convex corner opening toward them
//	two opposite differ   -> the dominant edge, N before S before E before W
//	three differ          -> the edge facing away from the sharing neighbor
//	all four differ       -> Solid (isolated cell fallback)
var solidCodes = [16]Code{
	0:                Solid,
	maskN:            EdgeS,
	maskE:            EdgeW,
	maskS:            EdgeN,
	maskW:            EdgeE,
	maskN | maskS:    EdgeE,
	maskE | maskW:    EdgeN,
	maskN | maskE:    ConvexSW,
	maskE | maskS:    ConvexNW,
	maskS | maskW:    ConvexNE,
	maskW | maskN:    ConvexSE,
	maskAll &^ maskN: EdgeN,
	maskAll &^ maskE: EdgeE,
	maskAll &^ maskS: EdgeS,
	maskAll &^ maskW: EdgeW,
	maskAll:          Solid,
}

// Diagonal offsets in the fixed NE, SE, SW, NW order, paired with the
// concave code reported when that diagonal is the first non-member.
var concaveChecks = [4]struct {
	dx, dy int
	code   Code
}{
	{1, -1, ConcaveSW},
	{1, 1, ConcaveNW},
	{-1, 1, ConcaveNE},
	{-1, -1, ConcaveSE},
}

// Normalize classifies every cell of a w*h membership grid into the solid
// tile family, returning codes in row-major order. Non-member cells map to
// Empty.
func Normalize(w, h int, member func(x, y int) bool) []Code {
	codes := make([]Code, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			codes[y*w+x] = solidCode(w, h, member, x, y)
		}
	}
	return codes
}

func solidCode(w, h int, member func(x, y int) bool, x, y int) Code {
	if !member(x, y) {
		return Empty
	}
	mask := shareMask(w, h, member, x, y)
	if mask != maskAll {
		return solidCodes[mask]
	}
	// Interior cell: a missing diagonal between two sharing edge neighbors
	// turns the solid tile into the opposite concave corner.
	for _, c := range concaveChecks {
		nx, ny := x+c.dx, y+c.dy
		if nx < 0 || ny < 0 || nx >= w || ny >= h || !member(nx, ny) {
			return c.code
		}
	}
	return Solid
}

func shareMask(w, h int, member func(x, y int) bool, x, y int) uint8 {
	var mask uint8
	if y > 0 && member(x, y-1) {
		mask |= maskN
	}
	if x < w-1 && member(x+1, y) {
		mask |= maskE
	}
	if y < h-1 && member(x, y+1) {
		mask |= maskS
	}
	if x > 0 && member(x-1, y) {
		mask |= maskW
	}
	return mask
}
