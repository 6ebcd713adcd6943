package tile

// LineCode is a line-family tile shape for one-cell-wide path features.
//
// Source codes are end caps named by the direction the path continues
// (LineSourceN connects north). Corner codes are named by their two
// connected sides. Tee codes are named opposite the one disconnected side
// (LineTeeN connects north, east and west).
type LineCode uint8

const (
	LineEmpty LineCode = iota
	LineIsolated
	LineNS
	LineWE
	LineSourceN
	LineSourceE
	LineSourceS
	LineSourceW
	LineCornerNE
	LineCornerSE
	LineCornerSW
	LineCornerNW
	LineTeeN
	LineTeeE
	LineTeeS
	LineTeeW
	LineCross
)

var lineNames = [...]string{
	LineEmpty:    "empty",
	LineIsolated: "isolated",
	LineNS:       "straight-ns",
	LineWE:       "straight-we",
	LineSourceN:  "source-n",
	LineSourceE:  "source-e",
	LineSourceS:  "source-s",
	LineSourceW:  "source-w",
	LineCornerNE: "corner-ne",
	LineCornerSE: "corner-se",
	LineCornerSW: "corner-sw",
	LineCornerNW: "corner-nw",
	LineTeeN:     "tee-n",
	LineTeeE:     "tee-e",
	LineTeeS:     "tee-s",
	LineTeeW:     "tee-w",
	LineCross:    "cross",
}

// String returns the lowercase name of the code.
func (c LineCode) String() string {
	if int(c) < len(lineNames) {
		return lineNames[c]
	}
	return "unknown"
}

// lineCodes maps a 4-bit share mask to a line-family code. The 16 patterns
// partition exactly: one isolated cell, four end caps, two straights, four
// corners, four tees and one crossing.
var lineCodes = [16]LineCode{
	0:                LineIsolated,
	maskN:            LineSourceN,
	maskE:            LineSourceE,
	maskS:            LineSourceS,
	maskW:            LineSourceW,
	maskN | maskS:    LineNS,
	maskE | maskW:    LineWE,
	maskN | maskE:    LineCornerNE,
	maskE | maskS:    LineCornerSE,
	maskS | maskW:    LineCornerSW,
	maskW | maskN:    LineCornerNW,
	maskAll &^ maskS: LineTeeN,
	maskAll &^ maskW: LineTeeE,
	maskAll &^ maskN: LineTeeS,
	maskAll &^ maskE: LineTeeW,
	maskAll:          LineCross,
}

// NormalizeLine classifies every cell of a w*h membership grid into the line
// tile family, returning codes in row-major order. Non-member cells map to
// LineEmpty.
func NormalizeLine(w, h int, member func(x, y int) bool) []LineCode {
	codes := make([]LineCode, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !member(x, y) {
				continue
			}
			codes[y*w+x] = lineCodes[shareMask(w, h, member, x, y)]
		}
	}
	return codes
}
