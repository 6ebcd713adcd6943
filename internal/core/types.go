package core

// Point identifies a single cell by its grid coordinates.
type Point struct {
	X int
	Y int
}

// Edge4 lists the four edge-adjacent neighbor offsets. The north, east,
// south, west ordering is part of the generator contract: every scan that
// breaks ties between neighbors visits them in this order.
var Edge4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Diag4 lists the four diagonal neighbor offsets in north-east, south-east,
// south-west, north-west order.
var Diag4 = [4]Point{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
