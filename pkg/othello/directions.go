package othello

const (
	fileA PieceSet = 0x0101010101010101
	fileH PieceSet = 0x8080808080808080
)

type direction struct {
	shift int
	// squares that would wrap around the board's edge when shifted
	guard PieceSet
}

// S, SE, E, NE, N, NW, W, SW
var directions = [8]direction{
	{8, 0},
	{9, fileH},
	{1, fileH},
	{-7, fileH},
	{-8, 0},
	{-9, fileA},
	{-1, fileA},
	{7, fileA},
}

func shift(p PieceSet, n int) PieceSet {
	if n > 0 {
		return p << uint(n)
	}
	return p >> uint(-n)
}
