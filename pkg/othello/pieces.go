package othello

import (
	"iter"
	"math/bits"
	"strings"
)

// PieceSet is a set of board squares, one bit per square.
// Bit 0 is the top-left square (a1), bit 63 the bottom-right one (h8),
// squares are laid out row by row.
type PieceSet uint64

const (
	EmptySet PieceSet = 0
	FullSet  PieceSet = ^PieceSet(0)
)

// Mask of a single square
func SquareMask(square int) PieceSet {
	return PieceSet(1) << uint(square)
}

// Number of squares in the set
func (p PieceSet) Count() int {
	return bits.OnesCount64(uint64(p))
}

func (p PieceSet) Empty() bool {
	return p == 0
}

// Whether the set holds exactly one square
func (p PieceSet) Single() bool {
	return p != 0 && p&(p-1) == 0
}

func (p PieceSet) Has(other PieceSet) bool {
	return p&other == other && other != 0
}

// Index of the lowest square in the set, 64 if empty
func (p PieceSet) Square() int {
	return bits.TrailingZeros64(uint64(p))
}

// Next splits the set into its lowest square and the remaining squares.
// The receiver is a copy, so the caller's set is left untouched:
//
//	for rest := moves; !rest.Empty(); {
//		var move PieceSet
//		move, rest = rest.Next()
//	}
func (p PieceSet) Next() (PieceSet, PieceSet) {
	low := p & -p
	return low, p &^ low
}

// All yields every square of the set as a single-bit mask, lowest first
func (p PieceSet) All() iter.Seq[PieceSet] {
	return func(yield func(PieceSet) bool) {
		for p != 0 {
			low := p & -p
			if !yield(low) {
				return
			}
			p &^= low
		}
	}
}

// Squares returns the indices of the set squares in ascending order
func (p PieceSet) Squares() []int {
	squares := make([]int, 0, p.Count())
	for p != 0 {
		squares = append(squares, bits.TrailingZeros64(uint64(p)))
		p &= p - 1
	}
	return squares
}

// Neighbours returns every square one step away from the set, in any direction
func (p PieceSet) Neighbours() PieceSet {
	var n PieceSet
	for _, d := range directions {
		n |= shift(p&^d.guard, d.shift)
	}
	return n
}

func (p PieceSet) String() string {
	if p.Single() {
		return FormatSquare(p.Square())
	}
	names := make([]string, 0, p.Count())
	for sq := range p.All() {
		names = append(names, FormatSquare(sq.Square()))
	}
	return "{" + strings.Join(names, " ") + "}"
}
