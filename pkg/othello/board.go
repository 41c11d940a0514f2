package othello

import (
	"fmt"
)

type Status int

const (
	Ongoing Status = iota
	// The side recorded as mover has won
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Board is an othello position seen from the side to move.
// It's a value type, copy it to explore a position without changing the game.
type Board struct {
	mover       PieceSet
	waiting     PieceSet
	blackToMove bool
	status      Status
}

// Child is a position reachable in one move, with its legal moves precomputed
type Child struct {
	Move  PieceSet
	Board Board
	Moves PieceSet
}

// Canonical starting position, black to move
func InitialBoard() Board {
	return Board{
		mover:       SquareMask(28) | SquareMask(35),
		waiting:     SquareMask(27) | SquareMask(36),
		blackToMove: true,
		status:      Ongoing,
	}
}

// Create an ongoing position, panics if the sets overlap
func NewBoard(mover, waiting PieceSet, blackToMove bool) Board {
	b := Board{mover: mover, waiting: waiting, blackToMove: blackToMove}
	b.checkInvariant()
	return b
}

func (b Board) Mover() PieceSet    { return b.mover }
func (b Board) Waiting() PieceSet  { return b.waiting }
func (b Board) BlackToMove() bool  { return b.blackToMove }
func (b Board) Status() Status     { return b.status }
func (b Board) Occupied() PieceSet { return b.mover | b.waiting }
func (b Board) Empty() PieceSet    { return ^(b.mover | b.waiting) }
func (b Board) Terminated() bool   { return b.status != Ongoing }

// Discs owned by black
func (b Board) Black() PieceSet {
	if b.blackToMove {
		return b.mover
	}
	return b.waiting
}

// Discs owned by white
func (b Board) White() PieceSet {
	if b.blackToMove {
		return b.waiting
	}
	return b.mover
}

// Only meaningful when the status is Won, the winner is always the mover
func (b Board) WinnerIsBlack() bool {
	return b.status == Won && b.blackToMove
}

func (b Board) checkInvariant() {
	if overlap := b.mover & b.waiting; overlap != 0 {
		panic(fmt.Sprintf("othello: mover and waiting discs overlap at %v", overlap))
	}
}

// Legal moves of the side to move
func (b Board) LegalMoves() PieceSet {
	return legalMoves(b.mover, b.waiting)
}

func legalMoves(friend, opponent PieceSet) PieceSet {
	var moves PieceSet
	empty := ^(friend | opponent)
	for _, d := range directions {
		candidates := opponent & shift(friend&^d.guard, d.shift)
		for candidates != 0 {
			next := shift(candidates&^d.guard, d.shift)
			moves |= empty & next
			candidates = opponent & next
		}
	}
	return moves
}

// MakeMove places a disc on 'bit' for the side to move, flips the captured lines
// and hands the turn over, resolving forced passes and the end of the game.
// Returns the legal moves of the side that is to move afterwards.
// The move is not validated, use SafeMakeMove for untrusted input.
func (b *Board) MakeMove(bit PieceSet) PieceSet {
	if b.status != Ongoing {
		panic(fmt.Sprintf("othello: move %v on a %v game", bit, b.status))
	}

	for _, d := range directions {
		var line PieceSet
		cursor := shift(bit&^d.guard, d.shift)
		for cursor&b.waiting != 0 {
			line |= cursor
			cursor = shift(cursor&^d.guard, d.shift)
		}
		if cursor&b.mover != 0 {
			b.mover |= line
			b.waiting &^= line
		}
	}
	b.mover |= bit
	b.checkInvariant()

	b.swap()
	return b.settle()
}

// settle resolves forced passes and the end of the game for the side to move
func (b *Board) settle() PieceSet {
	moves := b.LegalMoves()
	if moves != 0 {
		b.status = Ongoing
		return moves
	}

	// forced pass, the other side moves again
	b.swap()
	moves = b.LegalMoves()
	if moves != 0 {
		b.status = Ongoing
		return moves
	}

	// neither side can move
	mover, waiting := b.mover.Count(), b.waiting.Count()
	switch {
	case mover > waiting:
		b.status = Won
	case mover < waiting:
		b.swap()
		b.status = Won
	default:
		b.status = Drawn
	}
	return moves
}

// SafeMakeMove applies the move only if it's legal, otherwise returns ErrIllegalMove
// and leaves the board as it was. On success returns the legal moves before the move.
func (b *Board) SafeMakeMove(bit PieceSet) (PieceSet, error) {
	if b.status != Ongoing {
		return 0, fmt.Errorf("%w: game is %v", ErrIllegalMove, b.status)
	}
	moves := b.LegalMoves()
	if !bit.Single() || moves&bit == 0 {
		return 0, fmt.Errorf("%w: %v", ErrIllegalMove, bit)
	}
	b.MakeMove(bit)
	return moves, nil
}

// Children of the position for the given legal moves, in ascending square order
func (b Board) Children(moves PieceSet) []Child {
	children := make([]Child, 0, moves.Count())
	for move := range moves.All() {
		child := Child{Move: move, Board: b}
		child.Moves = child.Board.MakeMove(move)
		children = append(children, child)
	}
	return children
}

func (b *Board) swap() {
	b.mover, b.waiting = b.waiting, b.mover
	b.blackToMove = !b.blackToMove
}

// Package level helpers, for front ends that hold a Board value

func LegalMoves(b Board) PieceSet {
	return b.LegalMoves()
}

func MakeMove(b *Board, move PieceSet) PieceSet {
	return b.MakeMove(move)
}

func SafeMakeMove(b *Board, move PieceSet) (PieceSet, error) {
	return b.SafeMakeMove(move)
}
