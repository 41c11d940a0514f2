package eval

import "github.com/IlikeChooros/go-othello/pkg/othello"

const CornerMask othello.PieceSet = 0x8100000000000081

// Number of legal moves of the side to move
type Mobility struct{ bounded }

func (Mobility) Evaluate(board *othello.Board, moves othello.PieceSet) Score {
	if score, ok := terminal(board); ok {
		return score
	}
	return sign(board) * mobility(moves)
}

// Disc differential
type Material struct{ bounded }

func (Material) Evaluate(board *othello.Board, _ othello.PieceSet) Score {
	if score, ok := terminal(board); ok {
		return score
	}
	return sign(board) * material(board)
}

// Corner differential
type Corners struct{ bounded }

func (Corners) Evaluate(board *othello.Board, _ othello.PieceSet) Score {
	if score, ok := terminal(board); ok {
		return score
	}
	return sign(board) * corners(board)
}

// Frontier differential, the side with fewer discs next to empty squares is better off
type Frontier struct{ bounded }

func (Frontier) Evaluate(board *othello.Board, _ othello.PieceSet) Score {
	if score, ok := terminal(board); ok {
		return score
	}
	return -sign(board) * frontier(board)
}

func mobility(moves othello.PieceSet) Score {
	return Score(moves.Count())
}

func material(board *othello.Board) Score {
	return Score(board.Mover().Count() - board.Waiting().Count())
}

func corners(board *othello.Board) Score {
	return Score((board.Mover()&CornerMask).Count() - (board.Waiting()&CornerMask).Count())
}

// Mover's frontier discs minus waiting side's frontier discs
func frontier(board *othello.Board) Score {
	edge := board.Empty().Neighbours()
	return Score((board.Mover()&edge).Count() - (board.Waiting()&edge).Count())
}
