package search

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Minimax returns the score of the position searched 'depth' plies deep, with alpha-beta pruning.
// Black maximizes and white minimizes, the scores are on the strategy's absolute scale.
func Minimax[S constraints.Ordered](
	strategy eval.Strategy[S], board *othello.Board, moves othello.PieceSet, depth int, alpha, beta S,
) S {
	return minimax(strategy, board, moves, depth, alpha, beta, nil)
}

// BestMove returns the best move of the side to move, searched 'depth' plies deep.
// Panics if there are no legal moves.
func BestMove[S constraints.Ordered](strategy eval.Strategy[S], board othello.Board, depth int) othello.PieceSet {
	return NewSearcher(strategy).SetLimits(DefaultLimits().SetDepth(depth)).Search(board).Move
}

func minimax[S constraints.Ordered](
	strategy eval.Strategy[S], board *othello.Board, moves othello.PieceSet,
	depth int, alpha, beta S, nodes *atomic.Uint64,
) S {
	if nodes != nil {
		nodes.Add(1)
	}

	if depth <= 0 || moves == 0 {
		return strategy.Evaluate(board, moves)
	}

	if board.BlackToMove() {
		best := alpha
		for move := range moves.All() {
			child := *board
			childMoves := child.MakeMove(move)
			best = max(best, minimax(strategy, &child, childMoves, depth-1, alpha, beta, nodes))
			alpha = best
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := beta
	for move := range moves.All() {
		child := *board
		childMoves := child.MakeMove(move)
		best = min(best, minimax(strategy, &child, childMoves, depth-1, alpha, beta, nodes))
		beta = best
		if beta <= alpha {
			break
		}
	}
	return best
}
